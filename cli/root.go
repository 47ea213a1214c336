package cli

import (
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

func newRootCmd(clock clockwork.Clock) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "goades",
		Short:         "Validate AdES signatures, timestamps and evidence records",
		Long:          "goades runs the ETSI EN 319 102-1 validation processes over diagnostic data and prints the simple or detailed report.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newValidateCmd(clock))
	cmd.AddCommand(newPolicyCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing. Validation runs
// at the time of clock unless --time is given.
func NewRootCmdForTest(clock clockwork.Clock) *cobra.Command {
	return newRootCmd(clock)
}
