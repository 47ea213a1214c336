package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georgepadayatti/goades/policy"
)

func newPolicyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect validation policies",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "default",
		Short: "Print the built-in validation policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(policy.DefaultYAML())
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "check <policy.yaml>",
		Short: "Check that a policy file can be used for validation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := policy.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Policy %q is valid\n", p.Name)
			return nil
		},
	})
	return cmd
}
