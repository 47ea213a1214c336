package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/georgepadayatti/goades/config"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/process"
	"github.com/georgepadayatti/goades/report"
)

// validateOptions are the flags of the validate command. Flags that are set
// override the configuration file.
type validateOptions struct {
	configFile string
	policy     string
	level      string
	at         string
	format     string
	report     string
	locale     string
	semantics  bool
	logLevel   string
}

func newValidateCmd(clock clockwork.Clock) *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate <diagnostic.json>",
		Short: "Validate diagnostic data against a validation policy",
		Long: "Run the validation processes up to the requested level and print the report. " +
			"The command fails when at least one signature did not pass.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			return runValidate(cmd, clock, cfg, opts.at, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "", "Configuration file (YAML)")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "Validation policy file (YAML); the built-in policy when empty")
	cmd.Flags().StringVar(&opts.level, "level", process.ArchivalData.String(), "Validation level: BASIC_SIGNATURES, TIMESTAMPS, LONG_TERM_DATA or ARCHIVAL_DATA")
	cmd.Flags().StringVar(&opts.at, "time", "", "Validation time (RFC 3339); the current time when empty")
	cmd.Flags().StringVar(&opts.format, "format", string(report.FormatText), "Output format: text, json or xml")
	cmd.Flags().StringVar(&opts.report, "report", config.ReportSimple, "Report to print: simple or detailed")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "Language of report messages")
	cmd.Flags().BoolVar(&opts.semantics, "semantics", false, "Include indication semantics and extension periods")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	return cmd
}

// config loads the configuration file, if any, and applies the flags that
// were set on the command line.
func (o *validateOptions) config(cmd *cobra.Command) (*config.AppConfig, error) {
	cfg := config.DefaultAppConfig()
	if o.configFile != "" {
		var err error
		if cfg, err = config.LoadAppConfig(o.configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	v := cfg.Validation
	if flags.Changed("policy") {
		v.Policy = o.policy
	}
	if flags.Changed("level") {
		v.Level = o.level
	}
	if flags.Changed("format") {
		v.Format = o.format
	}
	if flags.Changed("report") {
		v.Report = o.report
	}
	if flags.Changed("locale") {
		v.Locale = o.locale
	}
	if flags.Changed("semantics") {
		v.IncludeSemantics = o.semantics
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newCommandLogger logs to the command's error stream unless the
// configuration names another output.
func newCommandLogger(cmd *cobra.Command, c *config.LoggingConfig) (*slog.Logger, func() error, error) {
	if c.Output == "" || c.Output == "stderr" {
		logger, err := c.NewHandlerLogger(cmd.ErrOrStderr())
		return logger, func() error { return nil }, err
	}
	logger, closer, err := c.NewLogger()
	if err != nil {
		return nil, nil, err
	}
	return logger, closer.Close, nil
}

func runValidate(cmd *cobra.Command, clock clockwork.Clock, cfg *config.AppConfig, at, path string) error {
	logger, closeLog, err := newCommandLogger(cmd, cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	now := clock.Now()
	if at != "" {
		if now, err = time.Parse(time.RFC3339, at); err != nil {
			return fmt.Errorf("invalid --time: %w", err)
		}
	}

	v := cfg.Validation
	level, err := v.ValidationLevel()
	if err != nil {
		return err
	}
	pol, err := v.LoadPolicy()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(v.Format)
	if err != nil {
		return err
	}

	data, err := diagnostic.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("diagnostic data loaded",
		"path", path,
		"signatures", len(data.Signatures),
		"timestamps", len(data.Timestamps),
		"evidence_records", len(data.EvidenceRecords))

	res, err := process.Execute(data, pol, process.Options{
		CurrentTime:      now,
		Level:            level,
		IncludeSemantics: v.IncludeSemantics,
		Locale:           v.Locale,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	reports := report.NewBuilder(data, pol, res).Build()
	var r report.Renderer = reports.Simple
	if v.Report == config.ReportDetailed {
		r = reports.Detailed
	}
	if err := report.Write(cmd.OutOrStdout(), r, format); err != nil {
		return err
	}

	simple := reports.Simple
	logger.Info("validation finished",
		"policy", pol.Name,
		"level", level.String(),
		"signatures", simple.SignaturesCount,
		"valid", simple.ValidSignaturesCount)
	if simple.ValidSignaturesCount != simple.SignaturesCount {
		return fmt.Errorf("%w: %d of %d", ErrNotPassed, simple.ValidSignaturesCount, simple.SignaturesCount)
	}
	return nil
}
