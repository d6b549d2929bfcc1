package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"unit-converter/internal/config"
	"unit-converter/internal/conversion"
)

// deps is populated before any subcommand runs
type deps struct {
	cfg     *config.Config
	logger  *slog.Logger
	service conversion.Service
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	d := &deps{}

	cmd := &cobra.Command{
		Use:          "unitconv",
		Short:        "Convert values between units of length, weight, temperature and time",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if debug {
				cfg.Log.Level = "debug"
			}

			d.cfg = cfg
			d.logger = cfg.NewLoggerTo(c.ErrOrStderr())
			d.service = conversion.NewConversionService(d.logger)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")
	cmd.AddCommand(convertCmd(d))
	cmd.AddCommand(unitsCmd(d))
	return cmd
}
