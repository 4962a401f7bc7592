package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mrsinham/approxdate/internal/config"
	"github.com/mrsinham/approxdate/internal/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout}
	var (
		configPath string
		logLevel   string
		now        string
	)

	rootCmd := &cobra.Command{
		Use:   "approxdate",
		Short: "Work with partial and approximate dates",
		Long: `approxdate materializes, compares and converts dates whose year, month
or day may be unknown or only estimated, and reads them from DICOM files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if now != "" {
				cfg.Clock.Now = now
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			clk, err := cfg.NewClock()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.clk = clk
			a.log = logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, Output: stderr})
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Load configuration from YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error, off")
	rootCmd.PersistentFlags().StringVar(&now, "now", "", "Reference date YYYY-MM-DD used instead of today")

	rootCmd.AddCommand(
		materializeCmd(a),
		fromAgeCmd(a),
		compareCmd(a),
		dicomCmd(a),
		sampleCmd(a),
		wizardCmd(a),
		versionCmd(a),
	)
	return rootCmd
}
