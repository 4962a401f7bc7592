package main

import (
	"errors"

	"github.com/mrsinham/approxdate/cmd/approxdate/wizard"
	"github.com/mrsinham/approxdate/internal/approxdate"
	"github.com/spf13/cobra"
)

// wizardCmd enters a date interactively
func wizardCmd(a *app) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Enter an approximate date interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var initial *approxdate.Date
			if from != "" {
				var err error
				if initial, err = a.parseDate(from); err != nil {
					return err
				}
			}
			d, err := wizard.Run(initial, a.clk, a.cfg.DateOptions()...)
			if errors.Is(err, wizard.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
			a.printf("%s\t%s\n", wizard.Summary(d), d.Time(a.clk).Format("2006-01-02"))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Pre-fill the form with a date (YYYY-MM-DD)")
	return cmd
}
