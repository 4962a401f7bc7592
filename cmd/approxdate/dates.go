package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mrsinham/approxdate/internal/approxdate"
	"github.com/spf13/cobra"
)

// materializeCmd prints the concrete day each date stands for
func materializeCmd(a *app) *cobra.Command {
	var (
		approx string
		sorted bool
	)
	cmd := &cobra.Command{
		Use:   "materialize DATE...",
		Short: "Resolve partial dates to a concrete day",
		Long: `Resolve each DATE (YYYY, YYYY-MM or YYYY-MM-DD, ?? for unknown parts) to
the day used for it: unknown months become July, unknown days the 15th, and a
date with neither month nor day becomes July 1st.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := parseApprox(approx)
			if err != nil {
				return err
			}
			dates := make([]*approxdate.Date, 0, len(args))
			for _, arg := range args {
				d, err := a.parseDate(arg)
				if err != nil {
					return err
				}
				if flags != 0 {
					d.SetFlag(flags, true)
				}
				dates = append(dates, d)
			}
			if sorted {
				approxdate.SortByTime(dates, a.clk)
			}
			for _, d := range dates {
				a.printf("%s\t%s\n", d, d.Time(a.clk).Format(time.DateOnly))
			}
			a.log.Debug().Int("count", len(dates)).Bool("sorted", sorted).Msg("materialized dates")
			return nil
		},
	}
	cmd.Flags().StringVar(&approx, "approx", "", "Comma-separated approximated components: year,month,day,week,age")
	cmd.Flags().BoolVar(&sorted, "sort", false, "Print dates oldest first")
	return cmd
}

// fromAgeCmd converts an age in years to a birth date
func fromAgeCmd(a *app) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "from-age AGE",
		Short: "Compute the birth date for an age in years",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid age %q: %w", args[0], err)
			}
			d := approxdate.New(a.cfg.DateOptions()...)
			if at == "" {
				d.SetDateFromAge(age, a.clk)
			} else {
				ref, err := time.Parse(time.DateOnly, at)
				if err != nil {
					return fmt.Errorf("invalid --at date: %w", err)
				}
				d.SetDateFromAgeAt(age, ref)
			}
			a.printf("%s\t%s\n", d, flagsOf(d))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Reference date YYYY-MM-DD (defaults to now)")
	return cmd
}

// compareCmd orders two dates by their known components
func compareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two dates with the same known components",
		Long: `Print -1, 0 or 1 as A is before, equal to or after B. Only the components
known on both sides are compared; dates with different known components cannot
be ordered.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parseDate(args[0])
			if err != nil {
				return err
			}
			y, err := a.parseDate(args[1])
			if err != nil {
				return err
			}
			c, err := x.Compare(y)
			if errors.Is(err, approxdate.ErrIncomparableFields) {
				a.log.Warn().Str("a", x.String()).Str("b", y.String()).Msg("dates are not comparable")
			}
			if err != nil {
				return err
			}
			a.printf("%d\n", c)
			return nil
		},
	}
}
