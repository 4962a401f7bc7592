package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/mrsinham/approxdate/internal/approxdate"
	"github.com/mrsinham/approxdate/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags)
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// app is the state shared by all commands once the configuration is loaded.
type app struct {
	cfg config.Config
	clk clock.Clock
	log zerolog.Logger
	out io.Writer
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

// parseDate reads a date argument and applies the configured variants.
func (a *app) parseDate(s string) (*approxdate.Date, error) {
	return approxdate.Parse(s, a.cfg.DateOptions()...)
}

// parseApprox parses a comma-separated list of approximated components.
func parseApprox(input string) (approxdate.Flags, error) {
	var f approxdate.Flags
	if input == "" {
		return f, nil
	}
	for _, p := range strings.Split(input, ",") {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "year":
			f |= approxdate.ApproximateYear
		case "month":
			f |= approxdate.ApproximateMonth
		case "day":
			f |= approxdate.ApproximateDay
		case "week":
			f |= approxdate.ApproximateWeek
		case "age":
			f |= approxdate.ApproximateAge
		default:
			return 0, fmt.Errorf("unknown approximation %q, valid: year, month, day, week, age", p)
		}
	}
	return f, nil
}

func flagsOf(d *approxdate.Date) string {
	m, ok := d.Metadata()
	if !ok {
		return "unset"
	}
	return m.String()
}

// versionCmd shows version information
func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			a.printf("approxdate %s\n", version)
			a.printf("  Commit:     %s\n", commit)
			a.printf("  Build Date: %s\n", buildDate)
		},
	}
}
