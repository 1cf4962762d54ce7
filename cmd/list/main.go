package list

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidays/calendar"
	"github.com/alpacahq/holidays/cmd/common"
	"github.com/alpacahq/holidays/internal/di"
)

const (
	usage   = "list"
	short   = "List the holidays of a jurisdiction"
	long    = "This command prints the holidays of the selected years in date order"
	example = "holidays list -j CA -s QC -l fr -y 2023"
)

var (
	// Cmd is the list command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Aliases: []string{"ls"},
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    executeList,
	}

	settings common.Settings
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	settings.Register(Cmd)
}

// executeList implements the list command.
func executeList(cmd *cobra.Command, _ []string) error {
	cfg, err := settings.Load(cmd)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	h, err := di.NewContainer(cfg).GetHolidays()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, year := range cfg.Years {
		from := calendar.NewDate(year, time.January, 1)
		to := calendar.NewDate(year, time.December, 31)
		for _, e := range h.Range(from, to) {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Date, e.Date.Weekday(), e.Label())
		}
	}
	return w.Flush()
}
