package check

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/alpacahq/holidays/calendar"
	"github.com/alpacahq/holidays/cmd/common"
	"github.com/alpacahq/holidays/internal/di"
)

const (
	usage   = "check <date>..."
	short   = "Tell whether dates are holidays"
	long    = "This command prints the holiday name of every date given as YYYY-MM-DD"
	example = "holidays check -j FEDRESERVE 2021-06-18 2021-06-19"
)

var (
	// Cmd is the check command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Example: example,
		Args:    cobra.MinimumNArgs(1),
		RunE:    executeCheck,
	}

	settings common.Settings
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	settings.Register(Cmd)
}

// executeCheck implements the check command.
func executeCheck(cmd *cobra.Command, args []string) error {
	dates := make([]calendar.Date, 0, len(args))
	for _, arg := range args {
		d, err := calendar.ParseDate(arg)
		if err != nil {
			return errors.Wrapf(err, "invalid date %q", arg)
		}
		dates = append(dates, d)
	}

	cfg, err := settings.Load(cmd)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	h, err := di.NewContainer(cfg).GetHolidays()
	if err != nil {
		return err
	}

	for _, d := range dates {
		if name, ok := h.NameOf(d); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d, name)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: not a holiday\n", d)
		}
	}
	return nil
}
