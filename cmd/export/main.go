package export

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidays/cmd/common"
	exp "github.com/alpacahq/holidays/export"
	"github.com/alpacahq/holidays/internal/di"
	"github.com/alpacahq/holidays/metrics"
	"github.com/alpacahq/holidays/utils/log"
)

const (
	usage   = "export"
	short   = "Write holidays to files"
	long    = "This command writes the holidays of the selected years as json, yaml, csv, msgpack or ics. " +
		"The export jobs of the configuration file run concurrently; without any, one file is written " +
		"to --output, or to standard output when it is empty. A path ending in .gz is compressed."
	example = "holidays export -j CA -s NL -y 2023 -y 2024 -o nl.ics"

	outputDesc  = "output path; the extension selects the format unless --format is set"
	formatDesc  = "output format"
	metricsDesc = "write job metrics in the prometheus text format to this path"
)

var (
	// Cmd is the export command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Example: example,
		Args:    cobra.NoArgs,
		RunE:    executeExport,
	}

	settings    common.Settings
	output      string
	format      string
	metricsFile string
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	settings.Register(Cmd)
	Cmd.Flags().StringVarP(&output, "output", "o", "", outputDesc)
	Cmd.Flags().StringVarP(&format, "format", "f", "", formatDesc)
	Cmd.Flags().StringVar(&metricsFile, "metrics-file", "", metricsDesc)
}

// executeExport implements the export command.
func executeExport(cmd *cobra.Command, _ []string) error {
	cfg, err := settings.Load(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = format
	}
	cmd.SilenceUsage = true

	c := di.NewContainer(cfg)

	if output == "" && len(cfg.Exports) == 0 {
		h, err := c.GetHolidays()
		if err != nil {
			return err
		}
		f, err := exp.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		return exp.Write(cmd.OutOrStdout(), f, exp.FromHolidays(h, cfg.Years...))
	}

	exports := c.GetExportSettings(output)
	if output != "" && cmd.Flags().Changed("format") {
		for _, s := range exports {
			s.Format = format
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs := make(chan interface{})
	p := c.NewExportPool(cfg.Years)
	go func() {
		defer close(jobs)
		for _, s := range exports {
			select {
			case jobs <- s:
			case <-ctx.Done():
				return
			}
		}
	}()
	p.Work(ctx, jobs)
	err = p.Wait()
	if metricsFile != "" {
		if merr := metrics.WriteTextfile(metricsFile); merr != nil {
			log.Error("%v", merr)
		}
	}
	if err != nil {
		return err
	}
	log.Debug("exported %d file(s)", len(exports))
	return nil
}
