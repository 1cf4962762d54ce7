package jurisdictions

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alpacahq/holidays/jurisdiction"
	"github.com/alpacahq/holidays/observance"
)

const (
	usage   = "jurisdictions"
	short   = "List the supported jurisdictions"
	long    = "This command prints every jurisdiction with its aliases, subdivisions and locales"
	example = "holidays jurisdictions"
)

// Cmd is the jurisdictions command.
var Cmd = &cobra.Command{
	Use:     usage,
	Short:   short,
	Long:    long,
	Aliases: []string{"j"},
	Example: example,
	Args:    cobra.NoArgs,
	RunE:    executeJurisdictions,
}

// executeJurisdictions implements the jurisdictions command.
func executeJurisdictions(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tALIASES\tSUBDIVISIONS\tLOCALES")
	for _, def := range jurisdiction.Definitions() {
		subdivisions := strings.Join(def.Subdivisions, ",")
		if def.DefaultSubdivision != "" {
			subdivisions += " (default " + def.DefaultSubdivision + ")"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			def.Code, def.Name, strings.Join(def.Aliases, ","), orDash(subdivisions), strings.Join(def.SupportedLocales, ","))
	}
	fmt.Fprintf(w, "\nobservance rules: %s\n", strings.Join(observance.Names(), ", "))
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
