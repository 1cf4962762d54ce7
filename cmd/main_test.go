package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// subcommands keep their flags in package variables, so these tests run
// one after another

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "-j", "FEDRESERVE", "-y", "2021")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Contains(t, lines[0], "2021-01-01")
	assert.Contains(t, lines[0], "Friday")
	assert.Contains(t, lines[11], "New Year's Day (Observed)")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "-j", "CA", "-s", "NL", "-l", "fr", "2010-04-19", "2010-04-26")
	require.NoError(t, err)
	assert.Contains(t, out, "2010-04-19: Jour de la Saint-Georges\n")
	assert.Contains(t, out, "2010-04-26: not a holiday\n")

	_, err = run(t, "check", "2010-13-01")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ca.csv")
	prom := filepath.Join(dir, "export.prom")
	_, err := run(t, "export", "-j", "CA", "-s", "QC", "-y", "2023", "-o", path, "--metrics-file", prom)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2023-06-24,Saturday,St. Jean Baptiste Day")

	data, err = os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `alpaca_holidays_export_jobs_total{format="csv",status="ok"}`)
}

func TestJurisdictions(t *testing.T) {
	out, err := run(t, "jurisdictions")
	require.NoError(t, err)
	assert.Contains(t, out, "FEDRESERVE")
	assert.Contains(t, out, "(default ON)")
	assert.Contains(t, out, "SAT_SUN_TO_NEXT_MON_TUE")
}
