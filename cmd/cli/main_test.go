package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	for _, key := range []string{"DATABASE_URL", "NORMTEST_CONFIG", "NORMTEST_ALPHA", "NORMTEST_LANGUAGE", "NORMTEST_DIGITS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_Critical(t *testing.T) {
	out, err := run(t, "critical", "lilliefors", "--n", "23")
	require.NoError(t, err)
	assert.Contains(t, out, "critical value: 0.173 (row n=25)")

	out, err = run(t, "critical", "anderson_darling", "--n", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "no critical value")

	_, err = run(t, "critical", "ks", "--n", "10", "--alpha", "2")
	assert.Error(t, err)
}

func TestCLI_Fit(t *testing.T) {
	out, err := run(t, "fit", "sw", "--n", "20", "--statistic", "0.969", "--detail", "full")
	require.NoError(t, err)
	assert.Contains(t, out, "Shapiro-Wilk: the data follow a Normal distribution (95% confidence).")
	assert.Contains(t, out, "critical=0.905")

	out, err = run(t, "fit", "ks", "--n", "30", "--statistic", "0.3", "--mode", "p_value", "--p-value", "0.001", "--detail", "binary")
	require.NoError(t, err)
	assert.Contains(t, out, "1\n")

	_, err = run(t, "fit", "abdi_molin", "--n", "10", "--statistic", "0.2", "--mode", "p_value")
	assert.Error(t, err)
}

func TestCLI_EvaluateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,x\n1,2.1\n2,3.4\n3,1.9\n4,5.6\n5,4.4\n6,3.8\n7,2.9\n8,4.1\n9,3.3\n10,2.7\n11,3.9\n12,4.8\n"), 0o644))

	out, err := run(t, "evaluate", "shapiro_wilk", "--file", path, "--column", "x", "--lang", "pt-BR")
	require.NoError(t, err)
	assert.Contains(t, out, "os dados seguem a distribuição Normal")

	_, err = run(t, "evaluate", "sw")
	assert.Error(t, err)
}

func TestCLI_Battery(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "results.csv")
	out, err := run(t, "battery", "--values", "2.1,3.4,1.9,5.6,4.4,3.8,2.9,4.1,3.3,2.7,3.9,4.8", "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "kolmogorov_smirnov")
	assert.Contains(t, out, "abdi_molin")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 6, bytes.Count(data, []byte("\n")), "header plus five results")

	out, err = run(t, "battery", "--values", "2.1,3.4,1.9,5.6,4.4", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Normality tests")

	_, err = run(t, "battery", "--values", "1,2,3,4", "--format", "pdf")
	assert.Error(t, err)
}

func TestCLI_ExportTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.xlsx")
	out, err := run(t, "export-tables", "--out", path, "--test", "ks", "--test", "sw")
	require.NoError(t, err)
	assert.Contains(t, out, "Tables written to")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Kolmogorov-Smirnov", "Shapiro-Wilk"}, f.GetSheetList())
}

func TestCLI_ResultsRequiresDatabase(t *testing.T) {
	_, err := run(t, "results", "--json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
