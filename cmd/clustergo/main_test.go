package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `Age,Income,Gender
19,15,Male
21,16,Female
20,14,Male
60,80,Female
62,85,Male
61,82,Female
`

func writeTestInput(t *testing.T) (csvPath string) {
	t.Helper()
	dir := t.TempDir()
	csvPath = filepath.Join(dir, "customers.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0o600))
	return csvPath
}

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clustergo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTestConfig(t, "input: data.csv\nk: 4\nimpute: median\n")

	c, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "data.csv", c.Input)
	assert.Equal(t, 4, c.K)
	assert.Equal(t, "median", c.Impute)

	// Unset fields keep their defaults.
	assert.Equal(t, "standard", c.Scaler)
	assert.Equal(t, "l2", c.Metric)
	assert.Equal(t, 10, c.Restarts)
	assert.Equal(t, 2, c.Components)
}

func TestLoadConfig_MissingInput(t *testing.T) {
	path := writeTestConfig(t, "k: 2\n")
	_, err := loadConfig(path)
	assert.ErrorContains(t, err, "input is required")
}

func TestLoadConfig_BadFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseOptions(t *testing.T) {
	_, err := parseImpute("bogus")
	assert.Error(t, err)
	_, err = parseScaler("bogus")
	assert.Error(t, err)
	_, err = parseEncoder("bogus")
	assert.Error(t, err)
	_, err = parseMetric("bogus")
	assert.Error(t, err)
}

func TestFitCommand(t *testing.T) {
	csvPath := writeTestInput(t)
	outPath := filepath.Join(t.TempDir(), "labels.csv")
	cfgPath := writeTestConfig(t,
		"input: "+csvPath+"\noutput: "+outPath+"\nfeatures: [Age, Income]\nk: 2\nseed: 1\n")

	var stdout bytes.Buffer
	root := newRootCommand()
	root.SetOut(&stdout)
	root.SetArgs([]string{"fit", "-c", cfgPath})

	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "fitted 2 clusters")

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 7) // header + 6 rows
	assert.Equal(t, "row,cluster,pc1,pc2", lines[0])
}

func TestFitCommand_MissingK(t *testing.T) {
	cfgPath := writeTestConfig(t, "input: "+writeTestInput(t)+"\n")

	root := newRootCommand()
	root.SetArgs([]string{"fit", "-c", cfgPath})
	assert.ErrorContains(t, root.Execute(), "k must be set")
}

func TestSweepCommand(t *testing.T) {
	cfgPath := writeTestConfig(t,
		"input: "+writeTestInput(t)+"\nfeatures: [Age, Income]\nseed: 1\nk_max: 4\n")

	var stdout bytes.Buffer
	root := newRootCommand()
	root.SetOut(&stdout)
	root.SetArgs([]string{"sweep", "-c", cfgPath})

	require.NoError(t, root.Execute())
	out := stdout.String()
	assert.Contains(t, out, "inertia")
	assert.Contains(t, out, "suggested k (elbow): 2")
}
