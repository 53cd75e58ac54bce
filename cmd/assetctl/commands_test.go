package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns what it printed to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ASSETS_SOURCE", "")
	t.Setenv("KEYWORDS_FILE", "")
	sourceFlag, keywordsFlag, recommendLimit = "", "", 0

	stdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	rootCmd.SetArgs(args)
	runErr := rootCmd.Execute()

	w.Close()
	os.Stdout = stdout
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String(), runErr
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "انارة", "في", "الرياض")
	require.NoError(t, err)

	assert.Contains(t, out, "2 assets")
	assert.Contains(t, out, "24009041.0")
	assert.Contains(t, out, "24007191.0")
}

func TestSearchCommandNoResults(t *testing.T) {
	out, err := run(t, "search", "مكة")
	require.NoError(t, err)
	assert.Contains(t, out, "لم يتم العثور على نتائج")
}

func TestAskCommand(t *testing.T) {
	out, err := run(t, "ask", "اعطني إحصائيات الأصول")
	require.NoError(t, err)
	assert.Contains(t, out, "إجمالي الأصول: 10")
}

func TestSummaryCommand(t *testing.T) {
	out, err := run(t, "summary")
	require.NoError(t, err)

	assert.Contains(t, out, "858")
	assert.Contains(t, out, "24000395.0")
}

func TestRecommendCommand(t *testing.T) {
	out, err := run(t, "recommend", "--limit", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "24000395.0")
	assert.NotContains(t, out, "24009041.0")
}

func TestDepartmentsCommand(t *testing.T) {
	out, err := run(t, "departments")
	require.NoError(t, err)
	assert.Contains(t, out, "مركز المخاطر الجيولوجية")
}

func TestReportCommand(t *testing.T) {
	out, err := run(t, "report", "by_city", "الرياض")
	require.NoError(t, err)
	assert.Contains(t, out, "2 assets")

	_, err = run(t, "report", "weekly")
	assert.Error(t, err)
}
