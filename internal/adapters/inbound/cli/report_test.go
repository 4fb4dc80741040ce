package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bleready/bleready/internal/adapters/inbound/cli"
	"github.com/bleready/bleready/internal/domain"
)

const fixtureDir = "../../../../testdata/results"

func fixture(name string) string {
	return filepath.Join(fixtureDir, name)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestReportCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "report", fixture("pass.yaml"), "-o", "json")
	require.NoError(t, err)

	var report domain.ComprehensiveValidationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, domain.RecommendGo, report.ExecutiveSummary.GoNoGoRecommendation.Recommendation)
	assert.Equal(t, "exec-pass-001", report.Metadata.ExecutionID)
	assert.Equal(t, 100, report.Statistics.ComponentCoverage.Percentage)
}

func TestReportCommand_AutoIsJSONWhenNotTerminal(t *testing.T) {
	out, err := runCLI(t, "report", fixture("pass.yaml"))
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestReportCommand_Text(t *testing.T) {
	out, err := runCLI(t, "report", fixture("blocked.yaml"), "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "bleready")
	assert.Contains(t, out, "NO-GO")
	assert.Contains(t, out, "Bridge accepts unsigned attendance events")
}

func TestReportCommand_MultipleFilesKeepArgumentOrder(t *testing.T) {
	out, err := runCLI(t, "report",
		fixture("partial.yaml"), fixture("pass.yaml"), fixture("conditional.yaml"),
		"-o", "json")
	require.NoError(t, err)

	var reports []domain.ComprehensiveValidationReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 3)
	assert.Equal(t, "exec-partial-001", reports[0].Metadata.ExecutionID)
	assert.Equal(t, "exec-pass-001", reports[1].Metadata.ExecutionID)
	assert.Equal(t, "exec-conditional-001", reports[2].Metadata.ExecutionID)
}

func TestReportCommand_CIFailsOnNoGo(t *testing.T) {
	_, err := runCLI(t, "report", fixture("blocked.yaml"), "--ci")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deployment gate failed")
}

func TestReportCommand_CIPassesOnGo(t *testing.T) {
	_, err := runCLI(t, "report", fixture("pass.yaml"), "--ci")
	assert.NoError(t, err)
}

func TestReportCommand_CIFailOnFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bleready.yaml"), []byte("fail_on: CONDITIONAL_GO\n"), 0o644))

	_, err := runCLI(t, "report", fixture("conditional.yaml"), "--ci", "--config-dir", dir)
	assert.Error(t, err)

	_, err = runCLI(t, "report", fixture("conditional.yaml"), "--ci")
	assert.NoError(t, err)
}

func TestReportCommand_MissingFile(t *testing.T) {
	_, err := runCLI(t, "report", fixture("missing.yaml"))
	assert.Error(t, err)
}

func TestReportCommand_MalformedResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("critical_issues:\n  - category: URGENT\n    component: NATIVE\n    title: x\n    estimated_effort: LOW\n"), 0o644))

	_, err := runCLI(t, "report", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedResult)
}

func TestSummaryCommand_MisspelledBlockerKeyIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camel.yaml")
	doc := "native_modules:\n  ios:\n    overall_status: PASS\n" +
		"critical_issues:\n  - category: CRITICAL\n    component: BRIDGE\n    title: Unsigned events\n" +
		"    deploymentBlocker: true\n    estimated_effort: LOW\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := runCLI(t, "summary", path, "-o", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedResult)
	assert.NotContains(t, out, `"GO"`)
}

func TestReportCommand_RequiresArgs(t *testing.T) {
	_, err := runCLI(t, "report")
	assert.Error(t, err)
}

func TestReportCommand_InvalidOutputFlag(t *testing.T) {
	_, err := runCLI(t, "report", fixture("pass.yaml"), "-o", "xml")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bleready")
}
