package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/rulewalk/analyzer"
)

func newTestApp(stdout, stderr *bytes.Buffer) *cli.App {
	app := cli.NewApp()
	app.Name = "rulewalk"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Commands = []*cli.Command{LintCommand, RulesCommand}
	return app
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}
	config := write("rulewalk.yaml", "rules:\n  triple-equals: true\n  no-debugger: true\n")
	dirty := write("dirty.ts", "if (a == b) {\n    debugger;\n}\n")
	clean := write("clean.ts", "var a = 1;\n")
	broken := write("broken.ts", "var a = (;\n")

	exitCode := -1
	cli.OsExiter = func(code int) { exitCode = code }
	t.Cleanup(func() { cli.OsExiter = os.Exit })

	tests := map[string]struct {
		args     []string
		exitCode int
		failures int
	}{
		"clean": {
			args:     []string{clean},
			exitCode: -1,
		},
		"failures": {
			args:     []string{"--config", config, dirty, clean},
			exitCode: ExitCodeFailures,
			failures: 2,
		},
		"discovered profile": {
			args:     []string{dirty},
			exitCode: ExitCodeFailures,
			failures: 2,
		},
		"syntax error": {
			args:     []string{broken, dirty},
			exitCode: 1,
			failures: 2,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			exitCode = -1
			output := filepath.Join(t.TempDir(), "report.json")
			var stdout, stderr bytes.Buffer
			args := append([]string{"rulewalk", "lint", "--format", "json", "--output", output}, tc.args...)
			_ = newTestApp(&stdout, &stderr).RunContext(context.Background(), args)
			assert.Equal(t, tc.exitCode, exitCode, stderr.String())

			data, err := os.ReadFile(output)
			require.NoError(t, err)
			var failures []*analyzer.Failure
			require.NoError(t, json.Unmarshal(data, &failures))
			assert.Len(t, failures, tc.failures)
		})
	}
}

func TestLintWithoutFiles(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := newTestApp(&stdout, &stderr).RunContext(context.Background(), []string{"rulewalk", "lint"})
	assert.EqualError(t, err, "no input files")
}

func TestListRules(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, newTestApp(&stdout, &stderr).RunContext(context.Background(), []string{"rulewalk", "rules"}))
	assert.Contains(t, stdout.String(), "triple-equals\n")
	assert.Contains(t, stdout.String(), "    options: allow-null-check\n")
	assert.Contains(t, stdout.String(), "    - use of debugger statements is disallowed\n")

	stdout.Reset()
	require.NoError(t, newTestApp(&stdout, &stderr).RunContext(context.Background(), []string{"rulewalk", "rules", "--json"}))
	var metadata []analyzer.Metadata
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &metadata))
	assert.Len(t, metadata, 4)
}
