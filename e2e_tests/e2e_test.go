//go:build integration

package e2etest

import (
	"bytes"
	"encoding/json"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "testdata"

type testcase struct {
	path      string
	isPassing bool
	rules     []string
}

func runTest(t *testing.T, config string, cases map[string]testcase) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cmd := exec.Command("../bin/rulewalk", "lint", "--config", config, "--format", "json", tc.path)

			var out bytes.Buffer
			var errOut bytes.Buffer
			cmd.Stdout = &out
			cmd.Stderr = &errOut
			err := cmd.Run()

			var exitErr *exec.ExitError
			if tc.isPassing {
				require.NoError(t, err, "errorOutput: %s", errOut.String())
			} else {
				require.True(t, errors.As(err, &exitErr), "Failed to run CLI: %v. errorOutput: %s", err, errOut.String())
				assert.Equal(t, 2, exitErr.ExitCode())
			}

			failures := []*analyzer.Failure{}
			require.NoError(t, json.Unmarshal(out.Bytes(), &failures))

			found := make([]string, 0, len(failures))
			for _, f := range failures {
				found = append(found, f.RuleName)
			}
			assert.ElementsMatch(t, tc.rules, found)
		})
	}
}

func TestLint(t *testing.T) {
	cases := map[string]testcase{
		"clean": {
			path:      filepath.Join(testdataDir, "clean.ts"),
			isPassing: true,
			rules:     []string{},
		},
		"dirty": {
			path: filepath.Join(testdataDir, "dirty.ts"),
			rules: []string{
				"variable-name",
				"triple-equals",
				"no-debugger",
				"triple-equals",
			},
		},
	}
	runTest(t, filepath.Join(testdataDir, "rulewalk.yaml"), cases)
}
