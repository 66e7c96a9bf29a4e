package profile

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/rulewalk/analyzer"
)

func TestLoadProfile(t *testing.T) {
	want := map[string]RuleOptions{
		"triple-equals":   {true, "allow-null-check"},
		"variable-name":   {true, "allow-leading-underscore"},
		"no-debugger":     {false},
		"quotemark":       {true, "single"},
		"max-line-length": {true, 140},
	}

	tests := map[string]struct {
		file string
		want map[string]RuleOptions
	}{
		"yaml": {file: "testdata/rulewalk.yaml", want: want},
		"toml": {file: "testdata/rulewalk.toml", want: want},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := LoadProfile(tc.file)
			require.NoError(t, err)
			require.Len(t, p.Rules, len(tc.want))
			for rule, options := range tc.want {
				require.Contains(t, p.Rules, rule)
				got := p.Rules[rule]
				require.Len(t, got, len(options))
				// numbers decode as int from YAML and int64 from TOML
				for i := range options {
					assert.EqualValues(t, options[i], got[i], "%s[%d]", rule, i)
				}
			}
		})
	}
}

func TestLoadProfileErrors(t *testing.T) {
	tests := map[string]string{
		"unknown extension": "testdata/rulewalk.json",
		"missing file":      "testdata/missing.yaml",
		"mapping value":     "testdata/invalid.yaml",
	}

	for name, file := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadProfile(file)
			assert.Error(t, err)
		})
	}
}

func TestLoadEmptyProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulewalk.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Empty(t, p.Rules)
}

func TestBuildRules(t *testing.T) {
	p, err := LoadProfile("testdata/rulewalk.yaml")
	require.NoError(t, err)
	delete(p.Rules, "max-line-length")
	p.Rules["no-such-rule"] = RuleOptions{true}

	var logs bytes.Buffer
	built, err := p.BuildRules(slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)

	names := make([]string, 0, len(built))
	for _, r := range built {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"quotemark", "triple-equals", "variable-name"}, names)
	assert.Contains(t, logs.String(), "skipping unknown rule")
	assert.Contains(t, logs.String(), "no-such-rule")
}

func TestBuildRulesReportsEveryConfigError(t *testing.T) {
	p := &Profile{Rules: map[string]RuleOptions{
		"triple-equals": {true, 3},
		"quotemark":     {true},
		"no-debugger":   {true},
	}}

	built, err := p.BuildRules(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Nil(t, built)

	var cfgErr *analyzer.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), `rule "quotemark"`)
	assert.Contains(t, err.Error(), `rule "triple-equals": option #1 (3)`)
}

func TestDefault(t *testing.T) {
	built, err := Default().BuildRules(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Len(t, built, 4)
}
