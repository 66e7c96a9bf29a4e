// Package linttest provides helpers for testing rules against source fixtures.
//
// Fixtures are txtar archives: every file in the archive is parsed and can be
// fetched by name. Expected failures are written with 1-based [line, column]
// pairs, the end pair being exclusive.
package linttest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/analyzer/rules"
	"github.com/ChainSafe/rulewalk/ast"
	"github.com/ChainSafe/rulewalk/tsparser"
)

// Fixtures holds the parsed files of one archive keyed by their archive name.
type Fixtures map[string]*ast.File

// LoadFixtures parses every file of the txtar archive at path.
func LoadFixtures(t testing.TB, path string) Fixtures {
	t.Helper()
	archive, err := txtar.ParseFile(path)
	require.NoError(t, err)
	fixtures := make(Fixtures, len(archive.Files))
	for _, f := range archive.Files {
		file, err := tsparser.ParseSource(f.Name, string(f.Data))
		require.NoError(t, err, "parsing fixture %s", f.Name)
		fixtures[f.Name] = file
	}
	return fixtures
}

// File returns the fixture called name.
func (f Fixtures) File(t testing.TB, name string) *ast.File {
	t.Helper()
	file, ok := f[name]
	require.True(t, ok, "no fixture named %s", name)
	return file
}

// GetRule builds the named rule from the registry.
func GetRule(t testing.TB, name string, values ...any) analyzer.Rule {
	t.Helper()
	rule, err := rules.New(name, values...)
	require.NoError(t, err)
	return rule
}

// ApplyRuleOnFile builds the named rule and applies it to file.
func ApplyRuleOnFile(t testing.TB, file *ast.File, name string, values ...any) []*analyzer.Failure {
	t.Helper()
	return GetRule(t, name, values...).Apply(file)
}

// CreateFailure builds the failure expected between start and end in file.
func CreateFailure(file *ast.File, start, end [2]int, message string) *analyzer.Failure {
	return &analyzer.Failure{
		FileName: file.FileName,
		Start:    position(file, start),
		End:      position(file, end),
		Message:  message,
	}
}

func position(file *ast.File, lc [2]int) analyzer.Position {
	return analyzer.Position{Offset: file.Offset(lc[0], lc[1]), Line: lc[0], Column: lc[1]}
}

// AssertContainsFailure checks that some failure in actual matches expected.
// The rule name is not compared.
func AssertContainsFailure(t testing.TB, actual []*analyzer.Failure, expected *analyzer.Failure) bool {
	t.Helper()
	for _, f := range actual {
		if matches(f, expected) {
			return true
		}
	}
	return assert.Fail(t, "failure not found", "expected %s in %v", expected, actual)
}

// AssertFailures checks that actual holds exactly the expected failures in order.
func AssertFailures(t testing.TB, actual []*analyzer.Failure, expected ...*analyzer.Failure) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	ok := true
	for i := range expected {
		if !matches(actual[i], expected[i]) {
			ok = assert.Fail(t, "failure mismatch", "at index %d: expected %s, got %s", i, expected[i], actual[i])
		}
	}
	return ok
}

func matches(actual, expected *analyzer.Failure) bool {
	return actual.FileName == expected.FileName &&
		actual.Start == expected.Start &&
		actual.End == expected.End &&
		actual.Message == expected.Message
}
