package variablename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/analyzer/linttest"
	"github.com/ChainSafe/rulewalk/analyzer/variablename"
	"github.com/ChainSafe/rulewalk/ast"
)

func TestVariableName(t *testing.T) {
	fixtures := linttest.LoadFixtures(t, "testdata/names.txtar")
	names := fixtures.File(t, "names.ts")
	failure := func(line, start, end int) *analyzer.Failure {
		return linttest.CreateFailure(names, [2]int{line, start}, [2]int{line, end}, variablename.Failure)
	}

	tests := map[string]struct {
		options  []any
		expected []*analyzer.Failure
	}{
		"default": {
			expected: []*analyzer.Failure{
				failure(3, 5, 9),
				failure(4, 5, 12),
				failure(5, 5, 8),
				failure(6, 5, 14),
				failure(8, 16, 26),
				failure(9, 17, 25),
				failure(12, 13, 20),
			},
		},
		"allow leading underscore": {
			options: []any{true, variablename.OptionLeadingUnderscore},
			expected: []*analyzer.Failure{
				failure(4, 5, 12),
				failure(5, 5, 8),
				failure(6, 5, 14),
				failure(8, 16, 26),
				failure(9, 17, 25),
				failure(12, 13, 20),
			},
		},
		"allow trailing underscore": {
			options: []any{true, variablename.OptionTrailingUnderscore},
			expected: []*analyzer.Failure{
				failure(3, 5, 9),
				failure(4, 5, 12),
				failure(5, 5, 8),
				failure(8, 16, 26),
				failure(9, 17, 25),
				failure(12, 13, 20),
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			failures := linttest.ApplyRuleOnFile(t, names, variablename.Name, tc.options...)
			linttest.AssertFailures(t, failures, tc.expected...)
		})
	}
}

func TestVariableNameClean(t *testing.T) {
	file := linttest.LoadFixtures(t, "testdata/names.txtar").File(t, "clean.ts")
	failures := linttest.ApplyRuleOnFile(t, file, variablename.Name)
	assert.NotNil(t, failures)
	assert.Empty(t, failures)
}

func TestVariableNameLeavesTreeUntouched(t *testing.T) {
	file := linttest.LoadFixtures(t, "testdata/names.txtar").File(t, "names.ts")
	before := countNodes(file)
	rule := linttest.GetRule(t, variablename.Name)

	first := rule.Apply(file)
	second := rule.Apply(file)

	assert.Equal(t, before, countNodes(file))
	linttest.AssertFailures(t, second, first...)
}

func countNodes(node ast.Node) int {
	n := 1
	for _, child := range node.Children() {
		n += countNodes(child)
	}
	return n
}
