package tripleequals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/analyzer/linttest"
	"github.com/ChainSafe/rulewalk/analyzer/tripleequals"
)

func TestTripleEquals(t *testing.T) {
	fixtures := linttest.LoadFixtures(t, "testdata/eq.txtar")
	eq := fixtures.File(t, "eq.ts")
	nested := fixtures.File(t, "nested.ts")

	tests := map[string]struct {
		file     string
		options  []any
		expected func() []*analyzer.Failure
	}{
		"reports every loose comparison": {
			file: "eq.ts",
			expected: func() []*analyzer.Failure {
				return []*analyzer.Failure{
					linttest.CreateFailure(eq, [2]int{3, 18}, [2]int{3, 20}, tripleequals.EqFailure),
					linttest.CreateFailure(eq, [2]int{6, 18}, [2]int{6, 20}, tripleequals.NeqFailure),
					linttest.CreateFailure(eq, [2]int{9, 10}, [2]int{9, 12}, tripleequals.EqFailure),
				}
			},
		},
		"allows comparisons against null": {
			file:    "eq.ts",
			options: []any{true, tripleequals.OptionAllowNullCheck},
			expected: func() []*analyzer.Failure {
				return []*analyzer.Failure{
					linttest.CreateFailure(eq, [2]int{3, 18}, [2]int{3, 20}, tripleequals.EqFailure),
				}
			},
		},
		"unknown options are ignored": {
			file:    "eq.ts",
			options: []any{true, "no-such-option"},
			expected: func() []*analyzer.Failure {
				return []*analyzer.Failure{
					linttest.CreateFailure(eq, [2]int{3, 18}, [2]int{3, 20}, tripleequals.EqFailure),
					linttest.CreateFailure(eq, [2]int{6, 18}, [2]int{6, 20}, tripleequals.NeqFailure),
					linttest.CreateFailure(eq, [2]int{9, 10}, [2]int{9, 12}, tripleequals.EqFailure),
				}
			},
		},
		"visits operands of reported expressions": {
			file: "nested.ts",
			expected: func() []*analyzer.Failure {
				return []*analyzer.Failure{
					linttest.CreateFailure(nested, [2]int{1, 23}, [2]int{1, 25}, tripleequals.NeqFailure),
					linttest.CreateFailure(nested, [2]int{1, 17}, [2]int{1, 19}, tripleequals.EqFailure),
				}
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			failures := linttest.ApplyRuleOnFile(t, fixtures.File(t, tc.file), tripleequals.Name, tc.options...)
			linttest.AssertFailures(t, failures, tc.expected()...)
			for _, f := range failures {
				assert.Equal(t, tripleequals.Name, f.RuleName)
				assert.Equal(t, 2, f.Width())
			}
		})
	}
}

func TestTripleEqualsIsDeterministic(t *testing.T) {
	file := linttest.LoadFixtures(t, "testdata/eq.txtar").File(t, "eq.ts")
	rule := linttest.GetRule(t, tripleequals.Name)

	first := rule.Apply(file)
	second := rule.Apply(file)
	assert.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equals(second[i]))
	}
}

func TestTripleEqualsContainsFailure(t *testing.T) {
	file := linttest.LoadFixtures(t, "testdata/eq.txtar").File(t, "eq.ts")
	failures := linttest.ApplyRuleOnFile(t, file, tripleequals.Name)
	linttest.AssertContainsFailure(t, failures,
		linttest.CreateFailure(file, [2]int{6, 18}, [2]int{6, 20}, tripleequals.NeqFailure))
}
