package analyzer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/ast"
)

func TestNewFailure(t *testing.T) {
	file := ast.NewFile("a.ts", "var x;\nif (a == b) {}\n", nil)

	f := analyzer.NewFailure(file, 13, 2, "== should be ===", "triple-equals")
	assert.Equal(t, analyzer.Position{Offset: 13, Line: 2, Column: 7}, f.Start)
	assert.Equal(t, analyzer.Position{Offset: 15, Line: 2, Column: 9}, f.End)
	assert.Equal(t, 2, f.Width())
	assert.Equal(t, "a.ts[2, 7]: == should be === (triple-equals)", f.String())
}

func TestFailureEquals(t *testing.T) {
	file := ast.NewFile("a.ts", "debugger;", nil)
	base := analyzer.NewFailure(file, 0, 8, "msg", "rule")

	tests := map[string]struct {
		other *analyzer.Failure
		equal bool
	}{
		"same":          {other: analyzer.NewFailure(file, 0, 8, "msg", "rule"), equal: true},
		"other message": {other: analyzer.NewFailure(file, 0, 8, "other", "rule")},
		"other rule":    {other: analyzer.NewFailure(file, 0, 8, "msg", "other")},
		"other width":   {other: analyzer.NewFailure(file, 0, 9, "msg", "rule")},
		"nil":           {other: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.equal, base.Equals(tc.other))
		})
	}
}

func TestFailureJSON(t *testing.T) {
	file := ast.NewFile("a.ts", "debugger;", nil)
	data, err := json.Marshal(analyzer.NewFailure(file, 0, 8, "msg", "no-debugger"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "a.ts",
		"startPosition": {"position": 0, "line": 1, "character": 1},
		"endPosition": {"position": 8, "line": 1, "character": 9},
		"failure": "msg",
		"ruleName": "no-debugger"
	}`, string(data))
}
