package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineAndColumn(t *testing.T) {
	file := NewFile("a.ts", "ab\n\ncd\n", nil)

	tests := map[string]struct {
		offset int
		line   int
		column int
	}{
		"start":         {offset: 0, line: 1, column: 1},
		"end of line":   {offset: 2, line: 1, column: 3},
		"empty line":    {offset: 3, line: 2, column: 1},
		"third line":    {offset: 5, line: 3, column: 2},
		"end of text":   {offset: 7, line: 4, column: 1},
		"past the text": {offset: 100, line: 4, column: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			line, column := file.LineAndColumn(tc.offset)
			assert.Equal(t, tc.line, line)
			assert.Equal(t, tc.column, column)
			if tc.offset <= len(file.Text) {
				assert.Equal(t, tc.offset, file.Offset(line, column))
			}
		})
	}
	assert.Equal(t, 4, file.LineCount())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "BinaryExpression", BinaryExpression.String())
	assert.Equal(t, "kind(-1)", Kind(-1).String())
	assert.True(t, DebuggerKeyword.IsKeyword())
	assert.False(t, DeclareKeyword.IsKeyword())
	assert.Equal(t, NullKeyword, LookupKeyword("null"))
	assert.Equal(t, Identifier, LookupKeyword("declare"))

	kind, ok := LookupModifier("declare")
	assert.True(t, ok)
	assert.Equal(t, DeclareKeyword, kind)
}
