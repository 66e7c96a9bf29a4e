package analyzer

import (
	"fmt"

	"github.com/ChainSafe/rulewalk/ast"
)

// Position is a location in a source file. Line and Column are 1-based and
// Column counts bytes.
type Position struct {
	Offset int `json:"position"`
	Line   int `json:"line"`
	Column int `json:"character"`
}

// NewPosition resolves offset against the line table of file.
func NewPosition(file *ast.File, offset int) Position {
	line, col := file.LineAndColumn(offset)
	return Position{Offset: offset, Line: line, Column: col}
}

func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.Line, p.Column)
}

// Failure represents a single diagnostic reported by a rule.
type Failure struct {
	FileName string   `json:"name"`
	Start    Position `json:"startPosition"`
	End      Position `json:"endPosition"` // Exclusive.
	Message  string   `json:"failure"`
	RuleName string   `json:"ruleName"`
}

// NewFailure creates a failure covering width bytes starting at start.
func NewFailure(file *ast.File, start, width int, message, ruleName string) *Failure {
	return &Failure{
		FileName: file.FileName,
		Start:    NewPosition(file, start),
		End:      NewPosition(file, start+width),
		Message:  message,
		RuleName: ruleName,
	}
}

// Equals reports whether f and other describe the same diagnostic.
func (f *Failure) Equals(other *Failure) bool {
	if f == nil || other == nil {
		return f == other
	}
	return *f == *other
}

// Width returns the number of bytes the failure covers.
func (f *Failure) Width() int {
	return f.End.Offset - f.Start.Offset
}

func (f *Failure) String() string {
	return fmt.Sprintf("%s%s: %s (%s)", f.FileName, f.Start, f.Message, f.RuleName)
}
