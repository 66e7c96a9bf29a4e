package ast

import "sort"

// File is the root of a parsed source file.
type File struct {
	Span
	FileName   string
	Text       string
	Statements []Node
	lineStarts []int
}

// NewFile creates the root node for text and indexes its line breaks.
func NewFile(fileName, text string, statements []Node) *File {
	return &File{
		Span:       Span{Start: 0, Stop: len(text)},
		FileName:   fileName,
		Text:       text,
		Statements: statements,
		lineStarts: buildLineStarts(text),
	}
}

func (*File) Kind() Kind         { return SourceFile }
func (f *File) Children() []Node { return collect(f.Statements...) }

// LineAndColumn converts a byte offset into a 1-based line and column.
// Offsets past the end of the text are clamped to it.
func (f *File) LineAndColumn(offset int) (line, column int) {
	if offset > len(f.Text) {
		offset = len(f.Text)
	}
	// index of the last line starting at or before offset
	i := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	}) - 1
	return i + 1, offset - f.lineStarts[i] + 1
}

// Offset converts a 1-based line and column back into a byte offset.
func (f *File) Offset(line, column int) int {
	if line < 1 {
		return 0
	}
	if line > len(f.lineStarts) {
		return len(f.Text)
	}
	return f.lineStarts[line-1] + column - 1
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}

func buildLineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
