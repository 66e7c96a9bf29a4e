// Package tsparser parses the TypeScript subset understood by the analyzers.
//
// Supported: variable statements with destructuring, functions and arrow
// functions, classes with properties, methods and constructors, if/while/
// return/debugger statements, and the usual unary, binary, conditional, call
// and member expressions. Type annotations are kept as opaque TypeReference
// nodes.
package tsparser

import (
	"fmt"
	"os"

	"github.com/ChainSafe/rulewalk/ast"
)

// Parser holds interface for producing syntax trees
type Parser interface {
	Parse(path string) (*ast.File, error)
}

// SyntaxError reports the first construct the parser could not understand.
type SyntaxError struct {
	File   string
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s[%d, %d]: %s", e.File, e.Line, e.Column, e.Msg)
}

type ParserImpl struct{}

func NewParser() Parser {
	return &ParserImpl{}
}

func (p *ParserImpl) Parse(path string) (*ast.File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading source file: %s: %w", path, err)
	}
	return ParseSource(path, string(content))
}

// ParseSource parses text, using fileName for positions and failures.
func ParseSource(fileName, text string) (*ast.File, error) {
	tokens, err := scan(text)
	if err != nil {
		return nil, toSyntaxError(fileName, text, err)
	}
	p := &parser{text: text, tokens: tokens}
	statements, err := p.parseSourceElements()
	if err != nil {
		return nil, toSyntaxError(fileName, text, err)
	}
	return ast.NewFile(fileName, text, statements), nil
}

// offsetError is raised internally with a byte offset and converted to a
// SyntaxError once the line table exists.
type offsetError struct {
	offset int
	msg    string
}

func (e *offsetError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.offset, e.msg)
}

func toSyntaxError(fileName, text string, err error) error {
	oe, ok := err.(*offsetError)
	if !ok {
		return err
	}
	line, col := ast.NewFile(fileName, text, nil).LineAndColumn(oe.offset)
	return &SyntaxError{File: fileName, Line: line, Column: col, Msg: oe.msg}
}
