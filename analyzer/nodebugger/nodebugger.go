// Package nodebugger implements analyzer.Rule for detecting debugger statements.
package nodebugger

import (
	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/ast"
)

const (
	Name    = "no-debugger"
	Failure = "use of debugger statements is disallowed"
)

var Metadata = analyzer.Metadata{
	Name:        Name,
	Description: "Disallows debugger statements.",
	Messages:    []string{Failure},
}

type noDebugger struct{}

func New(analyzer.Options) (analyzer.Rule, error) {
	return &noDebugger{}, nil
}

func (r *noDebugger) Name() string {
	return Name
}

func (r *noDebugger) Apply(file *ast.File) []*analyzer.Failure {
	return analyzer.NewWalker(file, Name).
		Handle(ast.DebuggerStatement, func(w *analyzer.Walker, node ast.Node) {
			w.AddFailure(node.Pos(), len("debugger"), Failure)
		}).
		Walk()
}
