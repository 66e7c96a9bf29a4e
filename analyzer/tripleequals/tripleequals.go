// Package tripleequals implements analyzer.Rule for detecting loose equality operators.
package tripleequals

import (
	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/ast"
)

const (
	Name = "triple-equals"

	EqFailure  = "== should be ==="
	NeqFailure = "!= should be !=="

	// OptionAllowNullCheck permits `== null` and `!= null`.
	OptionAllowNullCheck = "allow-null-check"
)

const comparisonOperatorWidth = 2

var Metadata = analyzer.Metadata{
	Name:        Name,
	Description: "Requires === and !== in place of == and !=.",
	Options:     []string{OptionAllowNullCheck},
	Messages:    []string{EqFailure, NeqFailure},
}

type config struct {
	allowNullCheck bool
}

type tripleEquals struct {
	config config
}

func New(options analyzer.Options) (analyzer.Rule, error) {
	return &tripleEquals{config: config{
		allowNullCheck: options.HasOption(OptionAllowNullCheck),
	}}, nil
}

func (r *tripleEquals) Name() string {
	return Name
}

func (r *tripleEquals) Apply(file *ast.File) []*analyzer.Failure {
	return analyzer.NewWalker(file, Name).
		Handle(ast.BinaryExpression, r.visitBinaryExpression).
		Walk()
}

func (r *tripleEquals) visitBinaryExpression(w *analyzer.Walker, node ast.Node) {
	expr := node.(*ast.Binary)
	if !r.isExpressionAllowed(expr) {
		op := expr.OperatorToken
		switch op.Kind() {
		case ast.EqualsEqualsToken:
			w.AddFailure(op.Pos(), comparisonOperatorWidth, EqFailure)
		case ast.ExclamationEqualsToken:
			w.AddFailure(op.Pos(), comparisonOperatorWidth, NeqFailure)
		}
	}
	w.VisitChildren(node)
}

func (r *tripleEquals) isExpressionAllowed(expr *ast.Binary) bool {
	return r.config.allowNullCheck &&
		(expr.Left.Kind() == ast.NullKeyword || expr.Right.Kind() == ast.NullKeyword)
}
