// Package variablename implements analyzer.Rule for checking identifier casing.
//
// A name passes when it is entirely upper case (FOO_BAR) or camel case
// (fooBar). Leading and trailing underscores are rejected unless the matching
// option is set. Variables in `declare` statements describe code that lives
// elsewhere and are not checked.
package variablename

import (
	"slices"
	"strings"
	"unicode"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/ast"
)

const (
	Name = "variable-name"

	Failure = "variable name must be in camelcase or uppercase"

	OptionLeadingUnderscore  = "allow-leading-underscore"
	OptionTrailingUnderscore = "allow-trailing-underscore"
)

var Metadata = analyzer.Metadata{
	Name:        Name,
	Description: "Checks variable, parameter and property names for camelCase or UPPER_CASE.",
	Options:     []string{OptionLeadingUnderscore, OptionTrailingUnderscore},
	Messages:    []string{Failure},
}

type config struct {
	allowLeadingUnderscore  bool
	allowTrailingUnderscore bool
}

type variableName struct {
	config config
}

func New(options analyzer.Options) (analyzer.Rule, error) {
	return &variableName{config: config{
		allowLeadingUnderscore:  options.HasOption(OptionLeadingUnderscore),
		allowTrailingUnderscore: options.HasOption(OptionTrailingUnderscore),
	}}, nil
}

func (r *variableName) Name() string {
	return Name
}

func (r *variableName) Apply(file *ast.File) []*analyzer.Failure {
	return analyzer.NewWalker(file, Name).
		Handle(ast.BindingElement, func(w *analyzer.Walker, node ast.Node) {
			r.visitNamed(w, node, node.(*ast.BindingElem).Name)
		}).
		Handle(ast.Parameter, func(w *analyzer.Walker, node ast.Node) {
			r.visitNamed(w, node, node.(*ast.ParameterDecl).Name)
		}).
		Handle(ast.PropertyDeclaration, func(w *analyzer.Walker, node ast.Node) {
			r.visitNamed(w, node, node.(*ast.PropertyDecl).Name)
		}).
		Handle(ast.VariableDeclaration, func(w *analyzer.Walker, node ast.Node) {
			r.visitNamed(w, node, node.(*ast.VariableDecl).Name)
		}).
		Handle(ast.VariableStatement, r.visitVariableStatement).
		Walk()
}

// visitNamed checks name when it is a plain identifier; patterns, computed
// and quoted names are left to the traversal.
func (r *variableName) visitNamed(w *analyzer.Walker, node, name ast.Node) {
	if id, ok := name.(*ast.Ident); ok {
		r.handleVariableName(w, id)
	}
	w.VisitChildren(node)
}

func (r *variableName) visitVariableStatement(w *analyzer.Walker, node ast.Node) {
	// skip 'declare' keywords
	if !node.(*ast.VariableStmt).Modifiers.Has(ast.DeclareKeyword) {
		w.VisitChildren(node)
	}
}

func (r *variableName) handleVariableName(w *analyzer.Walker, name *ast.Ident) {
	if !r.isCamelCase(name.Text) && !isUpperCase(name.Text) {
		w.AddFailureAtNode(name, Failure)
	}
}

func (r *variableName) isCamelCase(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 {
		return true
	}
	first, last := runes[0], runes[len(runes)-1]
	if !r.config.allowLeadingUnderscore && first == '_' {
		return false
	}
	if !r.config.allowTrailingUnderscore && last == '_' {
		return false
	}
	var middle []rune
	if len(runes) > 2 {
		middle = runes[1 : len(runes)-1]
	}
	return first == unicode.ToLower(first) && !slices.Contains(middle, '_')
}

func isUpperCase(name string) bool {
	return name == strings.ToUpper(name)
}
