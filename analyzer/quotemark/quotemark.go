// Package quotemark implements analyzer.Rule for enforcing one quote style on string literals.
package quotemark

import (
	"errors"
	"strings"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/ast"
)

const (
	Name = "quotemark"

	// SingleQuoteFailure is reported for double-quoted literals when single quotes are enforced.
	SingleQuoteFailure = `" should be '`
	// DoubleQuoteFailure is reported for single-quoted literals when double quotes are enforced.
	DoubleQuoteFailure = `' should be "`

	OptionSingle      = "single"
	OptionDouble      = "double"
	OptionAvoidEscape = "avoid-escape"
)

var Metadata = analyzer.Metadata{
	Name:        Name,
	Description: "Enforces consistent single or double quoted string literals.",
	Options:     []string{OptionSingle, OptionDouble, OptionAvoidEscape},
	Messages:    []string{SingleQuoteFailure, DoubleQuoteFailure},
}

type config struct {
	quote       byte
	avoidEscape bool
}

type quoteMark struct {
	config config
}

func New(options analyzer.Options) (analyzer.Rule, error) {
	single, double := options.HasOption(OptionSingle), options.HasOption(OptionDouble)
	cfg := config{avoidEscape: options.HasOption(OptionAvoidEscape)}
	switch {
	case single && double:
		return nil, &analyzer.ConfigError{
			Rule:   Name,
			Option: OptionSingle,
			Err:    errors.New(`conflicts with "double"`),
		}
	case single:
		cfg.quote = '\''
	case double:
		cfg.quote = '"'
	default:
		return nil, &analyzer.ConfigError{
			Rule: Name,
			Err:  errors.New(`one of "single" or "double" is required`),
		}
	}
	return &quoteMark{config: cfg}, nil
}

func (r *quoteMark) Name() string {
	return Name
}

func (r *quoteMark) Apply(file *ast.File) []*analyzer.Failure {
	return analyzer.NewWalker(file, Name).
		Handle(ast.StringLiteral, r.visitStringLiteral).
		Walk()
}

func (r *quoteMark) visitStringLiteral(w *analyzer.Walker, node ast.Node) {
	text := node.(*ast.Literal).Text
	if len(text) < 2 || text[0] == r.config.quote {
		return
	}
	body := text[1 : len(text)-1]
	if r.config.avoidEscape && strings.IndexByte(body, r.config.quote) >= 0 {
		return
	}
	if r.config.quote == '\'' {
		w.AddFailureAtNode(node, SingleQuoteFailure)
	} else {
		w.AddFailureAtNode(node, DoubleQuoteFailure)
	}
}
