// Package analyzer provides the rule contract and the tree walker rules are built on.
package analyzer

import "github.com/ChainSafe/rulewalk/ast"

// Rule represents the interface for a single named check.
type Rule interface {
	// Name returns the identifier the rule is configured and reported under.
	Name() string

	// Apply walks file and returns the failures found, in the order they were
	// reported. It never returns nil and never modifies the tree.
	Apply(file *ast.File) []*Failure
}

// Metadata describes a rule for listings and documentation.
type Metadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Options     []string `json:"options,omitempty"`  // The option strings the rule recognizes.
	Messages    []string `json:"messages,omitempty"` // Every failure message the rule can emit.
}

// Factory builds a configured rule instance.
type Factory func(options Options) (Rule, error)
