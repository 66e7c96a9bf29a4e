// Package rules is the registry of every rule shipped with rulewalk.
package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/analyzer/nodebugger"
	"github.com/ChainSafe/rulewalk/analyzer/quotemark"
	"github.com/ChainSafe/rulewalk/analyzer/tripleequals"
	"github.com/ChainSafe/rulewalk/analyzer/variablename"
)

// ErrUnknownRule is returned for names that are not registered.
var ErrUnknownRule = errors.New("unknown rule")

type entry struct {
	metadata analyzer.Metadata
	factory  analyzer.Factory
}

var registry = map[string]entry{
	nodebugger.Name:   {metadata: nodebugger.Metadata, factory: nodebugger.New},
	quotemark.Name:    {metadata: quotemark.Metadata, factory: quotemark.New},
	tripleequals.Name: {metadata: tripleequals.Metadata, factory: tripleequals.New},
	variablename.Name: {metadata: variablename.Metadata, factory: variablename.New},
}

// New builds the named rule configured with values.
func New(name string, values ...any) (analyzer.Rule, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	options, err := analyzer.NewOptions(name, values...)
	if err != nil {
		return nil, err
	}
	rule, err := e.factory(options)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule %s: %w", name, err)
	}
	return rule, nil
}

// Lookup returns the metadata of the named rule.
func Lookup(name string) (analyzer.Metadata, bool) {
	e, ok := registry[name]
	return e.metadata, ok
}

// Names returns the registered rule names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the metadata of every registered rule, sorted by name.
func All() []analyzer.Metadata {
	names := Names()
	all := make([]analyzer.Metadata, 0, len(names))
	for _, name := range names {
		all = append(all, registry[name].metadata)
	}
	return all
}
