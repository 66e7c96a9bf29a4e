// Package profile loads rule configuration from YAML or TOML files.
//
// A profile maps rule names to either a boolean or a list whose first entry
// toggles the rule and whose remaining entries are option strings:
//
//	rules:
//	  triple-equals: [true, allow-null-check]
//	  no-debugger: true
//	  quotemark: [true, double, avoid-escape]
package profile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/analyzer/quotemark"
	"github.com/ChainSafe/rulewalk/analyzer/rules"
)

// RuleOptions is the raw configuration of one rule.
type RuleOptions []any

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (r *RuleOptions) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}
		*r = RuleOptions{v}
	case yaml.SequenceNode:
		var values []any
		if err := node.Decode(&values); err != nil {
			return err
		}
		*r = values
	default:
		return fmt.Errorf("line %d: expected boolean or list of options", node.Line)
	}
	return nil
}

// Profile is a parsed configuration file.
type Profile struct {
	Rules map[string]RuleOptions `yaml:"rules"`
}

// Default enables every shipped rule; quotemark enforces double quotes.
func Default() *Profile {
	p := &Profile{Rules: make(map[string]RuleOptions)}
	for _, name := range rules.Names() {
		p.Rules[name] = RuleOptions{true}
	}
	p.Rules[quotemark.Name] = RuleOptions{true, quotemark.OptionDouble}
	return p
}

// LoadProfile loads a profile, choosing the decoder by file extension.
func LoadProfile(filename string) (*Profile, error) {
	switch ext := filepath.Ext(filename); ext {
	case ".yaml", ".yml":
		return loadYAML(filename)
	case ".toml":
		return loadTOML(filename)
	default:
		return nil, fmt.Errorf("unsupported profile format %q: %s", ext, filename)
	}
}

func loadYAML(filename string) (*Profile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	var profile Profile
	if err := yaml.NewDecoder(file).Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

func loadTOML(filename string) (*Profile, error) {
	var raw struct {
		Rules map[string]any `toml:"rules"`
	}
	if _, err := toml.DecodeFile(filename, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	profile := Profile{Rules: make(map[string]RuleOptions, len(raw.Rules))}
	for name, value := range raw.Rules {
		switch v := value.(type) {
		case []any:
			profile.Rules[name] = v
		case map[string]any:
			return nil, fmt.Errorf("failed to parse profile: rule %s: expected boolean or list of options", name)
		default:
			profile.Rules[name] = RuleOptions{v}
		}
	}
	return &profile, nil
}

// BuildRules instantiates the enabled rules in name order. Unknown rules are
// logged and skipped. Every rule that cannot be configured is reported in the
// joined error.
func (p *Profile) BuildRules(logger *slog.Logger) ([]analyzer.Rule, error) {
	names := make([]string, 0, len(p.Rules))
	for name := range p.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		built []analyzer.Rule
		errs  []error
	)
	for _, name := range names {
		if _, ok := rules.Lookup(name); !ok {
			logger.Warn("skipping unknown rule", "rule", name)
			continue
		}
		values := p.Rules[name]
		options, err := analyzer.NewOptions(name, values...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !options.Enabled() {
			logger.Debug("rule disabled", "rule", name)
			continue
		}
		rule, err := rules.New(name, values...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		built = append(built, rule)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return built, nil
}
