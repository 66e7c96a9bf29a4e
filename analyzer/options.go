package analyzer

import (
	"fmt"
	"slices"
)

// ConfigError reports a rule configured with an option it cannot accept.
type ConfigError struct {
	Rule   string
	Option string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("rule %q: %v", e.Rule, e.Err)
	}
	return fmt.Sprintf("rule %q: option %s: %v", e.Rule, e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Options is the ordered, immutable list of configuration values bound to one
// rule instance, e.g. [true, "allow-null-check"]. A leading boolean toggles
// the rule; strings name the options it should honor.
type Options struct {
	values []any
}

// NewOptions validates values for the named rule. Only booleans and strings
// are accepted.
func NewOptions(rule string, values ...any) (Options, error) {
	for i, v := range values {
		switch v.(type) {
		case bool, string:
		default:
			return Options{}, &ConfigError{
				Rule:   rule,
				Option: fmt.Sprintf("#%d (%v)", i, v),
				Err:    fmt.Errorf("unsupported value type %T, expected boolean or string", v),
			}
		}
	}
	return Options{values: slices.Clone(values)}, nil
}

// Enabled reports the leading boolean, true when there is none.
func (o Options) Enabled() bool {
	if len(o.values) == 0 {
		return true
	}
	if b, ok := o.values[0].(bool); ok {
		return b
	}
	return true
}

// HasOption reports whether name is one of the string values.
func (o Options) HasOption(name string) bool {
	for _, v := range o.values {
		if s, ok := v.(string); ok && s == name {
			return true
		}
	}
	return false
}

// Strings returns the string values in order.
func (o Options) Strings() []string {
	out := make([]string, 0, len(o.values))
	for _, v := range o.values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
