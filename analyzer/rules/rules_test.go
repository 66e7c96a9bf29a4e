package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/rulewalk/analyzer"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"no-debugger", "quotemark", "triple-equals", "variable-name"}, Names())
}

func TestNew(t *testing.T) {
	tests := map[string]struct {
		name       string
		values     []any
		wantErr    bool
		wantConfig bool
	}{
		"triple-equals without options": {
			name: "triple-equals",
		},
		"variable-name with options": {
			name:   "variable-name",
			values: []any{true, "allow-leading-underscore"},
		},
		"unknown rule": {
			name:    "no-such-rule",
			wantErr: true,
		},
		"non-string option": {
			name:       "triple-equals",
			values:     []any{true, 42},
			wantErr:    true,
			wantConfig: true,
		},
		"quotemark without mode": {
			name:       "quotemark",
			values:     []any{true},
			wantErr:    true,
			wantConfig: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rule, err := New(tc.name, tc.values...)
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tc.name, rule.Name())
				return
			}
			require.Error(t, err)
			var cfgErr *analyzer.ConfigError
			assert.Equal(t, tc.wantConfig, errors.As(err, &cfgErr))
			if tc.wantConfig {
				assert.Equal(t, tc.name, cfgErr.Rule)
			} else {
				assert.ErrorIs(t, err, ErrUnknownRule)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	md, ok := Lookup("triple-equals")
	require.True(t, ok)
	assert.Equal(t, []string{"allow-null-check"}, md.Options)
	assert.Len(t, md.Messages, 2)

	_, ok = Lookup("no-such-rule")
	assert.False(t, ok)

	all := All()
	require.Len(t, all, len(Names()))
	for i, name := range Names() {
		assert.Equal(t, name, all[i].Name)
	}
}
