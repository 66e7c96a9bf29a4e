package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	source := filepath.Join(nested, "main.ts")
	require.NoError(t, os.WriteFile(source, []byte("var a = 1;\n"), 0o600))

	_, err := FindConfigFile(source)
	if err == nil {
		t.Skip("a rulewalk profile exists above the temporary directory")
	}

	rootConfig := filepath.Join(root, "rulewalk.toml")
	require.NoError(t, os.WriteFile(rootConfig, nil, 0o600))
	found, err := FindConfigFile(source)
	require.NoError(t, err)
	assert.Equal(t, rootConfig, found)

	// a nearer profile wins, and yaml is preferred over toml in one directory
	srcYAML := filepath.Join(root, "src", "rulewalk.yaml")
	require.NoError(t, os.WriteFile(srcYAML, nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "rulewalk.toml"), nil, 0o600))
	found, err = FindConfigFile(source)
	require.NoError(t, err)
	assert.Equal(t, srcYAML, found)

	found, err = FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, srcYAML, found)
}
