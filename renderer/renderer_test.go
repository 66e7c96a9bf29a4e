package renderer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/beevik/etree"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/rulewalk/analyzer"
	"github.com/ChainSafe/rulewalk/ast"
)

func sampleFailures() []*analyzer.Failure {
	a := ast.NewFile("a.ts", "if (x == y) {}\ndebugger;\n", nil)
	b := ast.NewFile("b.ts", "var Foo = 1;\n", nil)
	return []*analyzer.Failure{
		analyzer.NewFailure(a, 6, 2, "== should be ===", "triple-equals"),
		analyzer.NewFailure(a, 15, 8, "use of debugger statements is disallowed", "no-debugger"),
		analyzer.NewFailure(b, 4, 3, "variable name must be in camelcase or uppercase", "variable-name"),
	}
}

func TestNew(t *testing.T) {
	for _, format := range Formats {
		r, err := New(format)
		require.NoError(t, err)
		assert.Equal(t, format, r.Format())
	}
	_, err := New("html")
	assert.EqualError(t, err, "invalid format: html")
}

func TestProseRenderer(t *testing.T) {
	color.NoColor = true

	tests := map[string]struct {
		failures []*analyzer.Failure
		want     string
	}{
		"failures": {
			failures: sampleFailures(),
			want: "a.ts[1, 7]: == should be === (triple-equals)\n" +
				"a.ts[2, 1]: use of debugger statements is disallowed (no-debugger)\n" +
				"b.ts[1, 5]: variable name must be in camelcase or uppercase (variable-name)\n" +
				"\n3 failures\n",
		},
		"single failure": {
			failures: sampleFailures()[:1],
			want:     "a.ts[1, 7]: == should be === (triple-equals)\n\n1 failure\n",
		},
		"no failures": {
			want: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewProseRenderer().Render(tc.failures, &buf))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(sampleFailures(), &buf))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "triple-equals", decoded[0]["ruleName"])
	assert.Equal(t, "a.ts", decoded[0]["name"])
	assert.Equal(t, map[string]any{"position": 6.0, "line": 1.0, "character": 7.0}, decoded[0]["startPosition"])

	buf.Reset()
	require.NoError(t, NewJSONRenderer().Render(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestCheckstyleRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCheckstyleRenderer().Render(sampleFailures(), &buf))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	root := doc.SelectElement("checkstyle")
	require.NotNil(t, root)
	assert.Equal(t, "4.3", root.SelectAttrValue("version", ""))

	files := root.SelectElements("file")
	require.Len(t, files, 2)
	assert.Equal(t, "a.ts", files[0].SelectAttrValue("name", ""))
	assert.Equal(t, "b.ts", files[1].SelectAttrValue("name", ""))

	errs := files[0].SelectElements("error")
	require.Len(t, errs, 2)
	assert.Equal(t, "1", errs[0].SelectAttrValue("line", ""))
	assert.Equal(t, "7", errs[0].SelectAttrValue("column", ""))
	assert.Equal(t, "== should be ===", errs[0].SelectAttrValue("message", ""))
	assert.Equal(t, "rulewalk.rules.triple-equals", errs[0].SelectAttrValue("source", ""))
	assert.Equal(t, "2", errs[1].SelectAttrValue("line", ""))
}

func TestCheckstyleRendererEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCheckstyleRenderer().Render(nil, &buf))
	assert.Contains(t, buf.String(), `<checkstyle version="4.3"/>`)
}
