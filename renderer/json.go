package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/rulewalk/analyzer"
)

// JSONRenderer renders failures in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(failures []*analyzer.Failure, output io.Writer) error {
	if failures == nil {
		failures = []*analyzer.Failure{}
	}
	return json.NewEncoder(output).Encode(failures)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
