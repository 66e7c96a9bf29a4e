// Package renderer provides a way to render failures in different formats.
package renderer

import (
	"fmt"
	"io"

	"github.com/ChainSafe/rulewalk/analyzer"
)

// Renderer defines the interface for rendering lint results in different formats.
type Renderer interface {
	// Render takes a list of failures and outputs them in the desired format to the provided writer.
	Render(failures []*analyzer.Failure, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "prose", "checkstyle").
	Format() string
}

// Formats lists the names accepted by New.
var Formats = []string{"prose", "json", "checkstyle"}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch format {
	case "prose":
		return NewProseRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "checkstyle":
		return NewCheckstyleRenderer(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}
