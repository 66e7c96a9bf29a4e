package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ChainSafe/rulewalk/analyzer"
)

var (
	fileNameFmt = color.New(color.FgCyan, color.Bold).SprintFunc()
	positionFmt = color.New(color.FgYellow).SprintFunc()
	ruleNameFmt = color.New(color.Faint).SprintFunc()
	summaryFmt  = color.New(color.FgRed, color.Bold).SprintfFunc()
)

// ProseRenderer writes one line per failure followed by a summary.
type ProseRenderer struct{}

func NewProseRenderer() Renderer {
	return &ProseRenderer{}
}

func (r *ProseRenderer) Render(failures []*analyzer.Failure, output io.Writer) error {
	if len(failures) == 0 {
		return nil
	}

	var report strings.Builder
	for _, f := range failures {
		fmt.Fprintf(&report, "%s%s: %s %s\n",
			fileNameFmt(f.FileName),
			positionFmt(f.Start.String()),
			f.Message,
			ruleNameFmt("("+f.RuleName+")"),
		)
	}
	noun := "failures"
	if len(failures) == 1 {
		noun = "failure"
	}
	report.WriteString(summaryFmt("\n%d %s\n", len(failures), noun))

	// Print the complete report at once
	_, err := output.Write([]byte(report.String()))
	return err
}

func (r *ProseRenderer) Format() string {
	return "prose"
}
