package renderer

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/ChainSafe/rulewalk/analyzer"
)

const checkstyleVersion = "4.3"

// CheckstyleRenderer renders failures as a Checkstyle XML report, one <file>
// element per file in order of first appearance.
type CheckstyleRenderer struct{}

func NewCheckstyleRenderer() Renderer {
	return &CheckstyleRenderer{}
}

func (r *CheckstyleRenderer) Render(failures []*analyzer.Failure, output io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", checkstyleVersion)

	files := make(map[string]*etree.Element)
	for _, f := range failures {
		file, ok := files[f.FileName]
		if !ok {
			file = root.CreateElement("file")
			file.CreateAttr("name", f.FileName)
			files[f.FileName] = file
		}
		e := file.CreateElement("error")
		e.CreateAttr("line", strconv.Itoa(f.Start.Line))
		e.CreateAttr("column", strconv.Itoa(f.Start.Column))
		e.CreateAttr("severity", "error")
		e.CreateAttr("message", f.Message)
		e.CreateAttr("source", "rulewalk.rules."+f.RuleName)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(output)
	return err
}

func (r *CheckstyleRenderer) Format() string {
	return "checkstyle"
}
