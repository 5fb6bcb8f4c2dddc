package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"

	"github.com/HugoDaniel/shaderstructs/internal/formats"
)

const cppSource = `#pragma once
{{range .Includes}}
#include <{{.}}>{{end}}

namespace {{.Namespace}}
{
{{range .Structs}}
struct {{.Name}}
{ {{- range .Fields}}{{if .PadBefore}}
    uint8_t {{.PadName}}[{{.PadBefore}}];{{end}}
    {{.Decl}} {{.Name}};{{with .Comment}} // {{.}}{{end}}{{end}}
};
{{end}}
} // namespace {{.Namespace}}
`

const goSource = `// Code generated by {{.Generator}}. DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{range .Imports}}	"{{.}}"
{{end}})
{{end}}{{range .Structs}}
type {{.Name}} struct {
{{range .Fields}}{{if .PadBefore}}	{{.PadName}} [{{.PadBefore}}]byte
{{end}}	{{.Name}} {{.Decl}}{{with .Comment}} // {{.}}{{end}}
{{end}}}
{{end}}{{range .VertexBuffers}}
// {{.Name}}Layout is the vertex buffer layout of {{.Name}}.
var {{.Name}}Layout = gputypes.VertexBufferLayout{
	ArrayStride: {{.Stride}},
	StepMode: gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
{{range .Attributes}}		{Format: gputypes.VertexFormat{{.Format}}, Offset: {{.Offset}}, ShaderLocation: {{.Location}}},
{{end}}	},
}
{{end}}`

var templates = map[formats.Target]*template.Template{
	formats.TargetCPP: template.Must(template.New("cpp").Parse(cppSource)),
	formats.TargetGo:  template.Must(template.New("go").Parse(goSource)),
}

// Render writes the source text of f to w. Go output is gofmt-formatted.
func Render(w io.Writer, f *File) error {
	tmpl, ok := templates[f.Target]
	if !ok {
		return fmt.Errorf("no template for target %q", f.Target)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, f); err != nil {
		return fmt.Errorf("rendering %s output: %w", f.Target, err)
	}

	out := buf.Bytes()
	if f.Target == formats.TargetGo {
		formatted, err := format.Source(out)
		if err != nil {
			return fmt.Errorf("formatting generated Go: %w", err)
		}
		out = formatted
	}
	_, err := w.Write(out)
	return err
}

// Bytes renders f into memory.
func Bytes(f *File) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
