package aggregate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/gogpu/gputypes"

	"github.com/HugoDaniel/shaderstructs/internal/diagnostic"
	"github.com/HugoDaniel/shaderstructs/internal/formats"
	"github.com/HugoDaniel/shaderstructs/internal/logger"
	"github.com/HugoDaniel/shaderstructs/internal/reflection"
)

// VertexField is one vertex shader input.
type VertexField struct {
	Name       string
	ShaderType string
	Location   int

	// Format is the attribute format for ShaderType, or
	// VertexFormatUndefined when the type has none.
	Format gputypes.VertexFormat
	// Offset is the byte offset of the field in a tightly packed vertex.
	Offset int
}

// VertexLayout is the packed vertex structure fed to a vertex shader, one
// field per stage input in location order.
type VertexLayout struct {
	Name   string
	Shader string
	Fields []VertexField
	Stride int
}

// BufferLayout describes the layout as a vertex buffer. Fields without a
// vertex format are left out.
func (l VertexLayout) BufferLayout() gputypes.VertexBufferLayout {
	out := gputypes.VertexBufferLayout{
		ArrayStride: uint64(l.Stride),
		StepMode:    gputypes.VertexStepModeVertex,
	}
	for _, f := range l.Fields {
		if f.Format == gputypes.VertexFormatUndefined {
			continue
		}
		out.Attributes = append(out.Attributes, gputypes.VertexAttribute{
			Format:         f.Format,
			Offset:         uint64(f.Offset),
			ShaderLocation: uint32(f.Location),
		})
	}
	return out
}

func (l VertexLayout) key() string {
	var sb strings.Builder
	for _, f := range l.Fields {
		sb.WriteString(strconv.Itoa(f.Location))
		sb.WriteByte(':')
		sb.WriteString(f.Name)
		sb.WriteByte(':')
		sb.WriteString(f.ShaderType)
		sb.WriteByte(';')
	}
	return sb.String()
}

// addVertexLayout records the inputs of a vertex shader. Layouts with the
// same field sequence as an earlier one are dropped.
func addVertexLayout(table *Table, doc *reflection.Document, ignored func(string) bool) []diagnostic.Diagnostic {
	inputs := slices.Clone(doc.Inputs)
	inputs = slices.DeleteFunc(inputs, func(v reflection.Variable) bool { return ignored(v.Name) })
	if len(inputs) == 0 {
		return nil
	}
	slices.SortStableFunc(inputs, func(a, b reflection.Variable) int { return a.Location - b.Location })

	layout := VertexLayout{Name: "Vertex" + pascal(reflection.Stem(doc.Path)), Shader: doc.Path}
	var diags []diagnostic.Diagnostic
	for _, in := range inputs {
		typ := in.Type
		if ref, ok := doc.Types[typ]; ok && reflection.IsTypeRef(typ) {
			typ = ref.Name
		}
		f := VertexField{Name: in.Name, ShaderType: typ, Location: in.Location, Offset: layout.Stride}
		format, size, ok := formats.VertexFormatFor(typ)
		if !ok {
			diags = append(diags, diagnostic.Warnf(diagnostic.CodeVertexInput, doc.Path, layout.Name,
				"input %s at location %d has type %s, which has no vertex attribute format", in.Name, in.Location, typ))
		} else {
			f.Format = format
			layout.Stride += size
		}
		layout.Fields = append(layout.Fields, f)
	}

	key := layout.key()
	if first, ok := table.vertexKeys[key]; ok {
		logger.L().Debug("duplicate vertex layout", "shader", doc.Path, "layout", first)
		return diags
	}

	base := layout.Name
	for i := 2; table.hasName(layout.Name); i++ {
		layout.Name = fmt.Sprintf("%s_%d", base, i)
	}
	table.vertexKeys[key] = layout.Name
	table.vertex = append(table.vertex, layout)
	logger.L().Debug("registered vertex layout", "shader", doc.Path, "layout", layout.Name, "fields", len(layout.Fields))
	return diags
}

func (t *Table) hasName(name string) bool {
	if _, ok := t.entries[name]; ok {
		return true
	}
	for _, l := range t.vertex {
		if l.Name == name {
			return true
		}
	}
	return false
}

// pascal turns a file stem such as "skinned-mesh" into "SkinnedMesh".
func pascal(s string) string {
	var sb strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
