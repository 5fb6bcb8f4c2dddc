package aggregate

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/HugoDaniel/shaderstructs/internal/diagnostic"
	"github.com/HugoDaniel/shaderstructs/internal/reflection"
)

func vertexDoc(path string, inputs ...reflection.Variable) *reflection.Document {
	return &reflection.Document{
		Path:        path,
		EntryPoints: []reflection.EntryPoint{{Name: "main", Mode: "vert"}},
		Inputs:      inputs,
	}
}

func TestVertexLayout(t *testing.T) {
	d := vertexDoc("shaders/skinned-mesh.vert.spv",
		reflection.Variable{Name: "uv", Type: "vec2", Location: 2},
		reflection.Variable{Name: "position", Type: "vec3", Location: 0},
		reflection.Variable{Name: "normal", Type: "vec3", Location: 1},
		reflection.Variable{Name: "gl_VertexIndex", Type: "int", Location: 0},
	)

	table := NewTable()
	diags := addAll(t, &Aggregator{Vertex: true}, table, d)
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}

	layouts := table.VertexLayouts()
	if len(layouts) != 1 {
		t.Fatalf("expected 1 layout, got %d", len(layouts))
	}
	l := layouts[0]
	if l.Name != "VertexSkinnedMesh" {
		t.Errorf("expected VertexSkinnedMesh, got %s", l.Name)
	}
	if l.Stride != 32 {
		t.Errorf("expected stride 32, got %d", l.Stride)
	}
	expected := []VertexField{
		{Name: "position", ShaderType: "vec3", Location: 0, Format: gputypes.VertexFormatFloat32x3, Offset: 0},
		{Name: "normal", ShaderType: "vec3", Location: 1, Format: gputypes.VertexFormatFloat32x3, Offset: 12},
		{Name: "uv", ShaderType: "vec2", Location: 2, Format: gputypes.VertexFormatFloat32x2, Offset: 24},
	}
	if len(l.Fields) != len(expected) {
		t.Fatalf("expected %d fields, got %+v", len(expected), l.Fields)
	}
	for i, f := range l.Fields {
		if f != expected[i] {
			t.Errorf("field %d: expected %+v, got %+v", i, expected[i], f)
		}
	}

	bl := l.BufferLayout()
	if bl.ArrayStride != 32 || bl.StepMode != gputypes.VertexStepModeVertex || len(bl.Attributes) != 3 {
		t.Fatalf("unexpected buffer layout %+v", bl)
	}
	if bl.Attributes[2] != (gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2}) {
		t.Errorf("unexpected uv attribute %+v", bl.Attributes[2])
	}
}

func TestVertexLayoutDedupe(t *testing.T) {
	in := []reflection.Variable{
		{Name: "position", Type: "vec3", Location: 0},
		{Name: "color", Type: "vec4", Location: 1},
	}
	table := NewTable()
	a := &Aggregator{Vertex: true}
	addAll(t, a, table,
		vertexDoc("a.vert.spv", in...),
		vertexDoc("b.vert.spv", in[1], in[0]),
		vertexDoc("c.vert.spv", in[0]),
		vertexDoc("x/c.vert.spv", in[1]),
	)

	layouts := table.VertexLayouts()
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.Name
	}
	if len(names) != 3 || names[0] != "VertexA" || names[1] != "VertexC" || names[2] != "VertexC_2" {
		t.Errorf("expected [VertexA VertexC VertexC_2], got %v", names)
	}
}

func TestVertexLayoutSkipsOtherStages(t *testing.T) {
	frag := &reflection.Document{
		Path:        "a.frag.spv",
		EntryPoints: []reflection.EntryPoint{{Name: "main", Mode: "frag"}},
		Inputs:      []reflection.Variable{{Name: "uv", Type: "vec2", Location: 0}},
	}
	table := NewTable()
	addAll(t, &Aggregator{Vertex: true}, table, frag)
	addAll(t, &Aggregator{}, table, vertexDoc("b.vert.spv", reflection.Variable{Name: "uv", Type: "vec2"}))
	if n := len(table.VertexLayouts()); n != 0 {
		t.Errorf("expected no layouts, got %d", n)
	}
}

func TestVertexLayoutUnknownFormat(t *testing.T) {
	table := NewTable()
	diags := addAll(t, &Aggregator{Vertex: true}, table, vertexDoc("m.vert.spv",
		reflection.Variable{Name: "position", Type: "vec3", Location: 0},
		reflection.Variable{Name: "bones", Type: "mat4", Location: 1},
	))
	if len(diags) != 1 || diags[0].Code != diagnostic.CodeVertexInput || diags[0].Severity != diagnostic.Warning {
		t.Fatalf("expected one vertex-input warning, got %v", diags)
	}
	l := table.VertexLayouts()[0]
	if l.Fields[1].Format != gputypes.VertexFormatUndefined {
		t.Errorf("expected undefined format, got %v", l.Fields[1].Format)
	}
	if n := len(l.BufferLayout().Attributes); n != 1 {
		t.Errorf("expected 1 attribute, got %d", n)
	}
}

func TestPascal(t *testing.T) {
	tests := map[string]string{
		"mesh":         "Mesh",
		"skinned-mesh": "SkinnedMesh",
		"lit_frag":     "LitFrag",
		"2d":           "2d",
	}
	for in, want := range tests {
		if got := pascal(in); got != want {
			t.Errorf("pascal(%q): expected %q, got %q", in, want, got)
		}
	}
}
