package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HugoDaniel/shaderstructs/internal/aggregate"
	"github.com/HugoDaniel/shaderstructs/internal/diagnostic"
	"github.com/HugoDaniel/shaderstructs/internal/formats"
	"github.com/HugoDaniel/shaderstructs/internal/reflection"
	"github.com/HugoDaniel/shaderstructs/internal/test"
)

func off(n int) *int { return &n }

func member(name, typ string, offset int, dims ...reflection.ArrayDim) reflection.Member {
	return reflection.Member{Name: name, Type: typ, Offset: off(offset), Array: dims}
}

func lit(n int) reflection.ArrayDim    { return reflection.ArrayDim{Size: n, Literal: true} }
func nonLit(n int) reflection.ArrayDim { return reflection.ArrayDim{Size: n, Literal: false} }

func tableOf(t *testing.T, vertex bool, docs ...*reflection.Document) *aggregate.Table {
	t.Helper()
	table := aggregate.NewTable()
	a := &aggregate.Aggregator{Vertex: vertex}
	for _, d := range docs {
		if _, err := a.Add(table, d); err != nil {
			t.Fatalf("Add(%s) failed: %v", d.Path, err)
		}
	}
	return table
}

func materialDoc(path string) *reflection.Document {
	return &reflection.Document{Path: path, Types: map[string]reflection.Type{
		"_7": {Name: "Material", Members: []reflection.Member{
			member("color", "vec3", 0),
			member("roughness", "float", 12),
		}},
	}}
}

func build(t *testing.T, table *aggregate.Table, target formats.Target, opts Options) (string, *File, []diagnostic.Diagnostic) {
	t.Helper()
	dict, err := formats.For(target)
	if err != nil {
		t.Fatalf("For(%s) failed: %v", target, err)
	}
	f, diags := Build(table, dict, opts)
	out, err := Bytes(f)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return string(out), f, diags
}

func TestRenderCPP(t *testing.T) {
	table := tableOf(t, false, materialDoc("a.frag.spv"), materialDoc("b.frag.spv"))
	out, _, diags := build(t, table, formats.TargetCPP, Options{})
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}

	test.AssertEqualWithDiff(t, out, `#pragma once

#include <glm/glm.hpp>
#include <cstdint>
#include <vector>
#include <array>

namespace glsl
{

struct Material
{
    glm::vec3 color;
    float roughness;
};

} // namespace glsl
`)
}

func TestRenderCPPNamespace(t *testing.T) {
	out, _, _ := build(t, aggregate.NewTable(), formats.TargetCPP, Options{Namespace: "gpu"})
	if !strings.Contains(out, "namespace gpu\n{\n\n} // namespace gpu\n") {
		t.Errorf("unexpected empty output:\n%s", out)
	}
}

func TestRenderGo(t *testing.T) {
	table := tableOf(t, false, materialDoc("a.frag.spv"))
	out, _, _ := build(t, table, formats.TargetGo, Options{Package: "shaders"})

	test.AssertEqualWithDiff(t, out, `// Code generated by shaderstructs. DO NOT EDIT.

package shaders

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Material struct {
	Color     mgl32.Vec3
	Roughness float32
}
`)
}

func TestRenderGoWithoutImports(t *testing.T) {
	d := &reflection.Document{Path: "a.spv", Types: map[string]reflection.Type{
		"_1": {Name: "counters", Members: []reflection.Member{member("hits", "uint", 0), member("_m1", "int", 4)}},
	}}
	out, _, _ := build(t, tableOf(t, false, d), formats.TargetGo, Options{})

	if strings.Contains(out, "import") {
		t.Errorf("expected no imports:\n%s", out)
	}
	if !strings.Contains(out, "type Counters struct {\n\tHits uint32\n\tM1   int32\n}") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestArrays(t *testing.T) {
	d := &reflection.Document{Path: "a.spv", Types: map[string]reflection.Type{
		"_1": {Name: "Arrays", Members: []reflection.Member{
			member("fixed", "float", 0, lit(4)),
			member("spec", "float", 16, nonLit(3)),
			member("grid", "vec2", 32, lit(2), lit(3)),
			member("runtime", "uint", 80, lit(0)),
		}},
	}}
	table := tableOf(t, false, d)

	tests := []struct {
		target formats.Target
		decls  []string
	}{
		{formats.TargetCPP, []string{
			"std::array<float, 4>",
			"std::vector<float>",
			"std::array<std::array<glm::vec2, 2>, 3>",
			"std::vector<uint32_t>",
		}},
		{formats.TargetGo, []string{
			"[4]float32",
			"[]float32",
			"[3][2]mgl32.Vec2",
			"[]uint32",
		}},
	}
	kinds := []Kind{Fixed, Dynamic, Fixed, Dynamic}

	for _, tt := range tests {
		_, f, _ := build(t, table, tt.target, Options{})
		fields := f.Structs[0].Fields
		for i, fd := range fields {
			if fd.Decl != tt.decls[i] {
				t.Errorf("%s field %s: expected %q, got %q", tt.target, fd.Name, tt.decls[i], fd.Decl)
			}
			if fd.Kind != kinds[i] {
				t.Errorf("%s field %s: expected kind %v, got %v", tt.target, fd.Name, kinds[i], fd.Kind)
			}
		}
	}
}

func TestReferencedTypeName(t *testing.T) {
	d := &reflection.Document{Path: "scene.spv", Types: map[string]reflection.Type{
		"_3": {Name: "Light", Members: []reflection.Member{member("dir", "vec3", 0), member("power", "float", 12)}},
		"_5": {Name: "scene", Members: []reflection.Member{member("key", "_3", 0), member("fill", "_3", 16, lit(2))}},
	}}
	table := tableOf(t, false, d)

	cpp, _, _ := build(t, table, formats.TargetCPP, Options{})
	if !strings.Contains(cpp, "    Light key;\n    std::array<Light, 2> fill;\n") {
		t.Errorf("expected resolved member types:\n%s", cpp)
	}

	goOut, _, _ := build(t, table, formats.TargetGo, Options{})
	if !strings.Contains(goOut, "type Scene struct {\n\tKey  Light\n\tFill [2]Light\n}") {
		t.Errorf("expected resolved member types:\n%s", goOut)
	}
}

func TestUnmappedTypesPassThrough(t *testing.T) {
	d := &reflection.Document{Path: "a.spv", Types: map[string]reflection.Type{
		"_1": {Name: "Odd", Members: []reflection.Member{member("s", "sampler2D", 0)}},
	}}
	cpp, _, _ := build(t, tableOf(t, false, d), formats.TargetCPP, Options{})
	if !strings.Contains(cpp, "    sampler2D s;\n") {
		t.Errorf("expected the shader type verbatim:\n%s", cpp)
	}
}

func TestPadding(t *testing.T) {
	d := &reflection.Document{Path: "a.spv", Types: map[string]reflection.Type{
		"_1": {Name: "Inner", Members: []reflection.Member{member("v", "vec3", 0), member("w", "float", 12)}},
		"_2": {Name: "Padded", Members: []reflection.Member{
			member("a", "float", 0),
			member("b", "vec4", 16),
			member("inner", "_1", 32),
			member("c", "float", 52),
			member("tail", "float", 64, lit(0)),
			member("after", "float", 80),
		}},
	}}
	table := tableOf(t, false, d)

	cpp, f, _ := build(t, table, formats.TargetCPP, Options{Pad: true})
	expected := `struct Padded
{
    float a;
    uint8_t _pad0[12];
    glm::vec4 b;
    Inner inner;
    uint8_t _pad1[4];
    float c;
    uint8_t _pad2[8];
    std::vector<float> tail;
    float after;
};`
	if !strings.Contains(cpp, expected) {
		t.Errorf("unexpected padding:\n%s", cpp)
	}
	if f.Structs[1].Fields[5].PadBefore != 0 {
		t.Error("expected no padding after a dynamic member")
	}

	goOut, _, _ := build(t, table, formats.TargetGo, Options{Pad: true})
	if !strings.Contains(goOut, "\tA     float32\n\t_     [12]byte\n\tB     mgl32.Vec4\n") {
		t.Errorf("unexpected Go padding:\n%s", goOut)
	}

	plain, _, _ := build(t, table, formats.TargetCPP, Options{})
	if strings.Contains(plain, "_pad") {
		t.Errorf("expected no padding without Pad:\n%s", plain)
	}
}

func TestSizeMismatch(t *testing.T) {
	d := &reflection.Document{Path: "m.spv", Types: map[string]reflection.Type{
		"_1": {Name: "Mixed", Members: []reflection.Member{
			member("model", "mat3", 0),
			member("flag", "bool", 48),
			member("pos", "vec3", 64),
			member("list", "mat3", 80, lit(2)),
		}},
	}}
	table := tableOf(t, false, d)

	_, _, diags := build(t, table, formats.TargetCPP, Options{})
	if len(diags) != 2 {
		t.Fatalf("expected 2 warnings (mat3, bool), got %v", diags)
	}
	for _, d := range diags {
		if d.Code != diagnostic.CodeSizeMismatch || d.Severity != diagnostic.Warning || d.Type != "Mixed" || d.Shader != "m.spv" {
			t.Errorf("unexpected diagnostic %+v", d)
		}
	}

	// Go maps bool to a 32-bit value.
	_, _, diags = build(t, table, formats.TargetGo, Options{})
	if len(diags) != 1 || !strings.Contains(diags[0].Message, "mat3") {
		t.Errorf("expected only the mat3 warning, got %v", diags)
	}
}

func vertexDoc() *reflection.Document {
	return &reflection.Document{
		Path:        "shaders/mesh.vert.spv",
		EntryPoints: []reflection.EntryPoint{{Name: "main", Mode: "vert"}},
		Inputs: []reflection.Variable{
			{Name: "uv", Type: "vec2", Location: 1},
			{Name: "position", Type: "vec3", Location: 0},
			{Name: "joints", Type: "uvec4", Location: 2},
		},
	}
}

func TestVertexStructs(t *testing.T) {
	table := tableOf(t, true, materialDoc("a.frag.spv"), vertexDoc())

	cpp, f, _ := build(t, table, formats.TargetCPP, Options{})
	if len(f.Structs) != 2 || f.Structs[1].Name != "VertexMesh" {
		t.Fatalf("expected the vertex struct after Material, got %+v", f.Structs)
	}
	expected := `struct VertexMesh
{
    glm::vec3 position; // location 0
    glm::vec2 uv; // location 1
    glm::u32vec4 joints; // location 2
};`
	if !strings.Contains(cpp, expected) {
		t.Errorf("unexpected vertex struct:\n%s", cpp)
	}
	if len(f.VertexBuffers) != 0 {
		t.Error("C++ output has no vertex buffer descriptions")
	}

	goOut, f, _ := build(t, table, formats.TargetGo, Options{})
	for _, want := range []string{
		"\t\"github.com/gogpu/gputypes\"\n",
		"type VertexMesh struct {\n\tPosition mgl32.Vec3 // location 0\n\tUv       mgl32.Vec2 // location 1\n\tJoints   [4]uint32  // location 2\n}",
		"var VertexMeshLayout = gputypes.VertexBufferLayout{\n\tArrayStride: 36,\n",
		"{Format: gputypes.VertexFormatUint32x4, Offset: 20, ShaderLocation: 2},",
	} {
		if !strings.Contains(goOut, want) {
			t.Errorf("expected %q in:\n%s", want, goOut)
		}
	}
	if len(f.VertexBuffers) != 1 || len(f.VertexBuffers[0].Attributes) != 3 {
		t.Errorf("unexpected vertex buffers %+v", f.VertexBuffers)
	}
}

func TestWriteFileReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shaders.hpp")
	if err := os.WriteFile(path, []byte(strings.Repeat("stale content\n", 500)), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	dict, _ := formats.For(formats.TargetCPP)
	f, _ := Build(tableOf(t, false, materialDoc("a.spv")), dict, Options{})
	if err := WriteFile(path, f); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if strings.Contains(string(data), "stale") || !strings.HasPrefix(string(data), "#pragma once") {
		t.Errorf("expected full replacement, got:\n%s", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestWriteFileUnwritable(t *testing.T) {
	dict, _ := formats.For(formats.TargetCPP)
	f, _ := Build(aggregate.NewTable(), dict, Options{})
	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.hpp"), f); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestExported(t *testing.T) {
	tests := map[string]string{
		"roughness": "Roughness",
		"_m0":       "M0",
		"__":        "Field",
		"_2d":       "F2d",
		"Already":   "Already",
	}
	for in, want := range tests {
		if got := exported(in); got != want {
			t.Errorf("exported(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestFieldNamesUnique(t *testing.T) {
	d := &reflection.Document{Path: "a.spv", Types: map[string]reflection.Type{
		"_1": {Name: "Dup", Members: []reflection.Member{member("value", "float", 0), member("Value", "float", 4)}},
	}}
	_, f, _ := build(t, tableOf(t, false, d), formats.TargetGo, Options{})
	fields := f.Structs[0].Fields
	if fields[0].Name != "Value" || fields[1].Name != "Value2" {
		t.Errorf("expected Value and Value2, got %s and %s", fields[0].Name, fields[1].Name)
	}
}

func TestTypeNamesUnique(t *testing.T) {
	lights := &reflection.Document{Path: "lights.spv", Types: map[string]reflection.Type{
		"_1": {Name: "light", Members: []reflection.Member{member("dir", "vec3", 0)}},
		"_2": {Name: "Light", Members: []reflection.Member{member("power", "float", 0)}},
		"_3": {Name: "Rig", Members: []reflection.Member{member("a", "_1", 0), member("b", "_2", 16)}},
	}}
	vertexLit := &reflection.Document{
		Path:        "lit.vert.spv",
		EntryPoints: []reflection.EntryPoint{{Name: "main", Mode: "vert"}},
		Inputs:      []reflection.Variable{{Name: "position", Type: "vec3", Location: 0}},
	}
	clash := &reflection.Document{Path: "b.frag.spv", Types: map[string]reflection.Type{
		"_4": {Name: "VertexLit", Members: []reflection.Member{member("tint", "vec4", 0)}},
	}}

	tests := []struct {
		target  formats.Target
		docs    []*reflection.Document
		structs []string
		notes   []string
		decl    string
	}{
		{
			target:  formats.TargetGo,
			docs:    []*reflection.Document{lights},
			structs: []string{"Light", "Light2", "Rig"},
			notes:   []string{"Light"},
			decl:    "type Rig struct {\n\tA Light\n\tB Light2\n}",
		},
		{
			target:  formats.TargetCPP,
			docs:    []*reflection.Document{lights},
			structs: []string{"light", "Light", "Rig"},
			decl:    "    light a;\n    Light b;\n",
		},
		{
			target:  formats.TargetCPP,
			docs:    []*reflection.Document{vertexLit, clash},
			structs: []string{"VertexLit", "VertexLit2"},
			notes:   []string{"VertexLit"},
			decl:    "struct VertexLit2\n{\n    glm::vec3 position; // location 0\n};",
		},
	}
	for _, tt := range tests {
		out, f, diags := build(t, tableOf(t, true, tt.docs...), tt.target, Options{})
		var names []string
		for _, s := range f.Structs {
			names = append(names, s.Name)
		}
		if strings.Join(names, ",") != strings.Join(tt.structs, ",") {
			t.Errorf("%s: expected structs %v, got %v", tt.target, tt.structs, names)
		}
		var notes []string
		for _, d := range diags {
			if d.Code == diagnostic.CodeTypeRenamed {
				if d.Severity != diagnostic.Note {
					t.Errorf("%s: expected a note, got %v", tt.target, d.Severity)
				}
				notes = append(notes, d.Type)
			}
		}
		if strings.Join(notes, ",") != strings.Join(tt.notes, ",") {
			t.Errorf("%s: expected renamed notes for %v, got %v", tt.target, tt.notes, notes)
		}
		if !strings.Contains(out, tt.decl) {
			t.Errorf("%s: expected %q in:\n%s", tt.target, tt.decl, out)
		}
	}
}

func TestDependenciesDeclaredFirst(t *testing.T) {
	d := &reflection.Document{Path: "scene.spv", Types: map[string]reflection.Type{
		"_3": {Name: "Scene", Members: []reflection.Member{member("key", "_5", 0), member("count", "uint", 16)}},
		"_5": {Name: "Light", Members: []reflection.Member{member("dir", "vec3", 0), member("power", "float", 12)}},
		"_7": {Name: "Fog", Members: []reflection.Member{member("density", "float", 0)}},
	}}
	table := tableOf(t, false, d)

	for _, target := range []formats.Target{formats.TargetCPP, formats.TargetGo} {
		out, f, diags := build(t, table, target, Options{})
		var names []string
		for _, s := range f.Structs {
			names = append(names, s.Name)
		}
		if strings.Join(names, ",") != "Light,Scene,Fog" {
			t.Errorf("%s: expected Light,Scene,Fog, got %v", target, names)
		}
		if target == formats.TargetCPP && strings.Index(out, "struct Light\n{") > strings.Index(out, "struct Scene\n{") {
			t.Errorf("expected Light declared before Scene:\n%s", out)
		}
		for _, d := range diags {
			if d.Code == diagnostic.CodeSizeMismatch {
				t.Errorf("%s: unexpected size mismatch: %s", target, d.Message)
			}
		}
	}
}
