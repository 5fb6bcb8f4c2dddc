// Package emit renders a canonical type table as host-language source.
//
// Rendering happens in two steps. Build turns the table into a File, a small
// typed model with every host type and array shape already decided, and
// Render writes that model out through a per-target text/template.
package emit

import "github.com/HugoDaniel/shaderstructs/internal/formats"

// Kind is the shape of a field.
type Kind uint8

const (
	// Plain is a single value.
	Plain Kind = iota
	// Fixed is an array whose dimensions are all compile-time lengths.
	Fixed
	// Dynamic is an array with at least one runtime or specialization
	// constant length, emitted as a growable sequence.
	Dynamic
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Fixed:
		return "fixed"
	case Dynamic:
		return "dynamic"
	}
	return "unknown"
}

// Dim is one array dimension. Size is meaningless when Dynamic is set.
type Dim struct {
	Size    int
	Dynamic bool
}

// File is a generated source file.
type File struct {
	Target    formats.Target
	Generator string

	// Namespace wraps C++ output.
	Namespace string
	// Package is the Go package clause.
	Package string

	// Includes are C++ headers; Imports are Go import paths.
	Includes []string
	Imports  []string

	Structs       []Struct
	VertexBuffers []VertexBuffer
}

// Struct is one generated structure.
type Struct struct {
	Name   string
	Shader string
	Fields []Field
}

// Field is one structure member.
type Field struct {
	// Name is the emitted field name; ShaderName the declared member name.
	Name       string
	ShaderName string

	ShaderType string
	// HostType is the element type. Decl wraps it in the array dimensions.
	HostType string
	Decl     string
	Kind     Kind
	// Dims are innermost first.
	Dims []Dim

	Offset *int
	// PadBefore is the number of padding bytes emitted ahead of the field.
	PadBefore int
	PadName   string

	Comment string
}

// VertexBuffer describes the vertex buffer layout of a vertex structure.
type VertexBuffer struct {
	Name       string
	Stride     int
	Attributes []VertexAttribute
}

// VertexAttribute is one attribute of a VertexBuffer. Format is the
// gputypes.VertexFormat name, e.g. Float32x3.
type VertexAttribute struct {
	Format   string
	Offset   int
	Location int
}
