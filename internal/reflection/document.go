// Package reflection loads shader reflection documents.
//
// A document follows the JSON layout printed by `spirv-cross <binary> --reflect`:
// a "types" object keyed by synthetic ids (_12, _37, ...), ordered "inputs",
// and the "ubos", "ssbos" and "push_constants" block lists that reference
// entries of "types" by id. Documents are produced either by an external tool
// (see SPIRVCross) or in process from WGSL source (see WGSL).
package reflection

import (
	"encoding/json"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Document is the reflection output of one shader.
type Document struct {
	// Path is the shader binary (or source) the document was extracted from.
	Path string `json:"-"`
	// Raw is the document as produced by the extractor.
	Raw []byte `json:"-"`

	EntryPoints   []EntryPoint    `json:"entryPoints,omitempty"`
	Types         map[string]Type `json:"types,omitempty"`
	Inputs        []Variable      `json:"inputs,omitempty"`
	Outputs       []Variable      `json:"outputs,omitempty"`
	UBOs          []Block         `json:"ubos,omitempty"`
	SSBOs         []Block         `json:"ssbos,omitempty"`
	PushConstants []Block         `json:"push_constants,omitempty"`
}

// EntryPoint is a shader entry point. Mode is the stage: vert, frag, comp, ...
type EntryPoint struct {
	Name string `json:"name"`
	Mode string `json:"mode"`
}

// Variable is a stage input or output.
type Variable struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location int    `json:"location"`
}

// Block is a uniform, storage or push-constant block. Type is the id of the
// aggregate in Document.Types that backs the block.
type Block struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Set       int    `json:"set"`
	Binding   int    `json:"binding"`
	BlockSize int    `json:"block_size,omitempty"`
}

// Type is a named aggregate with ordered members.
type Type struct {
	Name    string   `json:"name"`
	Members []Member `json:"members"`
}

// Member is one aggregate member. Type is a shader type name (vec3, float)
// or a type reference id (_12) naming another aggregate of the same document.
type Member struct {
	Name string
	Type string
	// Offset is the byte offset within the aggregate. Helper aggregates that
	// only live on the shader stack have no offsets.
	Offset *int
	// Array holds the array dimensions, innermost first as spirv-cross
	// reports them: float a[3][2] is [2 3]. Nil for non-arrays.
	Array []ArrayDim
}

// ArrayDim is one array dimension. When Literal is false, Size is not a
// compile-time length (a specialization constant id) and the member is
// treated as dynamically sized.
type ArrayDim struct {
	Size    int
	Literal bool
}

// Dynamic reports whether the dimension has no fixed length. spirv-cross
// reports runtime-sized arrays as a literal size of 0.
func (d ArrayDim) Dynamic() bool {
	return !d.Literal || d.Size == 0
}

type memberJSON struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	Offset             *int   `json:"offset,omitempty"`
	Array              []int  `json:"array,omitempty"`
	ArraySizeIsLiteral []bool `json:"array_size_is_literal,omitempty"`
}

// UnmarshalJSON decodes the parallel array/array_size_is_literal lists.
func (m *Member) UnmarshalJSON(data []byte) error {
	var raw memberJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Name = raw.Name
	m.Type = raw.Type
	m.Offset = raw.Offset
	m.Array = nil
	for i, size := range raw.Array {
		literal := true
		if i < len(raw.ArraySizeIsLiteral) {
			literal = raw.ArraySizeIsLiteral[i]
		}
		m.Array = append(m.Array, ArrayDim{Size: size, Literal: literal})
	}
	return nil
}

// MarshalJSON encodes the member in the spirv-cross layout.
func (m Member) MarshalJSON() ([]byte, error) {
	raw := memberJSON{Name: m.Name, Type: m.Type, Offset: m.Offset}
	for _, d := range m.Array {
		raw.Array = append(raw.Array, d.Size)
		raw.ArraySizeIsLiteral = append(raw.ArraySizeIsLiteral, d.Literal)
	}
	return json.Marshal(raw)
}

// Equal reports whether two members have the same name, type and array shape.
// Offsets are not compared.
func (m Member) Equal(o Member) bool {
	return m.Name == o.Name && m.Type == o.Type && slices.Equal(m.Array, o.Array)
}

// Equal reports whether two aggregates are structurally equal.
func (t Type) Equal(o Type) bool {
	return t.Name == o.Name && slices.EqualFunc(t.Members, o.Members, Member.Equal)
}

// Clone returns a deep copy of t.
func (t Type) Clone() Type {
	c := Type{Name: t.Name, Members: make([]Member, len(t.Members))}
	for i, m := range t.Members {
		c.Members[i] = m
		if m.Offset != nil {
			off := *m.Offset
			c.Members[i].Offset = &off
		}
		c.Members[i].Array = slices.Clone(m.Array)
	}
	return c
}

// String renders the type in shader-like syntax for diagnostics.
func (t Type) String() string {
	var sb strings.Builder
	sb.WriteString("struct ")
	sb.WriteString(t.Name)
	sb.WriteString(" {")
	for i, m := range t.Members {
		if i > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(" ")
		sb.WriteString(m.Type)
		sb.WriteString(" ")
		sb.WriteString(m.Name)
		for j := len(m.Array) - 1; j >= 0; j-- {
			d := m.Array[j]
			if d.Dynamic() {
				sb.WriteString("[]")
			} else {
				sb.WriteString("[" + strconv.Itoa(d.Size) + "]")
			}
		}
	}
	sb.WriteString(" }")
	return sb.String()
}

var typeRefPattern = regexp.MustCompile(`^_[0-9]+$`)

// IsTypeRef reports whether s is a type reference id such as _12.
func IsTypeRef(s string) bool {
	return typeRefPattern.MatchString(s)
}

// TypeIDs returns the keys of d.Types in a stable order: reference ids by
// numeric value, anything else lexically after them.
func (d *Document) TypeIDs() []string {
	ids := make([]string, 0, len(d.Types))
	for id := range d.Types {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		ra, rb := IsTypeRef(a), IsTypeRef(b)
		switch {
		case ra && rb:
			na, _ := strconv.Atoi(a[1:])
			nb, _ := strconv.Atoi(b[1:])
			return na - nb
		case ra:
			return -1
		case rb:
			return 1
		}
		return strings.Compare(a, b)
	})
	return ids
}

// BlockTypeIDs returns the set of type ids backing uniform, storage and
// push-constant blocks.
func (d *Document) BlockTypeIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, list := range [][]Block{d.UBOs, d.SSBOs, d.PushConstants} {
		for _, b := range list {
			ids[b.Type] = true
		}
	}
	return ids
}

// IsVertex reports whether the document describes a vertex stage shader.
// Documents without entry point data fall back to the .vert naming convention.
func (d *Document) IsVertex() bool {
	if len(d.EntryPoints) > 0 {
		for _, ep := range d.EntryPoints {
			if ep.Mode == "vert" {
				return true
			}
		}
		return false
	}
	return strings.Contains(d.Path, ".vert")
}
