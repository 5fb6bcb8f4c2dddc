// Package aggregate merges the types of many reflection documents into one
// canonical table keyed by type name.
package aggregate

import "github.com/HugoDaniel/shaderstructs/internal/reflection"

// Entry is a canonical type and the shader it was first registered from.
type Entry struct {
	Type   reflection.Type
	Shader string
}

// Table holds canonical types in first-registration order. Member types of
// registered entries never hold reference ids.
type Table struct {
	order   []string
	entries map[string]Entry

	vertex     []VertexLayout
	vertexKeys map[string]string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		entries:    make(map[string]Entry),
		vertexKeys: make(map[string]string),
	}
}

// Len returns the number of canonical types.
func (t *Table) Len() int { return len(t.order) }

// Lookup returns the entry registered under name.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Names returns the type names in registration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Entries returns the entries in registration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.order))
	for i, name := range t.order {
		out[i] = t.entries[name]
	}
	return out
}

// VertexLayouts returns the vertex input layouts in registration order.
func (t *Table) VertexLayouts() []VertexLayout {
	return append([]VertexLayout(nil), t.vertex...)
}

func (t *Table) insert(name string, e Entry) {
	if _, ok := t.entries[name]; !ok {
		t.order = append(t.order, name)
	}
	t.entries[name] = e
}
