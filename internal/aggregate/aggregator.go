package aggregate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/HugoDaniel/shaderstructs/internal/diagnostic"
	"github.com/HugoDaniel/shaderstructs/internal/logger"
	"github.com/HugoDaniel/shaderstructs/internal/reflection"
)

// DefaultIgnorePrefixes are the type name prefixes skipped when
// Aggregator.IgnorePrefixes is nil. gl_ names are shader built-ins.
var DefaultIgnorePrefixes = []string{"gl_"}

// Aggregator merges reflection documents into a Table.
//
// For every document, types backing uniform/storage/push-constant blocks,
// types without member offsets and built-in types are skipped. Type
// references in the remaining types are resolved within the document before
// anything is merged, so a document contributes either all of its surviving
// types or none of them.
type Aggregator struct {
	// Policy handles name collisions. The zero value is PolicyKeepFirst.
	Policy Policy

	// Vertex records the stage inputs of vertex shaders as VertexLayouts.
	Vertex bool

	// IgnorePrefixes lists type name prefixes to skip. Nil means
	// DefaultIgnorePrefixes; an empty non-nil slice skips nothing.
	IgnorePrefixes []string
}

// Add merges the types of doc into table.
//
// The returned diagnostics describe collisions, renames and skipped input.
// An *UnresolvedReferenceError leaves table unchanged and the caller may go on
// with the next document. A *CollisionError is only returned under
// PolicyFail, also leaving table unchanged, and aggregation should stop.
func (a *Aggregator) Add(table *Table, doc *reflection.Document) ([]diagnostic.Diagnostic, error) {
	log := logger.L().With("shader", doc.Path)

	resolved, err := a.resolve(doc)
	if err != nil {
		var ure *UnresolvedReferenceError
		if errors.As(err, &ure) {
			log.Warn("dropping shader types", "type", ure.Type, "member", ure.Member, "ref", ure.Ref)
			return []diagnostic.Diagnostic{diagnostic.Errorf(diagnostic.CodeUnresolvedReference, doc.Path, ure.Type,
				"member %s references unknown type %s; no types from this shader were merged", ure.Member, ure.Ref)}, err
		}
		return nil, err
	}

	p := &pending{table: table, entries: make(map[string]Entry)}
	var diags []diagnostic.Diagnostic
	for _, typ := range resolved {
		ds, err := a.merge(p, doc.Path, typ)
		diags = append(diags, ds...)
		if err != nil {
			return diags, err
		}
	}
	p.commit()

	if a.Vertex && doc.IsVertex() {
		diags = append(diags, addVertexLayout(table, doc, a.ignored)...)
	}
	return diags, nil
}

func (a *Aggregator) policy() Policy {
	if a.Policy == "" {
		return PolicyKeepFirst
	}
	return a.Policy
}

func (a *Aggregator) ignored(name string) bool {
	prefixes := a.IgnorePrefixes
	if prefixes == nil {
		prefixes = DefaultIgnorePrefixes
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// surviving returns the types of doc that pass every filter, in id order.
func (a *Aggregator) surviving(doc *reflection.Document) []reflection.Type {
	log := logger.L()
	blocks := doc.BlockTypeIDs()
	var out []reflection.Type
	for _, id := range doc.TypeIDs() {
		typ := doc.Types[id]
		switch {
		case blocks[id]:
			log.Debug("skipping block type", "shader", doc.Path, "id", id, "type", typ.Name)
		case len(typ.Members) == 0 || typ.Members[0].Offset == nil:
			log.Debug("skipping type without layout", "shader", doc.Path, "id", id, "type", typ.Name)
		case a.ignored(typ.Name):
			log.Debug("skipping built-in type", "shader", doc.Path, "id", id, "type", typ.Name)
		default:
			out = append(out, typ)
		}
	}
	return out
}

// resolve deep-copies the surviving types of doc and replaces reference ids
// in member types with the referenced type names.
func (a *Aggregator) resolve(doc *reflection.Document) ([]reflection.Type, error) {
	survivors := a.surviving(doc)
	out := make([]reflection.Type, 0, len(survivors))
	for _, typ := range survivors {
		c := typ.Clone()
		for i, m := range c.Members {
			if !reflection.IsTypeRef(m.Type) {
				continue
			}
			ref, ok := doc.Types[m.Type]
			if !ok {
				return nil, &UnresolvedReferenceError{Shader: doc.Path, Type: typ.Name, Member: m.Name, Ref: m.Type}
			}
			c.Members[i].Type = ref.Name
		}
		out = append(out, c)
	}
	return out, nil
}

func (a *Aggregator) merge(p *pending, shader string, typ reflection.Type) ([]diagnostic.Diagnostic, error) {
	log := logger.L().With("shader", shader, "type", typ.Name)

	existing, ok := p.lookup(typ.Name)
	if !ok {
		log.Debug("registered type")
		p.insert(typ.Name, Entry{Type: typ, Shader: shader})
		return nil, nil
	}
	if existing.Type.Equal(typ) {
		log.Debug("duplicate type", "first", existing.Shader)
		return nil, nil
	}

	cerr := &CollisionError{
		Name:         typ.Name,
		First:        existing.Type,
		FirstShader:  existing.Shader,
		Second:       typ,
		SecondShader: shader,
	}
	log.Warn("type collision", "first", existing.Shader, "policy", string(a.policy()))

	switch a.policy() {
	case PolicyFail:
		d := diagnostic.Errorf(diagnostic.CodeTypeCollision, shader, typ.Name, "%v", cerr)
		d.Related = cerr.Related()
		return []diagnostic.Diagnostic{d}, cerr

	case PolicyRename:
		d := diagnostic.Warnf(diagnostic.CodeTypeCollision, shader, typ.Name, "%v", cerr)
		d.Related = cerr.Related()
		name := renameFor(p, typ, shader)
		note := diagnostic.Notef(diagnostic.CodeTypeRenamed, shader, typ.Name,
			"registered as %s; members of other types in this shader still refer to %s", name, typ.Name)
		return []diagnostic.Diagnostic{d, note}, nil
	}

	d := diagnostic.Warnf(diagnostic.CodeTypeCollision, shader, typ.Name,
		"%v; keeping the definition from %s", cerr, existing.Shader)
	d.Related = cerr.Related()
	return []diagnostic.Diagnostic{d}, nil
}

// renameFor registers typ under <Name>_<stem>, then <Name>_<stem>_2 and so
// on until a free name, or an equal definition under that name, is found.
func renameFor(p *pending, typ reflection.Type, shader string) string {
	base := typ.Name + "_" + identifier(reflection.Stem(shader))
	name := base
	for i := 2; ; i++ {
		renamed := typ.Clone()
		renamed.Name = name
		existing, ok := p.lookup(name)
		if !ok {
			p.insert(name, Entry{Type: renamed, Shader: shader})
			return name
		}
		if existing.Type.Equal(renamed) {
			return name
		}
		name = fmt.Sprintf("%s_%d", base, i)
	}
}

// identifier replaces characters that cannot appear in an identifier.
func identifier(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// pending stages the contribution of one document so that a failing
// document leaves the table untouched.
type pending struct {
	table   *Table
	names   []string
	entries map[string]Entry
}

func (p *pending) lookup(name string) (Entry, bool) {
	if e, ok := p.entries[name]; ok {
		return e, true
	}
	return p.table.Lookup(name)
}

func (p *pending) insert(name string, e Entry) {
	if _, ok := p.entries[name]; !ok {
		p.names = append(p.names, name)
	}
	p.entries[name] = e
}

func (p *pending) commit() {
	for _, name := range p.names {
		p.table.insert(name, p.entries[name])
	}
}
