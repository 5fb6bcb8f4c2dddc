package emit

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/HugoDaniel/shaderstructs/internal/aggregate"
	"github.com/HugoDaniel/shaderstructs/internal/diagnostic"
	"github.com/HugoDaniel/shaderstructs/internal/formats"
	"github.com/HugoDaniel/shaderstructs/internal/logger"
	"github.com/HugoDaniel/shaderstructs/internal/reflection"
)

// DefaultGenerator names the tool in generated file headers.
const DefaultGenerator = "shaderstructs"

// Options control Build.
type Options struct {
	// Namespace wraps C++ output. Default "glsl".
	Namespace string
	// Package is the Go package name. Default "glsl".
	Package string
	// Generator names the tool in the generated header.
	Generator string
	// Pad inserts explicit padding wherever a member offset lies past the end
	// of the previous host field.
	Pad bool
}

func (o Options) withDefaults() Options {
	if o.Namespace == "" {
		o.Namespace = "glsl"
	}
	if o.Package == "" {
		o.Package = "glsl"
	}
	if o.Generator == "" {
		o.Generator = DefaultGenerator
	}
	return o
}

// cppIncludes is the fixed C++ preamble.
var cppIncludes = []string{"glm/glm.hpp", "cstdint", "vector", "array"}

const gputypesImport = "github.com/gogpu/gputypes"

// Build turns the table into a File for the dictionary's target. Structs
// appear in table order, except that a struct used by value in another is
// moved ahead of it; one struct per vertex layout follows. Emitted type names
// are unique: a name already taken gets a numeric suffix, earlier table
// entries first and vertex layouts last. The diagnostics report adjusted
// names and members whose host type size differs from the shader layout.
func Build(table *aggregate.Table, dict *formats.Dictionary, opts Options) (*File, []diagnostic.Diagnostic) {
	opts = opts.withDefaults()
	b := &builder{
		dict:      dict,
		target:    dict.Target(),
		opts:      opts,
		typeNames: make(map[string]string),
		sizes:     make(map[string]int),
		imports:   make(map[string]bool),
	}

	f := &File{
		Target:    b.target,
		Generator: opts.Generator,
		Namespace: opts.Namespace,
		Package:   opts.Package,
	}

	entries := table.Entries()
	taken := make(map[string]bool)
	for _, e := range entries {
		b.typeNames[e.Type.Name] = b.uniqueTypeName(e.Type.Name, e.Shader, taken)
	}
	for _, e := range dependencyOrder(entries) {
		f.Structs = append(f.Structs, b.buildStruct(e))
	}
	for _, l := range table.VertexLayouts() {
		s, vb := b.buildVertex(l, b.uniqueTypeName(l.Name, l.Shader, taken))
		f.Structs = append(f.Structs, s)
		if b.target == formats.TargetGo && len(vb.Attributes) > 0 {
			f.VertexBuffers = append(f.VertexBuffers, vb)
			b.imports[gputypesImport] = true
		}
	}

	switch b.target {
	case formats.TargetCPP:
		f.Includes = slices.Clone(cppIncludes)
	case formats.TargetGo:
		for imp := range b.imports {
			f.Imports = append(f.Imports, imp)
		}
		slices.Sort(f.Imports)
	}

	logger.L().Debug("built output model", "target", string(b.target), "structs", len(f.Structs), "diagnostics", len(b.diags))
	return f, b.diags
}

type builder struct {
	dict   *formats.Dictionary
	target formats.Target
	opts   Options

	// typeNames maps canonical type names to emitted names.
	typeNames map[string]string
	// sizes holds the host size of structs built so far, when known.
	sizes   map[string]int
	imports map[string]bool
	diags   []diagnostic.Diagnostic
}

func (b *builder) buildStruct(e aggregate.Entry) Struct {
	s := Struct{Name: b.typeNames[e.Type.Name], Shader: e.Shader}
	names := make(map[string]bool)
	end, endKnown := 0, true
	pads := 0

	for _, m := range e.Type.Members {
		fd := b.field(m.Name, m.Type, m.Array, names)
		fd.Offset = m.Offset

		if m.Offset != nil {
			if b.opts.Pad && endKnown && *m.Offset > end {
				fd.PadBefore = *m.Offset - end
				fd.PadName = b.padName(pads)
				pads++
			}
			size, ok := b.hostSize(fd)
			end, endKnown = *m.Offset+size, ok
		} else {
			endKnown = false
		}

		if fd.Kind == Plain {
			b.checkSize(e, fd)
		}
		s.Fields = append(s.Fields, fd)
	}
	if endKnown {
		b.sizes[e.Type.Name] = end
	}
	return s
}

func (b *builder) buildVertex(l aggregate.VertexLayout, name string) (Struct, VertexBuffer) {
	s := Struct{Name: name, Shader: l.Shader}
	layout := l.BufferLayout()
	vb := VertexBuffer{Name: name, Stride: int(layout.ArrayStride)}
	for _, a := range layout.Attributes {
		vb.Attributes = append(vb.Attributes, VertexAttribute{
			Format:   formats.VertexFormatName(a.Format),
			Offset:   int(a.Offset),
			Location: int(a.ShaderLocation),
		})
	}
	names := make(map[string]bool)
	for _, vf := range l.Fields {
		fd := b.field(vf.Name, vf.ShaderType, nil, names)
		if vk, ok := formats.ToVkFormat(vf.Format); ok {
			if host, ok := formats.FormatHostType(b.target, vk); ok {
				fd.HostType = host
				fd.Decl = host
				b.use(host)
			}
		}
		off := vf.Offset
		fd.Offset = &off
		fd.Comment = "location " + strconv.Itoa(vf.Location)
		s.Fields = append(s.Fields, fd)
	}
	return s, vb
}

// dependencyOrder returns entries in table order, with every entry moved
// after the entries its members use by value.
func dependencyOrder(entries []aggregate.Entry) []aggregate.Entry {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Type.Name] = i
	}
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(entries))
	out := make([]aggregate.Entry, 0, len(entries))
	var visit func(i int)
	visit = func(i int) {
		if state[i] != unvisited {
			return
		}
		state[i] = visiting
		for _, m := range entries[i].Type.Members {
			if j, ok := index[m.Type]; ok && j != i {
				visit(j)
			}
		}
		state[i] = done
		out = append(out, entries[i])
	}
	for i := range entries {
		visit(i)
	}
	return out
}

// field maps one member to its host declaration.
func (b *builder) field(name, shaderType string, dims []reflection.ArrayDim, taken map[string]bool) Field {
	host := b.dict.HostType(shaderType)
	if emitted, ok := b.typeNames[shaderType]; ok {
		host = emitted
	} else if imp := b.dict.Import(shaderType); imp != "" {
		b.addImport(imp)
	} else {
		b.use(host)
	}

	fd := Field{
		Name:       b.fieldName(name, taken),
		ShaderName: name,
		ShaderType: shaderType,
		HostType:   host,
		Kind:       Plain,
	}
	for _, d := range dims {
		fd.Dims = append(fd.Dims, Dim{Size: d.Size, Dynamic: d.Dynamic()})
		if d.Dynamic() {
			fd.Kind = Dynamic
		} else if fd.Kind == Plain {
			fd.Kind = Fixed
		}
	}
	fd.Decl = b.decl(host, fd.Dims)
	return fd
}

// decl wraps the element type in its array dimensions, innermost first.
func (b *builder) decl(host string, dims []Dim) string {
	t := host
	for _, d := range dims {
		switch {
		case b.target == formats.TargetGo && d.Dynamic:
			t = "[]" + t
		case b.target == formats.TargetGo:
			t = "[" + strconv.Itoa(d.Size) + "]" + t
		case d.Dynamic:
			t = "std::vector<" + t + ">"
		default:
			t = "std::array<" + t + ", " + strconv.Itoa(d.Size) + ">"
		}
	}
	return t
}

// hostSize is the in-memory size of a field, when it can be known.
func (b *builder) hostSize(fd Field) (int, bool) {
	size, ok := b.dict.HostSize(fd.ShaderType)
	if !ok {
		size, ok = b.sizes[fd.ShaderType]
	}
	if !ok {
		return 0, false
	}
	for _, d := range fd.Dims {
		if d.Dynamic {
			return 0, false
		}
		size *= d.Size
	}
	return size, true
}

func (b *builder) checkSize(e aggregate.Entry, fd Field) {
	hostSize, ok := b.dict.HostSize(fd.ShaderType)
	if !ok {
		return
	}
	layout, ok := formats.ShaderLayout(fd.ShaderType)
	if !ok || layout.Size == hostSize {
		return
	}
	b.diags = append(b.diags, diagnostic.Warnf(diagnostic.CodeSizeMismatch, e.Shader, e.Type.Name,
		"member %s: host type %s is %d bytes but shader type %s is %d bytes",
		fd.ShaderName, fd.HostType, hostSize, fd.ShaderType, layout.Size))
}

func (b *builder) use(hostType string) {
	if imp := formats.HostImport(b.target, hostType); imp != "" {
		b.addImport(imp)
	}
}

// addImport records a Go import. C++ output has a fixed include list.
func (b *builder) addImport(imp string) {
	if b.target == formats.TargetGo {
		b.imports[imp] = true
	}
}

func (b *builder) padName(n int) string {
	if b.target == formats.TargetGo {
		return "_"
	}
	return fmt.Sprintf("_pad%d", n)
}

// typeName is the emitted name of a struct.
func (b *builder) typeName(name string) string {
	if b.target == formats.TargetGo {
		return exported(name)
	}
	return name
}

// uniqueTypeName is the emitted name of a struct, suffixed until it is not
// in taken. An adjusted name is reported.
func (b *builder) uniqueTypeName(name, shader string, taken map[string]bool) string {
	base := b.typeName(name)
	emitted := base
	for i := 2; taken[emitted]; i++ {
		emitted = base + strconv.Itoa(i)
	}
	taken[emitted] = true
	if emitted != base {
		b.diags = append(b.diags, diagnostic.Notef(diagnostic.CodeTypeRenamed, shader, name,
			"emitted as %s; %s is already declared", emitted, base))
	}
	return emitted
}

// fieldName is the emitted name of a member, unique within its struct.
func (b *builder) fieldName(name string, taken map[string]bool) string {
	if b.target == formats.TargetGo {
		name = exported(name)
	}
	base := name
	for i := 2; taken[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	taken[name] = true
	return name
}

// exported turns a shader identifier into an exported Go identifier:
// "roughness" gives "Roughness" and "_m0" gives "M0".
func exported(name string) string {
	name = strings.TrimLeft(name, "_")
	if name == "" {
		return "Field"
	}
	r := []rune(name)
	if unicode.IsDigit(r[0]) {
		return "F" + name
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
