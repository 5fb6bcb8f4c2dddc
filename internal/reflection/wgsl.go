package reflection

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/HugoDaniel/shaderstructs/internal/formats"
)

// WGSL extracts reflection data from WGSL source in process, without an
// external tool. The resulting document uses the spirv-cross schema: struct
// types are keyed by "_<handle>", members carry their layout offsets, vertex
// entry point @location arguments become inputs and builtin type names are
// spelled the GLSL way (vec3f is vec3), so that the same struct reflected
// from WGSL and from SPIR-V compares equal.
type WGSL struct{}

// Extract parses and lowers the WGSL file at path.
func (WGSL) Extract(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ToolError{Path: path, Err: err}
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &ToolError{Path: path, Err: err}
	}
	doc, err := ReflectWGSL(string(src))
	if err != nil {
		return nil, &ToolError{Path: path, Err: err}
	}
	doc.Path = path
	return doc, nil
}

// ReflectWGSL builds a reflection document from WGSL source.
func ReflectWGSL(source string) (*Document, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, err
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, err
	}
	doc := fromModule(module)
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	doc.Raw = append(raw, '\n')
	return doc, nil
}

func fromModule(m *ir.Module) *Document {
	doc := &Document{Types: make(map[string]Type)}

	for h, t := range m.Types {
		st, ok := t.Inner.(ir.StructType)
		if !ok || t.Name == "" || isInterfaceStruct(st) {
			continue
		}
		typ := Type{Name: t.Name, Members: make([]Member, 0, len(st.Members))}
		for _, sm := range st.Members {
			name, dims := memberType(m, sm.Type)
			off := int(sm.Offset)
			typ.Members = append(typ.Members, Member{Name: sm.Name, Type: name, Offset: &off, Array: dims})
		}
		doc.Types[structID(ir.TypeHandle(h))] = typ
	}

	for _, gv := range m.GlobalVariables {
		if int(gv.Type) >= len(m.Types) {
			continue
		}
		st, ok := m.Types[gv.Type].Inner.(ir.StructType)
		if !ok {
			continue
		}
		b := Block{Name: gv.Name, Type: structID(gv.Type), BlockSize: int(st.Span)}
		if gv.Binding != nil {
			b.Set = int(gv.Binding.Group)
			b.Binding = int(gv.Binding.Binding)
		}
		switch gv.Space {
		case ir.SpaceUniform:
			doc.UBOs = append(doc.UBOs, b)
		case ir.SpaceStorage:
			doc.SSBOs = append(doc.SSBOs, b)
		case ir.SpacePushConstant:
			doc.PushConstants = append(doc.PushConstants, b)
		}
	}

	for _, ep := range m.EntryPoints {
		doc.EntryPoints = append(doc.EntryPoints, EntryPoint{Name: ep.Name, Mode: stageMode(ep.Stage)})
		if ep.Stage != ir.StageVertex {
			continue
		}
		for _, arg := range ep.Function.Arguments {
			doc.Inputs = append(doc.Inputs, locationInputs(m, arg.Name, arg.Type, arg.Binding)...)
		}
	}
	return doc
}

func structID(h ir.TypeHandle) string {
	return "_" + strconv.FormatUint(uint64(h), 10)
}

// isInterfaceStruct reports whether a struct only exists to carry stage
// inputs or outputs. Those never live in memory shared with the host.
func isInterfaceStruct(st ir.StructType) bool {
	for _, sm := range st.Members {
		if sm.Binding != nil {
			return true
		}
	}
	return false
}

func locationInputs(m *ir.Module, name string, th ir.TypeHandle, binding *ir.Binding) []Variable {
	if binding != nil {
		if loc, ok := (*binding).(ir.LocationBinding); ok {
			typ, _ := memberType(m, th)
			return []Variable{{Name: name, Type: typ, Location: int(loc.Location)}}
		}
		return nil
	}
	if int(th) >= len(m.Types) {
		return nil
	}
	st, ok := m.Types[th].Inner.(ir.StructType)
	if !ok {
		return nil
	}
	var vars []Variable
	for _, sm := range st.Members {
		if sm.Binding != nil {
			vars = append(vars, locationInputs(m, sm.Name, sm.Type, sm.Binding)...)
		}
	}
	return vars
}

// memberType names the type behind h and unwraps its array dimensions,
// innermost first. Structs are named by reference id.
func memberType(m *ir.Module, h ir.TypeHandle) (string, []ArrayDim) {
	var dims []ArrayDim
	for int(h) < len(m.Types) {
		arr, ok := m.Types[h].Inner.(ir.ArrayType)
		if !ok {
			break
		}
		d := ArrayDim{Literal: true}
		if arr.Size.Constant != nil {
			d.Size = int(*arr.Size.Constant)
		}
		dims = append(dims, d)
		h = arr.Base
	}
	slices.Reverse(dims)
	if int(h) >= len(m.Types) {
		return fmt.Sprintf("<invalid type %d>", h), dims
	}
	switch t := m.Types[h].Inner.(type) {
	case ir.StructType:
		return structID(h), dims
	case ir.ScalarType:
		return formats.Canonical(scalarName(t)), dims
	case ir.VectorType:
		return formats.Canonical(vectorName(t)), dims
	case ir.MatrixType:
		return formats.Canonical(matrixName(t)), dims
	case ir.AtomicType:
		return formats.Canonical(scalarName(t.Scalar)), dims
	}
	if name := m.Types[h].Name; name != "" {
		return name, dims
	}
	return fmt.Sprintf("%T", m.Types[h].Inner), dims
}

func scalarName(s ir.ScalarType) string {
	switch s.Kind {
	case ir.ScalarBool:
		return "bool"
	case ir.ScalarSint:
		return "i" + strconv.Itoa(int(s.Width)*8)
	case ir.ScalarUint:
		return "u" + strconv.Itoa(int(s.Width)*8)
	}
	return "f" + strconv.Itoa(int(s.Width)*8)
}

var vectorSuffix = map[string]string{"f32": "f", "i32": "i", "u32": "u", "f16": "h"}

func vectorName(v ir.VectorType) string {
	scalar := scalarName(v.Scalar)
	if suffix, ok := vectorSuffix[scalar]; ok {
		return fmt.Sprintf("vec%d%s", v.Size, suffix)
	}
	return fmt.Sprintf("vec%d<%s>", v.Size, scalar)
}

func matrixName(mt ir.MatrixType) string {
	scalar := scalarName(mt.Scalar)
	if suffix, ok := vectorSuffix[scalar]; ok && (suffix == "f" || suffix == "h") {
		return fmt.Sprintf("mat%dx%d%s", mt.Columns, mt.Rows, suffix)
	}
	return fmt.Sprintf("mat%dx%d<%s>", mt.Columns, mt.Rows, scalar)
}

func stageMode(s ir.ShaderStage) string {
	switch s {
	case ir.StageVertex:
		return "vert"
	case ir.StageFragment:
		return "frag"
	case ir.StageCompute:
		return "comp"
	}
	return strconv.Itoa(int(s))
}
