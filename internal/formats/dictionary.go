// Package formats maps shader-side type names and binary vertex/pixel formats
// to host-language type names.
//
// Lookups are pure: every table is built once at package initialisation and
// never modified afterwards. Shader type names may be spelled the GLSL way
// (vec3, uvec4, mat3x4) as produced by spirv-cross, or the WGSL way (vec3f,
// vec3<f32>, mat3x4f) as produced by the WGSL extractor; both are folded to
// the GLSL spelling by Canonical before lookup.
package formats

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Target identifies a host language the generator can emit.
type Target string

const (
	// TargetCPP emits C++ using glm vector/matrix types.
	TargetCPP Target = "cpp"
	// TargetGo emits Go using mathgl vector/matrix types.
	TargetGo Target = "go"
)

// Targets lists every supported target in help-text order.
var Targets = []Target{TargetCPP, TargetGo}

// ParseTarget converts a flag/config value into a Target.
func ParseTarget(s string) (Target, error) {
	switch Target(strings.ToLower(strings.TrimSpace(s))) {
	case TargetCPP, "c++", "cxx":
		return TargetCPP, nil
	case TargetGo, "golang":
		return TargetGo, nil
	}
	return "", fmt.Errorf("unknown target %q (expected cpp or go)", s)
}

// Dictionary maps shader type names to host type names for one target.
type Dictionary struct {
	target  Target
	names   map[string]string
	sizes   map[string]int
	imports map[string]string
}

var (
	cppDictionary = newCPPDictionary()
	goDictionary  = newGoDictionary()
)

// For returns the dictionary for a target.
func For(target Target) (*Dictionary, error) {
	switch target {
	case TargetCPP:
		return cppDictionary, nil
	case TargetGo:
		return goDictionary, nil
	}
	return nil, fmt.Errorf("no dictionary for target %q", target)
}

// Target returns the host language this dictionary maps to.
func (d *Dictionary) Target() Target { return d.target }

// Lookup returns the host type for a shader type name and whether it is mapped.
func (d *Dictionary) Lookup(shaderType string) (string, bool) {
	host, ok := d.names[Canonical(shaderType)]
	return host, ok
}

// HostType returns the host type for a shader type name. Unmapped names pass
// through unchanged: the dictionary is intentionally partial, and aggregate
// names resolved from the reflection data must be emitted verbatim.
func (d *Dictionary) HostType(shaderType string) string {
	if host, ok := d.Lookup(shaderType); ok {
		return host
	}
	return shaderType
}

// HostSize returns the in-memory size in bytes of the host type mapped from
// shaderType, if known.
func (d *Dictionary) HostSize(shaderType string) (int, bool) {
	size, ok := d.sizes[Canonical(shaderType)]
	return size, ok
}

// Import returns the package/header a mapped host type lives in, or "" when
// the type is built into the host language.
func (d *Dictionary) Import(shaderType string) string {
	return d.imports[Canonical(shaderType)]
}

var (
	wgslVecShorthand = regexp.MustCompile(`^vec([234])([fiuhb])$`)
	wgslVecGeneric   = regexp.MustCompile(`^vec([234])<\s*(f32|i32|u32|f16|bool)\s*>$`)
	wgslMatShorthand = regexp.MustCompile(`^mat([234])x([234])([fh])$`)
	wgslMatGeneric   = regexp.MustCompile(`^mat([234])x([234])<\s*(f32|f16)\s*>$`)
	wgslAtomic       = regexp.MustCompile(`^atomic<\s*(\w+)\s*>$`)
)

var wgslScalars = map[string]string{
	"f32":  "float",
	"i32":  "int",
	"u32":  "uint",
	"f16":  "float16_t",
	"f64":  "double",
	"bool": "bool",
}

// vecPrefix is the GLSL vector prefix for a WGSL element suffix/type.
var vecPrefix = map[string]string{
	"f": "", "f32": "",
	"i": "i", "i32": "i",
	"u": "u", "u32": "u",
	"h": "f16", "f16": "f16",
	"b": "b", "bool": "b",
}

// Canonical folds a shader type name to its GLSL spelling. Names that are not
// WGSL builtins are returned unchanged.
func Canonical(name string) string {
	name = strings.TrimSpace(name)
	if s, ok := wgslScalars[name]; ok {
		return s
	}
	if m := wgslAtomic.FindStringSubmatch(name); m != nil {
		return Canonical(m[1])
	}
	if m := wgslVecShorthand.FindStringSubmatch(name); m != nil {
		return vecPrefix[m[2]] + "vec" + m[1]
	}
	if m := wgslVecGeneric.FindStringSubmatch(name); m != nil {
		return vecPrefix[m[2]] + "vec" + m[1]
	}
	if m := wgslMatShorthand.FindStringSubmatch(name); m != nil {
		return matName(m[1], m[2], m[3] == "h")
	}
	if m := wgslMatGeneric.FindStringSubmatch(name); m != nil {
		return matName(m[1], m[2], m[3] == "f16")
	}
	return name
}

func matName(cols, rows string, half bool) string {
	prefix := ""
	if half {
		prefix = "f16"
	}
	if cols == rows {
		return prefix + "mat" + cols
	}
	return prefix + "mat" + cols + "x" + rows
}

func newCPPDictionary() *Dictionary {
	d := &Dictionary{
		target: TargetCPP,
		names: map[string]string{
			"bool":   "bool",
			"int":    "int32_t",
			"uint":   "uint32_t",
			"float":  "float",
			"double": "double",
		},
		sizes: map[string]int{
			"bool":   1,
			"int":    4,
			"uint":   4,
			"float":  4,
			"double": 8,
		},
		imports: map[string]string{},
	}
	vecElem := []struct {
		prefix string
		size   int
	}{{"", 4}, {"i", 4}, {"u", 4}, {"b", 1}, {"d", 8}}
	for n := 2; n <= 4; n++ {
		for _, e := range vecElem {
			name := e.prefix + "vec" + strconv.Itoa(n)
			d.names[name] = "glm::" + name
			d.sizes[name] = e.size * n
			d.imports[name] = "glm/glm.hpp"
		}
	}
	matElem := []struct {
		prefix string
		size   int
	}{{"", 4}, {"d", 8}}
	for c := 2; c <= 4; c++ {
		for r := 2; r <= 4; r++ {
			for _, e := range matElem {
				name := e.prefix + "mat" + strconv.Itoa(c) + "x" + strconv.Itoa(r)
				d.names[name] = "glm::" + name
				d.sizes[name] = e.size * c * r
				d.imports[name] = "glm/glm.hpp"
				if c == r {
					square := e.prefix + "mat" + strconv.Itoa(c)
					d.names[square] = "glm::" + square
					d.sizes[square] = e.size * c * r
					d.imports[square] = "glm/glm.hpp"
				}
			}
		}
	}
	for name, host := range d.names {
		if strings.HasSuffix(host, "_t") {
			d.imports[name] = "cstdint"
		}
	}
	return d
}

// goVectors and goMatrices bind GLSL names to real mathgl types so that the
// emitted names and sizes always match the library.
var goVectors = map[string]reflect.Type{
	"vec2":  reflect.TypeOf(mgl32.Vec2{}),
	"vec3":  reflect.TypeOf(mgl32.Vec3{}),
	"vec4":  reflect.TypeOf(mgl32.Vec4{}),
	"dvec2": reflect.TypeOf(mgl64.Vec2{}),
	"dvec3": reflect.TypeOf(mgl64.Vec3{}),
	"dvec4": reflect.TypeOf(mgl64.Vec4{}),
}

// GLSL matCxR has C columns and R rows; mathgl names matrices rows-first.
var goMatrices = map[string]reflect.Type{
	"mat2":    reflect.TypeOf(mgl32.Mat2{}),
	"mat3":    reflect.TypeOf(mgl32.Mat3{}),
	"mat4":    reflect.TypeOf(mgl32.Mat4{}),
	"mat2x3":  reflect.TypeOf(mgl32.Mat3x2{}),
	"mat2x4":  reflect.TypeOf(mgl32.Mat4x2{}),
	"mat3x2":  reflect.TypeOf(mgl32.Mat2x3{}),
	"mat3x4":  reflect.TypeOf(mgl32.Mat4x3{}),
	"mat4x2":  reflect.TypeOf(mgl32.Mat2x4{}),
	"mat4x3":  reflect.TypeOf(mgl32.Mat3x4{}),
	"dmat2":   reflect.TypeOf(mgl64.Mat2{}),
	"dmat3":   reflect.TypeOf(mgl64.Mat3{}),
	"dmat4":   reflect.TypeOf(mgl64.Mat4{}),
	"dmat2x3": reflect.TypeOf(mgl64.Mat3x2{}),
	"dmat2x4": reflect.TypeOf(mgl64.Mat4x2{}),
	"dmat3x2": reflect.TypeOf(mgl64.Mat2x3{}),
	"dmat3x4": reflect.TypeOf(mgl64.Mat4x3{}),
	"dmat4x2": reflect.TypeOf(mgl64.Mat2x4{}),
	"dmat4x3": reflect.TypeOf(mgl64.Mat3x4{}),
}

func newGoDictionary() *Dictionary {
	types := map[string]reflect.Type{
		"float":  reflect.TypeOf(float32(0)),
		"double": reflect.TypeOf(float64(0)),
		"int":    reflect.TypeOf(int32(0)),
		"uint":   reflect.TypeOf(uint32(0)),
		// GLSL bool occupies 4 bytes in buffer blocks.
		"bool": reflect.TypeOf(uint32(0)),
	}
	for n := 2; n <= 4; n++ {
		suffix := strconv.Itoa(n)
		types["ivec"+suffix] = reflect.ArrayOf(n, reflect.TypeOf(int32(0)))
		types["uvec"+suffix] = reflect.ArrayOf(n, reflect.TypeOf(uint32(0)))
		types["bvec"+suffix] = reflect.ArrayOf(n, reflect.TypeOf(uint32(0)))
	}
	for name, t := range goVectors {
		types[name] = t
	}
	for name, t := range goMatrices {
		types[name] = t
		if !strings.Contains(name, "x") {
			// mat3 and mat3x3 are the same type.
			n := name[len(name)-1:]
			types[name+"x"+n] = t
		}
	}

	d := &Dictionary{
		target:  TargetGo,
		names:   make(map[string]string, len(types)),
		sizes:   make(map[string]int, len(types)),
		imports: make(map[string]string),
	}
	for name, t := range types {
		d.names[name] = t.String()
		d.sizes[name] = int(t.Size())
		if t.PkgPath() != "" {
			d.imports[name] = t.PkgPath()
		}
	}
	return d
}

var goPackages = map[string]string{
	"mgl32": reflect.TypeOf(mgl32.Vec2{}).PkgPath(),
	"mgl64": reflect.TypeOf(mgl64.Vec2{}).PkgPath(),
}

// HostImport returns the package/header a host type name needs, or "" when
// none is needed. It works on host names produced by any table in this
// package, including FormatHostType.
func HostImport(target Target, hostType string) string {
	hostType = strings.TrimLeft(hostType, "[]0123456789")
	switch target {
	case TargetCPP:
		if strings.HasPrefix(hostType, "glm::") {
			return "glm/glm.hpp"
		}
		if strings.HasSuffix(hostType, "_t") {
			return "cstdint"
		}
	case TargetGo:
		if pkg, _, ok := strings.Cut(hostType, "."); ok {
			return goPackages[pkg]
		}
	}
	return ""
}
