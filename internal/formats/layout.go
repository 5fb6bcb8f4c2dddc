package formats

import (
	"regexp"
	"strconv"
)

// TypeLayout holds size and alignment information for a shader type.
type TypeLayout struct {
	Size      int
	Alignment int
}

// Scalar layouts in std430 (and std140) buffer blocks.
// bool is stored as a 32-bit value inside blocks.
var scalarLayouts = map[string]TypeLayout{
	"bool":      {Size: 4, Alignment: 4},
	"int":       {Size: 4, Alignment: 4},
	"uint":      {Size: 4, Alignment: 4},
	"float":     {Size: 4, Alignment: 4},
	"float16_t": {Size: 2, Alignment: 2},
	"double":    {Size: 8, Alignment: 8},
	"int64_t":   {Size: 8, Alignment: 8},
	"uint64_t":  {Size: 8, Alignment: 8},
}

var elemSizes = map[string]int{
	"": 4, "i": 4, "u": 4, "b": 4, "d": 8, "f16": 2,
}

var (
	glslVec = regexp.MustCompile(`^(|i|u|b|d|f16)vec([234])$`)
	glslMat = regexp.MustCompile(`^(|d|f16)mat([234])(?:x([234]))?$`)
)

// ShaderLayout returns the std430 size and alignment of a shader primitive
// type. Aggregates and unknown names report false.
func ShaderLayout(shaderType string) (TypeLayout, bool) {
	name := Canonical(shaderType)
	if l, ok := scalarLayouts[name]; ok {
		return l, true
	}
	if m := glslVec.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[2])
		return computeVecLayout(n, elemSizes[m[1]]), true
	}
	if m := glslMat.FindStringSubmatch(name); m != nil {
		cols, _ := strconv.Atoi(m[2])
		rows := cols
		if m[3] != "" {
			rows, _ = strconv.Atoi(m[3])
		}
		return computeMatLayout(cols, rows, elemSizes[m[1]]), true
	}
	return TypeLayout{}, false
}

// computeVecLayout computes the layout for a vector type.
// For vec2<T>: align = 2*sizeof(T), size = 2*sizeof(T)
// For vec3<T>: align = 4*sizeof(T), size = 3*sizeof(T)
// For vec4<T>: align = 4*sizeof(T), size = 4*sizeof(T)
func computeVecLayout(size int, elemSize int) TypeLayout {
	switch size {
	case 2:
		return TypeLayout{Size: elemSize * 2, Alignment: elemSize * 2}
	case 3:
		// vec3 has alignment of vec4 but size of 3 elements
		return TypeLayout{Size: elemSize * 3, Alignment: elemSize * 4}
	case 4:
		return TypeLayout{Size: elemSize * 4, Alignment: elemSize * 4}
	default:
		return TypeLayout{}
	}
}

// computeMatLayout computes the layout for a matrix type stored as C columns
// of vecR<T> vectors.
// SizeOf(matCxR<T>) = C * roundUp(AlignOf(vecR<T>), SizeOf(vecR<T>))
func computeMatLayout(cols, rows int, elemSize int) TypeLayout {
	colVec := computeVecLayout(rows, elemSize)
	stride := roundUp(colVec.Size, colVec.Alignment)
	return TypeLayout{
		Size:      cols * stride,
		Alignment: colVec.Alignment,
	}
}

// roundUp rounds x up to the nearest multiple of align.
func roundUp(x, align int) int {
	if align == 0 {
		return x
	}
	return ((x + align - 1) / align) * align
}
