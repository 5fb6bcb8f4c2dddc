package formats

import "github.com/gogpu/gputypes"

// vertexFormats maps canonical shader input types to vertex attribute formats.
var vertexFormats = map[string]gputypes.VertexFormat{
	"float":   gputypes.VertexFormatFloat32,
	"vec2":    gputypes.VertexFormatFloat32x2,
	"vec3":    gputypes.VertexFormatFloat32x3,
	"vec4":    gputypes.VertexFormatFloat32x4,
	"int":     gputypes.VertexFormatSint32,
	"ivec2":   gputypes.VertexFormatSint32x2,
	"ivec3":   gputypes.VertexFormatSint32x3,
	"ivec4":   gputypes.VertexFormatSint32x4,
	"uint":    gputypes.VertexFormatUint32,
	"uvec2":   gputypes.VertexFormatUint32x2,
	"uvec3":   gputypes.VertexFormatUint32x3,
	"uvec4":   gputypes.VertexFormatUint32x4,
	"f16vec2": gputypes.VertexFormatFloat16x2,
	"f16vec4": gputypes.VertexFormatFloat16x4,
}

// vkVertexFormats is the Vulkan equivalent of each vertex attribute format.
var vkVertexFormats = map[gputypes.VertexFormat]VkFormat{
	gputypes.VertexFormatFloat32:   FormatR32Sfloat,
	gputypes.VertexFormatFloat32x2: FormatR32G32Sfloat,
	gputypes.VertexFormatFloat32x3: FormatR32G32B32Sfloat,
	gputypes.VertexFormatFloat32x4: FormatR32G32B32A32Sfloat,
	gputypes.VertexFormatSint32:    FormatR32Sint,
	gputypes.VertexFormatSint32x2:  FormatR32G32Sint,
	gputypes.VertexFormatSint32x3:  FormatR32G32B32Sint,
	gputypes.VertexFormatSint32x4:  FormatR32G32B32A32Sint,
	gputypes.VertexFormatUint32:    FormatR32Uint,
	gputypes.VertexFormatUint32x2:  FormatR32G32Uint,
	gputypes.VertexFormatUint32x3:  FormatR32G32B32Uint,
	gputypes.VertexFormatUint32x4:  FormatR32G32B32A32Uint,
	gputypes.VertexFormatFloat16x2: FormatR16G16Sfloat,
	gputypes.VertexFormatFloat16x4: FormatR16G16B16A16Sfloat,
}

// vertexFormatNames are the gputypes constant suffixes. VertexFormat.String
// does not cover every format.
var vertexFormatNames = map[gputypes.VertexFormat]string{
	gputypes.VertexFormatFloat32:   "Float32",
	gputypes.VertexFormatFloat32x2: "Float32x2",
	gputypes.VertexFormatFloat32x3: "Float32x3",
	gputypes.VertexFormatFloat32x4: "Float32x4",
	gputypes.VertexFormatSint32:    "Sint32",
	gputypes.VertexFormatSint32x2:  "Sint32x2",
	gputypes.VertexFormatSint32x3:  "Sint32x3",
	gputypes.VertexFormatSint32x4:  "Sint32x4",
	gputypes.VertexFormatUint32:    "Uint32",
	gputypes.VertexFormatUint32x2:  "Uint32x2",
	gputypes.VertexFormatUint32x3:  "Uint32x3",
	gputypes.VertexFormatUint32x4:  "Uint32x4",
	gputypes.VertexFormatFloat16x2: "Float16x2",
	gputypes.VertexFormatFloat16x4: "Float16x4",
}

// VertexFormatName returns the name of a vertex attribute format as used in
// the gputypes.VertexFormat<Name> constants, or "" when the format is not
// produced by VertexFormatFor.
func VertexFormatName(vf gputypes.VertexFormat) string {
	return vertexFormatNames[vf]
}

// VertexFormatFor returns the vertex attribute format and byte size for a
// shader vertex input type. The size is that of the matching VkFormat.
func VertexFormatFor(shaderType string) (gputypes.VertexFormat, int, bool) {
	vf, ok := vertexFormats[Canonical(shaderType)]
	if !ok {
		return 0, 0, false
	}
	size, ok := FormatSize(vkVertexFormats[vf])
	if !ok {
		return 0, 0, false
	}
	return vf, size, true
}

// ToVkFormat returns the Vulkan format matching a vertex attribute format.
func ToVkFormat(vf gputypes.VertexFormat) (VkFormat, bool) {
	f, ok := vkVertexFormats[vf]
	return f, ok
}
