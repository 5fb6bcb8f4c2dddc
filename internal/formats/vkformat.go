package formats

import (
	"strconv"
	"strings"
)

// String returns the Vulkan spelling of the format, e.g. VK_FORMAT_R8G8_UNORM.
func (f VkFormat) String() string {
	if int(f) < len(vkFormatNames) {
		return vkFormatNames[f]
	}
	return "VkFormat(" + strconv.FormatUint(uint64(f), 10) + ")"
}

// numericKind is the numeric interpretation suffix of a format name.
type numericKind uint8

const (
	kindUnorm numericKind = iota
	kindSnorm
	kindUscaled
	kindSscaled
	kindUint
	kindSint
	kindSrgb
	kindSfloat
)

var numericKinds = map[string]numericKind{
	"UNORM":   kindUnorm,
	"SNORM":   kindSnorm,
	"USCALED": kindUscaled,
	"SSCALED": kindSscaled,
	"UINT":    kindUint,
	"SINT":    kindSint,
	"SRGB":    kindSrgb,
	"SFLOAT":  kindSfloat,
}

func (k numericKind) signed() bool {
	return k == kindSnorm || k == kindSscaled || k == kindSint
}

// channelFormat describes an unpacked format with equally sized channels.
type channelFormat struct {
	channels int
	width    int // bits per channel
	kind     numericKind
}

// describe decodes formats such as R8G8B8A8_UNORM or B8G8R8_SINT. Packed,
// compressed, depth/stencil and mixed-width formats report false.
func describe(f VkFormat) (channelFormat, bool) {
	name, ok := strings.CutPrefix(f.String(), "VK_FORMAT_")
	if !ok {
		return channelFormat{}, false
	}
	components, suffix, ok := strings.Cut(name, "_")
	if !ok || strings.Contains(suffix, "_") {
		return channelFormat{}, false
	}
	kind, ok := numericKinds[suffix]
	if !ok {
		return channelFormat{}, false
	}

	var cf channelFormat
	cf.kind = kind
	for len(components) > 0 {
		if !strings.ContainsRune("RGBA", rune(components[0])) {
			return channelFormat{}, false
		}
		i := 1
		for i < len(components) && components[i] >= '0' && components[i] <= '9' {
			i++
		}
		width, err := strconv.Atoi(components[1:i])
		if err != nil || (cf.width != 0 && width != cf.width) {
			return channelFormat{}, false
		}
		cf.width = width
		cf.channels++
		components = components[i:]
	}
	switch cf.width {
	case 8, 16, 32, 64:
	default:
		return channelFormat{}, false
	}
	return cf, cf.channels > 0 && cf.channels <= 4
}

// FormatHostType returns the host type able to hold one element of format f.
// Every channel-count/width combination of the 8, 16, 32 and 64-bit integer
// and floating formats is covered. 16-bit floats are stored as their raw bits.
func FormatHostType(target Target, f VkFormat) (string, bool) {
	cf, ok := describe(f)
	if !ok {
		return "", false
	}
	switch target {
	case TargetCPP:
		return cppFormatType(cf), true
	case TargetGo:
		return goFormatType(cf), true
	}
	return "", false
}

// FormatSize returns the byte size of one element of format f.
func FormatSize(f VkFormat) (int, bool) {
	cf, ok := describe(f)
	if !ok {
		return 0, false
	}
	return cf.channels * cf.width / 8, true
}

func cppFormatType(cf channelFormat) string {
	n := strconv.Itoa(cf.channels)
	bits := strconv.Itoa(cf.width)
	if cf.kind == kindSfloat {
		switch cf.width {
		case 32:
			if cf.channels == 1 {
				return "float"
			}
			return "glm::vec" + n
		case 64:
			if cf.channels == 1 {
				return "double"
			}
			return "glm::dvec" + n
		}
		// Half floats and anything narrower keep their raw bits.
		if cf.channels == 1 {
			return "uint" + bits + "_t"
		}
		return "glm::u" + bits + "vec" + n
	}
	if cf.kind.signed() {
		if cf.channels == 1 {
			return "int" + bits + "_t"
		}
		return "glm::i" + bits + "vec" + n
	}
	if cf.channels == 1 {
		return "uint" + bits + "_t"
	}
	return "glm::u" + bits + "vec" + n
}

func goFormatType(cf channelFormat) string {
	bits := strconv.Itoa(cf.width)
	var scalar string
	switch {
	case cf.kind == kindSfloat && cf.width >= 32:
		scalar = "float" + bits
		if cf.channels > 1 {
			if cf.width == 32 {
				return goVectors["vec"+strconv.Itoa(cf.channels)].String()
			}
			return goVectors["dvec"+strconv.Itoa(cf.channels)].String()
		}
	case cf.kind.signed():
		scalar = "int" + bits
	default:
		scalar = "uint" + bits
	}
	if cf.channels == 1 {
		return scalar
	}
	return "[" + strconv.Itoa(cf.channels) + "]" + scalar
}
