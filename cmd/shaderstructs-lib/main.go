// Package main provides a C-callable static library for shader struct generation.
//
// This is built with -buildmode=c-archive to produce libshaderstructs.a
// that can be linked into C/C++/Zig programs, for instance a build step that
// already holds reflection JSON in memory.
//
// Build:
//
//	CGO_ENABLED=1 go build -buildmode=c-archive -o build/libshaderstructs.a ./cmd/shaderstructs-lib
//
// Exported functions:
//
//	shaderstructs_generate(inputs_json, inputs_len, options_json, options_len, out_code, out_code_len, out_json, out_json_len) -> error_code
//	shaderstructs_reflect_wgsl(source, source_len, out_json, out_len) -> error_code
//	shaderstructs_free(ptr) -> void
//	shaderstructs_version() -> *char
package main

/*
#include <stdlib.h>
*/
import "C"
import (
	"context"
	"encoding/json"
	"unsafe"

	"github.com/HugoDaniel/shaderstructs/internal/reflection"
	"github.com/HugoDaniel/shaderstructs/pkg/api"
)

// Version should match the release version
const version = "0.1.0"

// Error codes
const (
	SHADERSTRUCTS_OK              = 0
	SHADERSTRUCTS_ERR_JSON_ENCODE = 1
	SHADERSTRUCTS_ERR_NULL_INPUT  = 2
	SHADERSTRUCTS_ERR_JSON_DECODE = 3
	SHADERSTRUCTS_ERR_GENERATE    = 4
)

// GenerateOptions mirrors the Go API options for JSON parsing
type GenerateOptions struct {
	Target         *string  `json:"target"`
	Namespace      *string  `json:"namespace"`
	Package        *string  `json:"package"`
	Collision      *string  `json:"collision"`
	Vertex         bool     `json:"vertex"`
	Pad            bool     `json:"pad"`
	IgnorePrefixes []string `json:"ignorePrefixes"`
}

// GenerateInput is one reflection document. Data is spirv-cross JSON, or
// WGSL source when Path ends in .wgsl.
type GenerateInput struct {
	Path string `json:"path"`
	Data string `json:"data"`
}

// GenerateResult is the JSON result structure for generation
type GenerateResult struct {
	Code        string           `json:"code"`
	Error       string           `json:"error,omitempty"`
	Diagnostics []api.Diagnostic `json:"diagnostics"`
	Stats       api.Stats        `json:"stats"`
}

func (o GenerateOptions) apply(opts *api.Options) {
	if o.Target != nil {
		opts.Target = *o.Target
	}
	if o.Namespace != nil {
		opts.Namespace = *o.Namespace
	}
	if o.Package != nil {
		opts.Package = *o.Package
	}
	if o.Collision != nil {
		opts.Collision = *o.Collision
	}
	opts.Vertex = o.Vertex
	opts.Pad = o.Pad
	if o.IgnorePrefixes != nil {
		opts.IgnorePrefixes = o.IgnorePrefixes
	}
}

// shaderstructs_generate renders structs from in-memory reflection documents.
//
// Parameters:
//   - inputs_json: pointer to a JSON array of {"path", "data"} objects
//   - inputs_len: length of inputs JSON in bytes
//   - options_json: pointer to JSON options (can be NULL for defaults)
//   - options_len: length of options JSON
//   - out_code: pointer to receive generated code (caller must free with shaderstructs_free)
//   - out_code_len: pointer to receive code length
//   - out_json: pointer to receive JSON result with diagnostics (caller must free with shaderstructs_free)
//   - out_json_len: pointer to receive JSON length
//
// Returns:
//   - 0 on success
//   - SHADERSTRUCTS_ERR_GENERATE when generation aborted; out_json still
//     carries the diagnostics
//   - another non-zero error code on failure
//
//export shaderstructs_generate
func shaderstructs_generate(
	inputs_json *C.char, inputs_len C.int,
	options_json *C.char, options_len C.int,
	out_code **C.char, out_code_len *C.int,
	out_json **C.char, out_json_len *C.int,
) C.int {
	if inputs_json == nil || out_code == nil || out_code_len == nil {
		return SHADERSTRUCTS_ERR_NULL_INPUT
	}

	var inputs []GenerateInput
	if err := json.Unmarshal(C.GoBytes(unsafe.Pointer(inputs_json), inputs_len), &inputs); err != nil {
		return SHADERSTRUCTS_ERR_JSON_DECODE
	}

	// Parse options or use defaults
	opts := api.DefaultOptions()
	if options_json != nil && options_len > 0 {
		var jsonOpts GenerateOptions
		if err := json.Unmarshal(C.GoBytes(unsafe.Pointer(options_json), options_len), &jsonOpts); err != nil {
			return SHADERSTRUCTS_ERR_JSON_DECODE
		}
		jsonOpts.apply(&opts)
	}

	in := make([]api.Input, len(inputs))
	for i, input := range inputs {
		in[i] = api.Input{Path: input.Path, Data: []byte(input.Data)}
	}

	result, genErr := api.GenerateFromDocuments(context.Background(), in, opts)
	if result == nil {
		// Invalid options
		return SHADERSTRUCTS_ERR_GENERATE
	}

	// Set output code
	*out_code = C.CString(string(result.Code))
	*out_code_len = C.int(len(result.Code))

	// Build JSON result if requested
	if out_json != nil && out_json_len != nil {
		jsonResult := GenerateResult{
			Code:        string(result.Code),
			Diagnostics: result.Diagnostics,
			Stats:       result.Stats,
		}
		if genErr != nil {
			jsonResult.Error = genErr.Error()
		}
		jsonBytes, err := json.Marshal(jsonResult)
		if err != nil {
			return SHADERSTRUCTS_ERR_JSON_ENCODE
		}
		*out_json = C.CString(string(jsonBytes))
		*out_json_len = C.int(len(jsonBytes))
	}

	if genErr != nil {
		return SHADERSTRUCTS_ERR_GENERATE
	}
	return SHADERSTRUCTS_OK
}

// shaderstructs_reflect_wgsl reflects WGSL source into spirv-cross style JSON.
//
// Parameters:
//   - source: pointer to WGSL source code (UTF-8)
//   - source_len: length of source in bytes
//   - out_json: pointer to receive JSON result (caller must free with shaderstructs_free)
//   - out_len: pointer to receive JSON length
//
// Returns:
//   - 0 on success
//   - non-zero error code on failure
//
//export shaderstructs_reflect_wgsl
func shaderstructs_reflect_wgsl(source *C.char, source_len C.int, out_json **C.char, out_len *C.int) C.int {
	if source == nil || out_json == nil || out_len == nil {
		return SHADERSTRUCTS_ERR_NULL_INPUT
	}

	doc, err := reflection.ReflectWGSL(C.GoStringN(source, source_len))
	if err != nil {
		return SHADERSTRUCTS_ERR_GENERATE
	}

	*out_json = C.CString(string(doc.Raw))
	*out_len = C.int(len(doc.Raw))

	return SHADERSTRUCTS_OK
}

// shaderstructs_free frees memory allocated by shaderstructs functions.
//
//export shaderstructs_free
func shaderstructs_free(ptr *C.char) {
	if ptr != nil {
		C.free(unsafe.Pointer(ptr))
	}
}

// shaderstructs_version returns the library version string.
// The caller must free the returned pointer with shaderstructs_free.
//
//export shaderstructs_version
func shaderstructs_version() *C.char {
	return C.CString(version)
}

// Required for c-archive build mode
func main() {}
