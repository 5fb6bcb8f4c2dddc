//go:build js && wasm

// Command shaderstructs-wasm is the WebAssembly build of the struct generator.
// It exposes generation to JavaScript via syscall/js. No external tool runs
// in the browser: callers pass spirv-cross reflection JSON or WGSL sources.
package main

import (
	"context"
	"encoding/json"
	"syscall/js"

	"github.com/HugoDaniel/shaderstructs/internal/reflection"
	"github.com/HugoDaniel/shaderstructs/pkg/api"
)

var version = "0.1.0"

// jsOptions mirrors the JavaScript options object.
type jsOptions struct {
	Target         *string  `json:"target"`
	Namespace      *string  `json:"namespace"`
	Package        *string  `json:"package"`
	Collision      *string  `json:"collision"`
	Vertex         *bool    `json:"vertex"`
	Pad            *bool    `json:"pad"`
	IgnorePrefixes []string `json:"ignorePrefixes"`
}

// jsInput is one element of the inputs array.
type jsInput struct {
	Path string `json:"path"`
	Data string `json:"data"`
}

func main() {
	// Export functions to JavaScript
	js.Global().Set("__shaderstructs", js.ValueOf(map[string]interface{}{
		"generate":    js.FuncOf(generateJS),
		"reflectWGSL": js.FuncOf(reflectWGSLJS),
		"version":     version,
	}))

	// Keep the Go runtime alive
	select {}
}

// generateJS is the JavaScript-callable generate function.
// Signature: __shaderstructs.generate(inputs: {path, data}[], options?: object) => object
func generateJS(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("generate requires at least 1 argument (inputs)")
	}

	var inputs []jsInput
	if err := json.Unmarshal([]byte(stringify(args[0])), &inputs); err != nil {
		return makeError("inputs must be an array of {path, data}: " + err.Error())
	}

	opts := api.DefaultOptions()
	if len(args) > 1 && !args[1].IsUndefined() && !args[1].IsNull() {
		var jsOpts jsOptions
		if err := json.Unmarshal([]byte(stringify(args[1])), &jsOpts); err != nil {
			return makeError("invalid options: " + err.Error())
		}
		if jsOpts.Target != nil {
			opts.Target = *jsOpts.Target
		}
		if jsOpts.Namespace != nil {
			opts.Namespace = *jsOpts.Namespace
		}
		if jsOpts.Package != nil {
			opts.Package = *jsOpts.Package
		}
		if jsOpts.Collision != nil {
			opts.Collision = *jsOpts.Collision
		}
		if jsOpts.Vertex != nil {
			opts.Vertex = *jsOpts.Vertex
		}
		if jsOpts.Pad != nil {
			opts.Pad = *jsOpts.Pad
		}
		if jsOpts.IgnorePrefixes != nil {
			opts.IgnorePrefixes = jsOpts.IgnorePrefixes
		}
	}

	in := make([]api.Input, len(inputs))
	for i, input := range inputs {
		in[i] = api.Input{Path: input.Path, Data: []byte(input.Data)}
	}

	result, err := api.GenerateFromDocuments(context.Background(), in, opts)
	if result == nil {
		return makeError(err.Error())
	}

	out := map[string]interface{}{
		"code":        string(result.Code),
		"diagnostics": toJS(result.Diagnostics),
		"stats":       toJS(result.Stats),
	}
	if err != nil {
		out["error"] = err.Error()
	}
	return out
}

// reflectWGSLJS returns the reflection document of a WGSL source.
// Signature: __shaderstructs.reflectWGSL(source: string) => object
func reflectWGSLJS(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("reflectWGSL requires 1 argument (source)")
	}
	doc, err := reflection.ReflectWGSL(args[0].String())
	if err != nil {
		return makeError(err.Error())
	}
	return map[string]interface{}{
		"json": string(doc.Raw),
	}
}

// stringify serializes a JS value through JSON.stringify.
func stringify(v js.Value) string {
	return js.Global().Get("JSON").Call("stringify", v).String()
}

// toJS converts a Go value into plain JS objects via a JSON round trip.
func toJS(v interface{}) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return js.Global().Get("JSON").Call("parse", string(data))
}

// makeError creates a result object with an error.
func makeError(msg string) interface{} {
	return map[string]interface{}{
		"code":        "",
		"diagnostics": []interface{}{},
		"error":       msg,
	}
}
