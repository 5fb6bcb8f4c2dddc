// Package api provides the public API for the shader struct generator.
//
// This package is intended for programmatic use of the generator.
// For CLI usage, see cmd/shaderstructs.
package api

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoDaniel/shaderstructs/internal/aggregate"
	"github.com/HugoDaniel/shaderstructs/internal/diagnostic"
	"github.com/HugoDaniel/shaderstructs/internal/emit"
	"github.com/HugoDaniel/shaderstructs/internal/formats"
	"github.com/HugoDaniel/shaderstructs/internal/logger"
	"github.com/HugoDaniel/shaderstructs/internal/reflection"
)

// Options controls generation.
type Options struct {
	// Root is the directory searched recursively for shaders.
	Root string

	// Extensions are the shader binary extensions handed to Tool.
	// Default [".spv"].
	Extensions []string

	// Tool is the reflection tool, run as `<Tool> <binary> --reflect`.
	Tool string

	// Timeout bounds each tool invocation. Zero means no limit.
	Timeout time.Duration

	// WGSL also discovers .wgsl sources and reflects them in process.
	WGSL bool

	// Target is the output language: "cpp" or "go".
	Target string

	// Namespace wraps C++ output.
	Namespace string

	// Package is the Go package name of Go output.
	Package string

	// Collision is the name collision policy: "keep-first", "rename" or "fail".
	Collision string

	// Vertex emits one struct per distinct vertex shader input layout.
	Vertex bool

	// Pad inserts explicit padding members to match shader offsets.
	Pad bool

	// WriteReflectionFiles writes <binary>.json next to every shader.
	WriteReflectionFiles bool

	// IgnorePrefixes are type name prefixes to skip. Nil means "gl_".
	IgnorePrefixes []string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Root:                 ".",
		Extensions:           []string{".spv"},
		Tool:                 reflection.DefaultTool,
		Target:               string(formats.TargetCPP),
		Namespace:            "glsl",
		Package:              "glsl",
		Collision:            string(aggregate.PolicyKeepFirst),
		WriteReflectionFiles: true,
	}
}

// Diagnostic is a problem found while generating.
type Diagnostic struct {
	// Severity is "error", "warning", "info" or "note".
	Severity string `json:"severity"`
	// Code identifies the kind of problem, e.g. "type-collision".
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Shader  string   `json:"shader,omitempty"`
	Type    string   `json:"type,omitempty"`
	Related []string `json:"related,omitempty"`
}

// String formats the diagnostic the way the CLI prints it.
func (d Diagnostic) String() string {
	return FormatDiagnostic(d, false)
}

// FormatDiagnostic formats d, with ANSI colors when color is set.
func FormatDiagnostic(d Diagnostic, color bool) string {
	return diagnostic.Format(d.internal(), color)
}

func (d Diagnostic) internal() diagnostic.Diagnostic {
	sev := diagnostic.Note
	for _, s := range []diagnostic.Severity{diagnostic.Error, diagnostic.Warning, diagnostic.Info} {
		if s.String() == d.Severity {
			sev = s
		}
	}
	return diagnostic.Diagnostic{
		Severity: sev,
		Code:     diagnostic.Code(d.Code),
		Message:  d.Message,
		Shader:   d.Shader,
		Type:     d.Type,
		Related:  d.Related,
	}
}

// Stats summarizes a run.
type Stats struct {
	// Shaders is the number of shaders discovered or given.
	Shaders int `json:"shaders"`
	// Skipped counts shaders whose reflection failed.
	Skipped int `json:"skipped"`
	// Dropped counts documents dropped for unresolved type references.
	Dropped int `json:"dropped"`
	// Types is the number of canonical types emitted.
	Types int `json:"types"`
	// VertexLayouts is the number of vertex structs emitted.
	VertexLayouts int `json:"vertexLayouts"`
	// Collisions counts name collisions.
	Collisions int `json:"collisions"`
}

// Result contains the generated source.
type Result struct {
	// Code is the generated source text. Empty when generation aborted.
	Code []byte

	Diagnostics []Diagnostic
	Stats       Stats
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diagnostic.Error.String() {
			return true
		}
	}
	return false
}

// Input is one reflection document given directly rather than discovered.
// Data holds spirv-cross --reflect JSON, or WGSL source when Path ends in
// .wgsl.
type Input struct {
	Path string
	Data []byte
}

// Generate discovers shaders under opts.Root, reflects them and renders the
// generated source. Failing shaders are reported in Result.Diagnostics and
// skipped. The error is non-nil for invalid options, an unreadable root,
// cancellation and collisions under the "fail" policy; in the last case the
// Result still carries the diagnostics.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	g, err := newGenerator(opts)
	if err != nil {
		return nil, err
	}

	loader := &reflection.Loader{
		Extractors:     make(map[string]reflection.Extractor),
		WriteArtifacts: opts.WriteReflectionFiles,
	}
	tool := &reflection.SPIRVCross{Bin: opts.Tool, Timeout: opts.Timeout}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = reflection.DefaultExtensions
	}
	for _, ext := range exts {
		loader.Extractors[normalizeExt(ext)] = tool
	}
	if opts.WGSL {
		loader.Extractors[".wgsl"] = reflection.WGSL{}
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	docs, diags, err := loader.Load(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("loading shaders from %s: %w", root, err)
	}
	g.diags.Add(diags...)
	for _, d := range diags {
		if d.Code == diagnostic.CodeToolError || d.Code == diagnostic.CodeParseError {
			g.stats.Skipped++
		}
	}
	g.stats.Shaders = len(docs) + g.stats.Skipped
	return g.run(ctx, docs)
}

// GenerateFromDocuments renders the given inputs in order without running
// any external tool or touching the filesystem.
func GenerateFromDocuments(ctx context.Context, inputs []Input, opts Options) (*Result, error) {
	g, err := newGenerator(opts)
	if err != nil {
		return nil, err
	}
	g.stats.Shaders = len(inputs)

	var docs []*reflection.Document
	for _, in := range inputs {
		var (
			doc *reflection.Document
			err error
		)
		if strings.EqualFold(filepath.Ext(in.Path), ".wgsl") {
			doc, err = reflection.ReflectWGSL(string(in.Data))
			if doc != nil {
				doc.Path = in.Path
			}
		} else {
			doc, err = reflection.Decode(in.Path, in.Data)
		}
		if err != nil {
			code := diagnostic.CodeParseError
			if strings.EqualFold(filepath.Ext(in.Path), ".wgsl") {
				code = diagnostic.CodeToolError
			}
			g.diags.Add(diagnostic.Errorf(code, in.Path, "", "%v", unwrapped(err)))
			g.stats.Skipped++
			continue
		}
		docs = append(docs, doc)
	}
	return g.run(ctx, docs)
}

func unwrapped(err error) error {
	var pe *reflection.ParseError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

type generator struct {
	agg   *aggregate.Aggregator
	dict  *formats.Dictionary
	emit  emit.Options
	diags diagnostic.List
	stats Stats
}

func newGenerator(opts Options) (*generator, error) {
	target := opts.Target
	if target == "" {
		target = string(formats.TargetCPP)
	}
	t, err := formats.ParseTarget(target)
	if err != nil {
		return nil, err
	}
	dict, err := formats.For(t)
	if err != nil {
		return nil, err
	}
	policy, err := aggregate.ParsePolicy(opts.Collision)
	if err != nil {
		return nil, err
	}
	return &generator{
		agg: &aggregate.Aggregator{
			Policy:         policy,
			Vertex:         opts.Vertex,
			IgnorePrefixes: opts.IgnorePrefixes,
		},
		dict: dict,
		emit: emit.Options{
			Namespace: opts.Namespace,
			Package:   opts.Package,
			Pad:       opts.Pad,
		},
	}, nil
}

func (g *generator) run(ctx context.Context, docs []*reflection.Document) (*Result, error) {
	log := logger.L()
	table := aggregate.NewTable()

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return g.result(nil), err
		}
		ds, err := g.agg.Add(table, doc)
		g.diags.Add(ds...)
		if err != nil {
			var ure *aggregate.UnresolvedReferenceError
			if errors.As(err, &ure) {
				g.stats.Dropped++
				continue
			}
			g.stats.Collisions = g.diags.CountCode(diagnostic.CodeTypeCollision)
			return g.result(nil), err
		}
	}

	file, ds := emit.Build(table, g.dict, g.emit)
	g.diags.Add(ds...)
	code, err := emit.Bytes(file)
	if err != nil {
		return g.result(nil), err
	}

	g.stats.Types = table.Len()
	g.stats.VertexLayouts = len(table.VertexLayouts())
	g.stats.Collisions = g.diags.CountCode(diagnostic.CodeTypeCollision)
	log.Info("generated structs",
		"target", string(g.dict.Target()),
		"shaders", g.stats.Shaders,
		"skipped", g.stats.Skipped,
		"types", g.stats.Types,
		"collisions", g.stats.Collisions)
	return g.result(code), nil
}

func (g *generator) result(code []byte) *Result {
	r := &Result{Code: code, Stats: g.stats}
	for _, d := range g.diags.Diagnostics() {
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Severity: d.Severity.String(),
			Code:     string(d.Code),
			Message:  d.Message,
			Shader:   d.Shader,
			Type:     d.Type,
			Related:  d.Related,
		})
	}
	return r
}

// WriteOutput replaces the file at path with code. The file is never left
// partially written.
func WriteOutput(path string, code []byte) error {
	return emit.Replace(path, code)
}
