package reflection

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/HugoDaniel/shaderstructs/internal/diagnostic"
	"github.com/HugoDaniel/shaderstructs/internal/logger"
)

// ArtifactSuffix is appended to a shader path to name its reflection artifact.
const ArtifactSuffix = ".json"

// Loader discovers shaders under a root and extracts their reflection
// documents, one shader at a time.
type Loader struct {
	// Extractors maps a lower-case file extension (".spv", ".wgsl") to the
	// extractor used for it. Only these extensions are discovered.
	Extractors map[string]Extractor

	// WriteArtifacts writes the raw reflection output next to each shader
	// as <shader>.json.
	WriteArtifacts bool
}

// Extensions returns the discovered extensions in sorted order.
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.Extractors))
	for ext := range l.Extractors {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Load reflects every shader under root in discovery order. A shader whose
// extraction or decoding fails is reported and skipped. The returned error is
// non-nil only when root cannot be walked or ctx is cancelled.
func (l *Loader) Load(ctx context.Context, root string) ([]*Document, []diagnostic.Diagnostic, error) {
	paths, err := Discover(root, l.Extensions())
	if err != nil {
		return nil, nil, err
	}
	log := logger.L()
	log.Debug("discovered shaders", "root", root, "count", len(paths))

	var (
		docs  []*Document
		diags []diagnostic.Diagnostic
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return docs, diags, err
		}
		doc, ds, err := l.LoadFile(ctx, path)
		diags = append(diags, ds...)
		if err != nil {
			if ctx.Err() != nil {
				return docs, diags, ctx.Err()
			}
			log.Warn("skipping shader", "path", path, "err", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, diags, nil
}

// LoadFile reflects a single shader. On failure the returned diagnostics
// describe why it was skipped.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Document, []diagnostic.Diagnostic, error) {
	ext := strings.ToLower(filepath.Ext(path))
	x, ok := l.Extractors[ext]
	if !ok {
		err := &ToolError{Path: path, Err: errors.New("no extractor for " + ext + " files")}
		return nil, []diagnostic.Diagnostic{diagnostic.Errorf(diagnostic.CodeToolError, path, "", "%v", err)}, err
	}

	logger.L().Debug("reflecting shader", "path", path)
	doc, err := x.Extract(ctx, path)
	if err != nil {
		// Unparseable output is still written out so it can be inspected.
		var diags []diagnostic.Diagnostic
		var pe *ParseError
		if errors.As(err, &pe) {
			diags = l.writeArtifact(path, pe.Raw)
		}
		return nil, append(diags, errorDiagnostic(path, err)), err
	}
	return doc, l.writeArtifact(path, doc.Raw), nil
}

func (l *Loader) writeArtifact(path string, raw []byte) []diagnostic.Diagnostic {
	if !l.WriteArtifacts || len(raw) == 0 {
		return nil
	}
	artifact := path + ArtifactSuffix
	if err := os.WriteFile(artifact, raw, 0o644); err != nil {
		logger.L().Warn("writing reflection artifact", "path", artifact, "err", err)
		return []diagnostic.Diagnostic{diagnostic.Warnf(diagnostic.CodeArtifactWrite, path, "", "could not write %s: %v", artifact, err)}
	}
	return nil
}

func errorDiagnostic(path string, err error) diagnostic.Diagnostic {
	var pe *ParseError
	if errors.As(err, &pe) {
		return diagnostic.Errorf(diagnostic.CodeParseError, path, "", "%v", pe.Err)
	}
	d := diagnostic.Errorf(diagnostic.CodeToolError, path, "", "%v", err)
	var te *ToolError
	if errors.As(err, &te) {
		d.Message = te.Error()
		if te.Err != nil {
			d.Message = te.Err.Error()
		}
		if stderr := strings.TrimSpace(te.Stderr); stderr != "" {
			d.Related = strings.Split(stderr, "\n")
		}
	}
	return d
}
