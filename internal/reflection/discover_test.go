package reflection

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/HugoDaniel/shaderstructs/internal/test"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	test.WriteTree(t, root,
		"z.frag.spv",
		"a/b/c/deep.comp.spv",
		"a/mesh.vert.spv",
		"a/mesh.vert.spv.json",
		"a/notes.txt",
		"UPPER.SPV",
		"src/shader.wgsl",
	)

	got, err := Discover(root, nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	expected := []string{
		filepath.Join(root, "UPPER.SPV"),
		filepath.Join(root, "a/b/c/deep.comp.spv"),
		filepath.Join(root, "a/mesh.vert.spv"),
		filepath.Join(root, "z.frag.spv"),
	}
	if !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	got, err = Discover(root, []string{"wgsl"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "shader.wgsl" {
		t.Errorf("expected only shader.wgsl, got %v", got)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestStem(t *testing.T) {
	tests := map[string]string{
		"shaders/lit.frag.spv": "lit",
		"mesh.spv":             "mesh",
		"/abs/dir/a":           "a",
		".hidden.spv":          ".hidden",
	}
	for in, want := range tests {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q): expected %q, got %q", in, want, got)
		}
	}
}
