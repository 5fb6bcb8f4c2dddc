package reflection

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions are the shader file extensions discovered by default.
var DefaultExtensions = []string{".spv"}

// Discover walks root recursively and returns, in lexical order, every regular
// file whose extension is one of exts (compared case-insensitively). An empty
// exts means DefaultExtensions.
func Discover(root string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	want := make(map[string]bool, len(exts))
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		want[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if want[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// Stem returns the shader file name without directories or extensions, e.g.
// "shaders/lit.frag.spv" gives "lit".
func Stem(path string) string {
	base := filepath.Base(path)
	if len(base) < 2 {
		return base
	}
	if i := strings.IndexByte(base[1:], '.'); i >= 0 {
		return base[:i+1]
	}
	return base
}
