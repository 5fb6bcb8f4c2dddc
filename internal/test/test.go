// Package test provides helpers shared by the shaderstructs tests.
//
// Failures are reported with line diffs so generated source can be compared
// against expected text directly.
package test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// AssertEqual checks if two values are equal and reports a test error if not.
func AssertEqual[T comparable](t *testing.T, actual, expected T) {
	t.Helper()
	if actual != expected {
		t.Errorf("\nexpected: %v\nactual:   %v", expected, actual)
	}
}

// AssertEqualWithDiff checks if two strings are equal and shows a diff if not.
func AssertEqualWithDiff(t *testing.T, actual, expected string) {
	t.Helper()
	if actual != expected {
		t.Errorf("\n%s", Diff(expected, actual))
	}
}

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 2

// Diff produces a line-by-line diff between two strings. Only changed lines
// and diffContext lines around them are shown, each prefixed with its
// 1-based line number. Lines are compared by position, not by LCS.
func Diff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")
	n := max(len(expectedLines), len(actualLines))

	line := func(lines []string, i int) (string, bool) {
		if i < len(lines) {
			return lines[i], true
		}
		return "", false
	}

	changed := make([]bool, n)
	for i := range n {
		e, eok := line(expectedLines, i)
		a, aok := line(actualLines, i)
		changed[i] = e != a || eok != aok
	}

	var b strings.Builder
	b.WriteString("--- expected\n+++ actual\n")
	skipped, printed := false, false
	for i := range n {
		near := false
		for j := max(0, i-diffContext); j <= min(n-1, i+diffContext); j++ {
			near = near || changed[j]
		}
		if !near {
			skipped = true
			continue
		}
		if skipped {
			b.WriteString("...\n")
			skipped = false
		}
		printed = true
		e, eok := line(expectedLines, i)
		a, aok := line(actualLines, i)
		if !changed[i] {
			fmt.Fprintf(&b, "%4d  %s\n", i+1, e)
			continue
		}
		if eok {
			fmt.Fprintf(&b, "%4d -%s\n", i+1, e)
		}
		if aok {
			fmt.Fprintf(&b, "%4d +%s\n", i+1, a)
		}
	}
	if skipped && printed {
		b.WriteString("...\n")
	}
	return b.String()
}

// WriteTree creates each file under root with its path as contents,
// creating intermediate directories.
func WriteTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(f), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}
}

// FakeTool writes an executable shell script standing in for an external
// reflection tool and returns its path. The test is skipped where no POSIX
// shell is available.
func FakeTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script tools are not supported on windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "spirv-cross")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake tool: %v", err)
	}
	return path
}
