package reflection

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/HugoDaniel/shaderstructs/internal/test"
)

func TestSPIRVCrossExtract(t *testing.T) {
	tool := test.FakeTool(t, `[ "$2" = "--reflect" ] || { echo "bad args: $*" >&2; exit 2; }
cat <<'JSON'
`+materialJSON+`
JSON`)

	x := &SPIRVCross{Bin: tool}
	doc, err := x.Extract(context.Background(), "lit.frag.spv")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if doc.Path != "lit.frag.spv" {
		t.Errorf("expected path lit.frag.spv, got %q", doc.Path)
	}
	if doc.Types["_12"].Name != "Light" {
		t.Errorf("expected Light at _12, got %q", doc.Types["_12"].Name)
	}
	if !strings.Contains(string(doc.Raw), `"Lights"`) {
		t.Errorf("expected raw output to be kept, got %q", doc.Raw)
	}
}

func TestSPIRVCrossToolErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		stderr string
	}{
		{"non-zero exit", `exit 3`, ""},
		{"stderr output", `echo '{}'; echo "warning: something" >&2`, "warning: something"},
		{"stderr and exit", `echo "error: not SPIR-V" >&2; exit 1`, "error: not SPIR-V"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := &SPIRVCross{Bin: test.FakeTool(t, tt.body)}
			_, err := x.Extract(context.Background(), "broken.spv")
			var te *ToolError
			if !errors.As(err, &te) {
				t.Fatalf("expected *ToolError, got %v", err)
			}
			if te.Path != "broken.spv" {
				t.Errorf("expected path broken.spv, got %q", te.Path)
			}
			if strings.TrimSpace(te.Stderr) != tt.stderr {
				t.Errorf("expected stderr %q, got %q", tt.stderr, te.Stderr)
			}
			if len(te.Args) != 3 || te.Args[2] != "--reflect" {
				t.Errorf("unexpected args %v", te.Args)
			}
		})
	}
}

func TestSPIRVCrossParseError(t *testing.T) {
	x := &SPIRVCross{Bin: test.FakeTool(t, `echo 'not json'`)}
	_, err := x.Extract(context.Background(), "a.spv")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if strings.TrimSpace(string(pe.Raw)) != "not json" {
		t.Errorf("expected raw output on the error, got %q", pe.Raw)
	}
}

func TestSPIRVCrossMissingBinary(t *testing.T) {
	x := &SPIRVCross{Bin: filepath.Join(t.TempDir(), "does-not-exist")}
	_, err := x.Extract(context.Background(), "a.spv")
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("expected *ToolError, got %v", err)
	}
}

func TestSPIRVCrossTimeout(t *testing.T) {
	x := &SPIRVCross{Bin: test.FakeTool(t, `exec sleep 10`), Timeout: 50 * time.Millisecond}
	start := time.Now()
	_, err := x.Extract(context.Background(), "slow.spv")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("timeout did not stop the tool")
	}
}
