package reflection

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Extractor produces the reflection document of one shader file.
type Extractor interface {
	Extract(ctx context.Context, path string) (*Document, error)
}

// DefaultTool is the reflection tool used when none is configured.
const DefaultTool = "spirv-cross"

// SPIRVCross extracts reflection data by running `<Bin> <path> --reflect`.
type SPIRVCross struct {
	Bin string
	// Timeout bounds a single invocation. Zero means no limit.
	Timeout time.Duration
}

// NewSPIRVCross returns an extractor using the spirv-cross found on PATH.
func NewSPIRVCross() *SPIRVCross { return &SPIRVCross{Bin: DefaultTool} }

// Extract runs the tool on path. The tool must exit cleanly and write nothing
// to stderr; anything else is a *ToolError.
func (s *SPIRVCross) Extract(ctx context.Context, path string) (*Document, error) {
	bin := s.Bin
	if bin == "" {
		bin = DefaultTool
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, path, "--reflect")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil && stderr.Len() > 0 {
		err = errors.New("tool wrote to stderr")
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &ToolError{Path: path, Args: cmd.Args, Stderr: stderr.String(), Err: err}
	}
	return Decode(path, stdout.Bytes())
}
