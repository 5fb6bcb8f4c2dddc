package reflection

import (
	"fmt"
	"strings"
)

// ToolError reports that the reflection extractor failed for one shader.
type ToolError struct {
	Path   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "reflecting %s", e.Path)
	if len(e.Args) > 0 {
		fmt.Fprintf(&sb, ": failed to run %v", e.Args)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		sb.WriteString(": ")
		sb.WriteString(stderr)
	}
	return sb.String()
}

func (e *ToolError) Unwrap() error { return e.Err }

// ParseError reports that reflection output is not a valid document.
type ParseError struct {
	Path string
	// Raw is the output that failed to parse.
	Raw []byte
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing reflection output of %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
