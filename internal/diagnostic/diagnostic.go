// Package diagnostic collects the problems found while turning shader
// reflection data into host structs.
//
// A diagnostic names the shader binary and, where one is involved, the type
// it concerns, so an operator can find the offending source shader.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity uint8

const (
	// Error means a shader's contribution was dropped or the run must fail.
	Error Severity = iota
	// Warning is a non-blocking issue.
	Warning
	// Info is an informational message.
	Info
	// Note provides additional context for another diagnostic.
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// Code identifies the kind of problem.
type Code string

const (
	CodeToolError           Code = "tool-error"
	CodeParseError          Code = "parse-error"
	CodeArtifactWrite       Code = "artifact-write"
	CodeUnresolvedReference Code = "unresolved-reference"
	CodeTypeCollision       Code = "type-collision"
	CodeTypeRenamed         Code = "type-renamed"
	CodeSizeMismatch        Code = "size-mismatch"
	CodeVertexInput         Code = "vertex-input"
)

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Shader   string   // path of the shader binary, if any
	Type     string   // aggregate type name, if any
	Related  []string // extra lines, e.g. both definitions of a collision
}

// Error returns a formatted error string.
func (d *Diagnostic) Error() string {
	return Format(*d, false)
}

// Errorf builds an error diagnostic.
func Errorf(code Code, shader, typeName, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Error, Code: code, Shader: shader, Type: typeName, Message: fmt.Sprintf(format, args...)}
}

// Warnf builds a warning diagnostic.
func Warnf(code Code, shader, typeName, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Warning, Code: code, Shader: shader, Type: typeName, Message: fmt.Sprintf(format, args...)}
}

// Notef builds a note diagnostic.
func Notef(code Code, shader, typeName, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Note, Code: code, Shader: shader, Type: typeName, Message: fmt.Sprintf(format, args...)}
}

// List collects diagnostics during a run.
type List struct {
	diagnostics []Diagnostic
	errors      int
}

// Add adds diagnostics to the list.
func (l *List) Add(ds ...Diagnostic) {
	for _, d := range ds {
		l.diagnostics = append(l.diagnostics, d)
		if d.Severity == Error {
			l.errors++
		}
	}
}

// HasErrors returns true if there are any error-level diagnostics.
func (l *List) HasErrors() bool {
	return l.errors > 0
}

// Diagnostics returns all collected diagnostics in the order they were added.
func (l *List) Diagnostics() []Diagnostic {
	return l.diagnostics
}

// Count returns the total number of diagnostics.
func (l *List) Count() int {
	return len(l.diagnostics)
}

// ErrorCount returns the number of error-level diagnostics.
func (l *List) ErrorCount() int {
	return l.errors
}

// CountCode returns the number of diagnostics with the given code.
func (l *List) CountCode(code Code) int {
	n := 0
	for _, d := range l.diagnostics {
		if d.Code == code {
			n++
		}
	}
	return n
}

// Format formats all diagnostics, one block per diagnostic.
func (l *List) Format(color bool) string {
	var sb strings.Builder
	for _, d := range l.diagnostics {
		sb.WriteString(Format(d, color))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Terminal colours.
const (
	colorReset  = "\x1b[0m"
	colorError  = "\x1b[31m"
	colorWarn   = "\x1b[33m"
	colorStatus = "\x1b[36m"
)

// Format renders a diagnostic as
//
//	shader.spv: error[type-collision]: Material: message
//	    related line
func Format(d Diagnostic, color bool) string {
	var sb strings.Builder
	if d.Shader != "" {
		sb.WriteString(d.Shader)
		sb.WriteString(": ")
	}

	label := d.Severity.String()
	if d.Code != "" {
		label += "[" + string(d.Code) + "]"
	}
	if color {
		switch d.Severity {
		case Error:
			label = colorError + label + colorReset
		case Warning:
			label = colorWarn + label + colorReset
		default:
			label = colorStatus + label + colorReset
		}
	}
	sb.WriteString(label)
	sb.WriteString(": ")

	if d.Type != "" {
		sb.WriteString(d.Type)
		sb.WriteString(": ")
	}
	sb.WriteString(d.Message)

	for _, rel := range d.Related {
		sb.WriteString("\n    ")
		sb.WriteString(rel)
	}
	return sb.String()
}
