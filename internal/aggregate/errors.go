package aggregate

import (
	"fmt"

	"github.com/HugoDaniel/shaderstructs/internal/reflection"
)

// UnresolvedReferenceError reports a member whose type id names no entry of
// its document. None of the document's types are merged.
type UnresolvedReferenceError struct {
	Shader string
	Type   string
	Member string
	Ref    string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s: member %s.%s references unknown type %s", e.Shader, e.Type, e.Member, e.Ref)
}

// CollisionError reports two different definitions sharing a name.
type CollisionError struct {
	Name         string
	First        reflection.Type
	FirstShader  string
	Second       reflection.Type
	SecondShader string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("type %s is defined differently in %s and %s", e.Name, e.FirstShader, e.SecondShader)
}

// Related returns both definitions for display.
func (e *CollisionError) Related() []string {
	return []string{
		"first:  " + e.FirstShader + ": " + e.First.String(),
		"second: " + e.SecondShader + ": " + e.Second.String(),
	}
}
