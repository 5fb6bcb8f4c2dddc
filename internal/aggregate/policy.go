package aggregate

import (
	"fmt"
	"strings"
)

// Policy decides what happens when two shaders define a type name
// differently.
type Policy string

const (
	// PolicyKeepFirst reports the collision and keeps the first definition.
	PolicyKeepFirst Policy = "keep-first"
	// PolicyRename reports the collision and registers the later definition
	// under <Name>_<shader-stem>.
	PolicyRename Policy = "rename"
	// PolicyFail reports the collision as an error and stops aggregation.
	PolicyFail Policy = "fail"
)

// Policies lists every policy in help-text order.
var Policies = []Policy{PolicyKeepFirst, PolicyRename, PolicyFail}

// ParsePolicy converts a flag/config value into a Policy. The empty string
// selects PolicyKeepFirst.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyKeepFirst, nil
	case PolicyKeepFirst, PolicyRename, PolicyFail:
		return p, nil
	}
	return "", fmt.Errorf("unknown collision policy %q (expected keep-first, rename or fail)", s)
}
