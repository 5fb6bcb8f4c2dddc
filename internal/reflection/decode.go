package reflection

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Decode parses spirv-cross reflection JSON. Malformed input yields a
// *ParseError.
func Decode(path string, data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Path: path, Raw: data, Err: errors.New("empty output")}
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Raw: data, Err: err}
	}
	doc.Path = path
	doc.Raw = data
	return &doc, nil
}
