package reflection

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

const materialJSON = `{
	"entryPoints": [{"name": "main", "mode": "frag"}],
	"types": {
		"_12": {
			"name": "Light",
			"members": [
				{"name": "color", "type": "vec3", "offset": 0},
				{"name": "intensity", "type": "float", "offset": 12}
			]
		},
		"_20": {
			"name": "Lights",
			"members": [
				{"name": "lights", "type": "_12", "array": [4], "array_size_is_literal": [true], "offset": 0},
				{"name": "weights", "type": "float", "array": [3, 0], "array_size_is_literal": [false, true], "offset": 64}
			]
		}
	},
	"ubos": [{"name": "LightBlock", "type": "_20", "set": 0, "binding": 1, "block_size": 80}]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode("lit.frag.spv", []byte(materialJSON))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Path != "lit.frag.spv" {
		t.Errorf("expected path lit.frag.spv, got %q", doc.Path)
	}
	if len(doc.Types) != 2 {
		t.Fatalf("expected 2 types, got %d", len(doc.Types))
	}

	lights := doc.Types["_20"]
	if lights.Name != "Lights" {
		t.Errorf("expected Lights, got %q", lights.Name)
	}
	want := []ArrayDim{{Size: 4, Literal: true}}
	if !slices.Equal(lights.Members[0].Array, want) {
		t.Errorf("expected dims %v, got %v", want, lights.Members[0].Array)
	}
	want = []ArrayDim{{Size: 3, Literal: false}, {Size: 0, Literal: true}}
	if !slices.Equal(lights.Members[1].Array, want) {
		t.Errorf("expected dims %v, got %v", want, lights.Members[1].Array)
	}
	if lights.Members[1].Offset == nil || *lights.Members[1].Offset != 64 {
		t.Errorf("expected offset 64, got %v", lights.Members[1].Offset)
	}

	if len(doc.UBOs) != 1 || doc.UBOs[0].Type != "_20" || doc.UBOs[0].Binding != 1 {
		t.Errorf("unexpected ubos: %+v", doc.UBOs)
	}
	if ids := doc.BlockTypeIDs(); !ids["_20"] || ids["_12"] {
		t.Errorf("unexpected block ids: %v", ids)
	}
}

func TestDecodeMissingOffsetAndLiteral(t *testing.T) {
	doc, err := Decode("a.spv", []byte(`{"types": {"_5": {"name": "Tmp", "members": [
		{"name": "v", "type": "vec4", "array": [2]}
	]}}}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	m := doc.Types["_5"].Members[0]
	if m.Offset != nil {
		t.Errorf("expected no offset, got %d", *m.Offset)
	}
	if len(m.Array) != 1 || !m.Array[0].Literal || m.Array[0].Size != 2 {
		t.Errorf("expected literal dimension 2, got %v", m.Array)
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, input := range []string{"", "   \n", "{not json", `{"types": []}`} {
		_, err := Decode("bad.spv", []byte(input))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("input %q: expected *ParseError, got %v", input, err)
			continue
		}
		if pe.Path != "bad.spv" {
			t.Errorf("expected path bad.spv, got %q", pe.Path)
		}
	}
}

func TestMemberMarshalLayout(t *testing.T) {
	off := 16
	m := Member{Name: "w", Type: "float", Offset: &off, Array: []ArrayDim{{Size: 2, Literal: true}, {Size: 7, Literal: false}}}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `{"name":"w","type":"float","offset":16,"array":[2,7],"array_size_is_literal":[true,false]}`
	if string(data) != expected {
		t.Errorf("expected %s, got %s", expected, data)
	}
}

func TestTypeEqual(t *testing.T) {
	off0, off4, off16 := 0, 4, 16
	a := Type{Name: "T", Members: []Member{{Name: "x", Type: "float", Offset: &off0}, {Name: "y", Type: "float", Offset: &off4}}}
	b := a.Clone()
	b.Members[1].Offset = &off16

	if !a.Equal(b) {
		t.Error("expected types differing only in offsets to be equal")
	}

	c := a.Clone()
	c.Members[1].Type = "int"
	if a.Equal(c) {
		t.Error("expected different member types to differ")
	}

	d := a.Clone()
	d.Members[0].Array = []ArrayDim{{Size: 2, Literal: true}}
	if a.Equal(d) {
		t.Error("expected different array shapes to differ")
	}

	e := a.Clone()
	e.Members = e.Members[:1]
	if a.Equal(e) {
		t.Error("expected different member counts to differ")
	}
}

func TestCloneIsDeep(t *testing.T) {
	off := 8
	a := Type{Name: "T", Members: []Member{{Name: "x", Type: "_3", Offset: &off, Array: []ArrayDim{{Size: 2, Literal: true}}}}}
	b := a.Clone()
	b.Members[0].Type = "Inner"
	*b.Members[0].Offset = 99
	b.Members[0].Array[0].Size = 5

	if a.Members[0].Type != "_3" || *a.Members[0].Offset != 8 || a.Members[0].Array[0].Size != 2 {
		t.Errorf("clone shares state with original: %+v", a.Members[0])
	}
}

func TestIsTypeRef(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"_12", true},
		{"_0", true},
		{"_", false},
		{"_12a", false},
		{"vec3", false},
		{"Light_2", false},
		{"x_12", false},
	}
	for _, tt := range tests {
		if got := IsTypeRef(tt.in); got != tt.want {
			t.Errorf("IsTypeRef(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestTypeIDsOrder(t *testing.T) {
	doc := &Document{Types: map[string]Type{"_10": {}, "_2": {}, "_33": {}, "named": {}, "_1": {}}}
	expected := []string{"_1", "_2", "_10", "_33", "named"}
	if got := doc.TypeIDs(); !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestIsVertex(t *testing.T) {
	tests := []struct {
		doc  Document
		want bool
	}{
		{Document{EntryPoints: []EntryPoint{{Name: "main", Mode: "vert"}}}, true},
		{Document{EntryPoints: []EntryPoint{{Name: "main", Mode: "frag"}}, Path: "a.vert.spv"}, false},
		{Document{Path: "shaders/a.vert.spv"}, true},
		{Document{Path: "shaders/a.frag.spv"}, false},
	}
	for i, tt := range tests {
		if got := tt.doc.IsVertex(); got != tt.want {
			t.Errorf("case %d: expected %v, got %v", i, tt.want, got)
		}
	}
}

func TestArrayDimDynamic(t *testing.T) {
	if (ArrayDim{Size: 4, Literal: true}).Dynamic() {
		t.Error("literal 4 should be fixed")
	}
	if !(ArrayDim{Size: 0, Literal: true}).Dynamic() {
		t.Error("literal 0 should be dynamic")
	}
	if !(ArrayDim{Size: 4, Literal: false}).Dynamic() {
		t.Error("non-literal size should be dynamic")
	}
}
