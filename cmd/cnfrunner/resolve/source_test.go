package resolve

import (
	"errors"
	"testing"

	"github.com/sergz72/cnf-runner/cmd/cnfrunner/tree"
)

const sourceDoc = `
Resources:
  - Vars:
      - Name: A
        Value: ${P.Value}
  - Vars: ~
Top:
  Nested:
    Leaf: text
`

func TestLocate_IndexThenKey(t *testing.T) {
	got, err := Locate(mustParse(t, sourceDoc), "Resources.0.Vars")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq, ok := tree.AsSeq(got)
	if !ok || seq.Len() != 1 {
		t.Fatalf("expected 1-item sequence, got %v", got)
	}
}

func TestLocate_KeysOnly(t *testing.T) {
	got, err := Locate(mustParse(t, sourceDoc), "Top.Nested.Leaf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, _ := tree.AsString(got); s != "text" {
		t.Errorf("got %q, want %q", s, "text")
	}
}

func TestLocate_Errors(t *testing.T) {
	doc := mustParse(t, sourceDoc)

	cases := []struct {
		name  string
		path  string
		wants []string
	}{
		{"index on mapping", "Top.0", []string{"phase=source", "path=Top.0", "expected sequence element for 0 source parameter"}},
		{"index out of range", "Resources.5", []string{"path=Resources.5", "index 5 out of range for sequence of length 2"}},
		{"missing key", "Top.Nope", []string{"path=Top.Nope", "Nope source parameter not found"}},
		{"null value", "Resources.1.Vars", []string{"path=Resources.1.Vars", "Vars source parameter not found"}},
		{"key below scalar", "Top.Nested.Leaf.More", []string{"More source parameter not found"}},
		{"negative is a key", "Resources.-1", []string{"-1 source parameter not found"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Locate(doc, tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrResolution) {
				t.Errorf("error %q is not ErrResolution", err)
			}
			mustContain(t, err.Error(), tc.wants...)
		})
	}
}
