package resolve

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseReplaceRules(t *testing.T) {
	cases := []struct {
		in   string
		want ReplaceRules
	}{
		{"", nil},
		{"a->b", ReplaceRules{{"a", "b"}}},
		{"a->b->c->d", ReplaceRules{{"a", "b"}, {"c", "d"}}},
		{"-->_", ReplaceRules{{"-", "_"}}},
		{"x->", ReplaceRules{{"x", ""}}},
		{"a->1->b->2->a->3", ReplaceRules{{"a", "3"}, {"b", "2"}}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseReplaceRules(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("rules mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseReplaceRules_Errors(t *testing.T) {
	for _, in := range []string{"a", "a->b->c", "->x"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseReplaceRules(in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrResolution) {
				t.Errorf("error %q is not ErrResolution", err)
			}
			mustContain(t, err.Error(), "phase=replace", "invalid replaces parameter")
		})
	}
}

func TestReplaceRules_ApplyInOrder(t *testing.T) {
	rules, err := ParseReplaceRules("a->b->c->d")
	if err != nil {
		t.Fatal(err)
	}
	if got := rules.Apply("abc"); got != "bbd" {
		t.Errorf("Apply(abc) = %q, want %q", got, "bbd")
	}

	// Later rules see the output of earlier ones.
	chained, err := ParseReplaceRules("a->b->b->c")
	if err != nil {
		t.Fatal(err)
	}
	if got := chained.Apply("ab"); got != "cc" {
		t.Errorf("Apply(ab) = %q, want %q", got, "cc")
	}
}

func TestReplaceRules_ApplyLiteral(t *testing.T) {
	rules := ReplaceRules{{From: ".*", To: "!"}}
	if got := rules.Apply("a.*b.c"); got != "a!b.c" {
		t.Errorf("got %q, want %q", got, "a!b.c")
	}
	var none ReplaceRules
	if got := none.Apply("same"); got != "same" {
		t.Errorf("nil rules changed input: %q", got)
	}
}
