package resolve

import "strings"

// ruleSep separates the parts of a replace parameter: "a->b->c->d" holds
// the two rules a→b and c→d.
const ruleSep = "->"

// ReplaceRule is one literal substring rewrite.
type ReplaceRule struct {
	From string
	To   string
}

// ReplaceRules is an ordered set of rules applied one after another.
type ReplaceRules []ReplaceRule

// ParseReplaceRules parses the replace parameter. An empty string yields no
// rules. A repeated From keeps its first position and takes the last To.
func ParseReplaceRules(s string) (ReplaceRules, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ruleSep)
	if len(parts)%2 != 0 {
		return nil, fail("replace", "replace", "invalid replaces parameter: %d parts, expected pairs separated by %q", len(parts), ruleSep)
	}

	var rules ReplaceRules
	index := make(map[string]int, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		from, to := parts[i], parts[i+1]
		if from == "" {
			return nil, fail("replace", "replace", "invalid replaces parameter: rule %d has an empty source", i/2)
		}
		if j, ok := index[from]; ok {
			rules[j].To = to
			continue
		}
		index[from] = len(rules)
		rules = append(rules, ReplaceRule{From: from, To: to})
	}
	return rules, nil
}

// Apply runs every rule over the whole current string, in order; later rules
// see the output of earlier ones.
func (r ReplaceRules) Apply(s string) string {
	for _, rule := range r {
		s = strings.ReplaceAll(s, rule.From, rule.To)
	}
	return s
}
