package resolve

import "strings"

// Substitute fills a procedure template in two whole-text passes.
//
// Pass 1 replaces ${name} for every resolved input variable, in order.
// Pass 2 replaces ${name} for every parameter, sorted by name.
//
// Each pass rescans the full current text, so a ${X} introduced by a value
// in pass 1 is itself replaced in pass 2 when X is a parameter.
func Substitute(template string, vars []Binding, params Params) string {
	out := template
	for _, b := range vars {
		out = strings.ReplaceAll(out, placeholder(b.Name), b.Value)
	}
	for _, name := range params.sortedNames() {
		out = strings.ReplaceAll(out, placeholder(name), params[name])
	}
	return out
}

func placeholder(name string) string {
	return "${" + name + "}"
}
