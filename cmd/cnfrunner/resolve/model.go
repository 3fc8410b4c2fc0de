package resolve

import "sort"

// Params is the flat runtime parameter map (name → value).
type Params map[string]string

// sortedNames returns the parameter names in lexical order.
// Substitution walks parameters in this order so output is reproducible.
func (p Params) sortedNames() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Declaration is one entry of the source list: the output variable name and
// the bare reference of the procedure that computes it.
type Declaration struct {
	Name      string
	Procedure string
}

// Binding is a resolved (name, value) pair.
type Binding struct {
	Name  string
	Value string
}

// Procedure is a looked-up Resources entry with its inputs already resolved.
// Inputs are kept in document order.
type Procedure struct {
	Name     string
	Template string
	Inputs   []Binding
}
