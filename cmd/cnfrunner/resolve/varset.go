package resolve

// VarSet is the ordered set of resolved output variables.
// Names keep their first insertion position; setting a name again replaces
// its value.
type VarSet struct {
	names  []string
	values map[string]string
}

// NewVarSet returns an empty set.
func NewVarSet() *VarSet {
	return &VarSet{values: make(map[string]string)}
}

// Set stores value under name.
func (s *VarSet) Set(name, value string) {
	if _, exists := s.values[name]; !exists {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// Get returns the value stored under name.
func (s *VarSet) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Names returns the variable names in insertion order.
func (s *VarSet) Names() []string {
	return append([]string(nil), s.names...)
}

// Len reports the number of distinct names.
func (s *VarSet) Len() int { return len(s.names) }

// Bindings returns the variables as ordered pairs.
func (s *VarSet) Bindings() []Binding {
	out := make([]Binding, len(s.names))
	for i, n := range s.names {
		out[i] = Binding{Name: n, Value: s.values[n]}
	}
	return out
}

// Environ returns the variables in "name=value" form, in insertion order,
// suitable for appending to exec.Cmd.Env.
func (s *VarSet) Environ() []string {
	out := make([]string, len(s.names))
	for i, n := range s.names {
		out[i] = n + "=" + s.values[n]
	}
	return out
}
