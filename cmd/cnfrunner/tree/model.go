// Package tree holds the dynamically-typed document tree the resolver reads.
//
// A document is built once by a loader (see treeyaml) and is read-only from
// then on. Accessors never fail: a type mismatch is reported as ok == false
// so that each caller decides whether absence is an error in its context.
package tree

import "strconv"

// Node is the sealed interface for every value in a document tree.
// Only the types in this package implement it.
// The unexported isNode() method prevents external implementations.
type Node interface {
	isNode()
	Kind() Kind
}

// Kind identifies the concrete variant behind a Node.
type Kind int

const (
	KindNull Kind = iota
	KindMap
	KindSeq
	KindString
	KindInt
	KindBool
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindMap:
		return "mapping"
	case KindSeq:
		return "sequence"
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindFloat:
		return "float"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Map is an ordered mapping. Keys are the textual form of the source scalar,
// so an integer key 1 is found by the lookup string "1".
type Map struct {
	keys   []string
	values map[string]Node
}

// Seq is an ordered sequence of nodes.
type Seq struct {
	Items []Node
}

// String is a string scalar.
type String struct {
	Value string
}

// Int is an integer scalar.
type Int struct {
	Value int64
}

// Bool is a boolean scalar.
type Bool struct {
	Value bool
}

// Float is a floating point scalar. The resolver never accepts it as a
// value; it exists so loaders can represent every YAML core scalar.
type Float struct {
	Value float64
}

// Null is the explicit null value.
type Null struct{}

func (*Map) isNode()    {}
func (*Seq) isNode()    {}
func (*String) isNode() {}
func (*Int) isNode()    {}
func (*Bool) isNode()   {}
func (*Float) isNode()  {}
func (*Null) isNode()   {}

func (*Map) Kind() Kind    { return KindMap }
func (*Seq) Kind() Kind    { return KindSeq }
func (*String) Kind() Kind { return KindString }
func (*Int) Kind() Kind    { return KindInt }
func (*Bool) Kind() Kind   { return KindBool }
func (*Float) Kind() Kind  { return KindFloat }
func (*Null) Kind() Kind   { return KindNull }

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]Node)}
}

// Set stores v under key. A key that is already present keeps its position
// and takes the new value.
func (m *Map) Set(key string, v Node) {
	if m.values == nil {
		m.values = make(map[string]Node)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key, or false if the key is absent.
func (m *Map) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in document order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Len returns the number of items.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// At returns the item at index i, or false if i is out of range.
func (s *Seq) At(i int) (Node, bool) {
	if s == nil || i < 0 || i >= len(s.Items) {
		return nil, false
	}
	return s.Items[i], true
}

// AsMap returns the node as a *Map.
// The second return value is false if the node is not a Map.
func AsMap(n Node) (*Map, bool) {
	m, ok := n.(*Map)
	return m, ok
}

// AsSeq returns the node as a *Seq.
// The second return value is false if the node is not a Seq.
func AsSeq(n Node) (*Seq, bool) {
	s, ok := n.(*Seq)
	return s, ok
}

// AsString returns the string value of a String node.
func AsString(n Node) (string, bool) {
	s, ok := n.(*String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// AsInt returns the integer value of an Int node.
func AsInt(n Node) (int64, bool) {
	i, ok := n.(*Int)
	if !ok {
		return 0, false
	}
	return i.Value, true
}

// AsBool returns the boolean value of a Bool node.
func AsBool(n Node) (bool, bool) {
	b, ok := n.(*Bool)
	if !ok {
		return false, false
	}
	return b.Value, true
}

// IsNull reports whether n is absent (nil) or an explicit Null.
func IsNull(n Node) bool {
	if n == nil {
		return true
	}
	_, ok := n.(*Null)
	return ok
}

// Field walks a chain of mapping keys starting at n.
// It returns false as soon as a step hits a non-mapping or a missing key.
func Field(n Node, keys ...string) (Node, bool) {
	cur := n
	for _, k := range keys {
		m, ok := AsMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m.Get(k)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
