package resolve

import (
	"fmt"
	"strings"

	"github.com/sergz72/cnf-runner/cmd/cnfrunner/tree"
)

// BuildVarList turns the located source node into an ordered declaration list.
//
// Each element must be a mapping with string fields Name and Value, where
// Value has the form ${<ref>.Value}. The first malformed element aborts the
// whole build.
func BuildVarList(source tree.Node) ([]Declaration, error) {
	if tree.IsNull(source) {
		return nil, fail("vars", "<source>", "source parameter not found")
	}
	seq, ok := tree.AsSeq(source)
	if !ok {
		return nil, fail("vars", "<source>", "source parameter should be a sequence, got %s", source.Kind())
	}

	out := make([]Declaration, 0, seq.Len())
	for i, item := range seq.Items {
		path := fmt.Sprintf("<source>[%d]", i)

		m, ok := tree.AsMap(item)
		if !ok {
			return nil, fail("vars", path, "variable should be a mapping, got %s", item.Kind())
		}
		name, err := stringField(m, "Name", path)
		if err != nil {
			return nil, err
		}
		value, err := stringField(m, "Value", path)
		if err != nil {
			return nil, err
		}
		out = append(out, Declaration{Name: name, Procedure: procedureRef(value)})
	}
	return out, nil
}

// stringField returns the string stored under key, failing when it is
// absent or not a string.
func stringField(m *tree.Map, key, path string) (string, error) {
	v, ok := m.Get(key)
	if !ok {
		return "", fail("vars", path+"."+key, "variable %s is absent", strings.ToLower(key))
	}
	s, ok := tree.AsString(v)
	if !ok {
		return "", fail("vars", path+"."+key, "variable %s should be a string, got %s", strings.ToLower(key), v.Kind())
	}
	return s, nil
}

// procedureRef strips the ${ and .Value} wrappers wherever they occur.
func procedureRef(value string) string {
	return strings.ReplaceAll(strings.ReplaceAll(value, "${", ""), ".Value}", "")
}
