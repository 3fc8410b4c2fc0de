package treeyaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sergz72/cnf-runner/cmd/cnfrunner/tree"

	"gopkg.in/yaml.v3"
)

// Parse decodes the first YAML document in `in` and converts it into a
// generic tree. Any further documents in the stream are ignored.
func Parse(in []byte) (tree.Node, error) {
	var docNode yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(in))
	if err := dec.Decode(&docNode); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("phase=parse path=<doc>: empty YAML")
		}
		return nil, fmt.Errorf("phase=parse path=<doc>: %w", err)
	}
	if len(docNode.Content) == 0 {
		return nil, fmt.Errorf("phase=parse path=<doc>: empty YAML")
	}
	return convert(docNode.Content[0], "<doc>")
}

// ---- Convert: yaml.Node → tree.Node ---------------------------------------

// convert maps one yaml.Node onto the tree variants.
// Aliases are followed so the tree never contains references.
func convert(n *yaml.Node, path string) (tree.Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return &tree.Null{}, nil
		}
		return convert(n.Content[0], path)

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("phase=parse path=%s line=%d: dangling alias", path, n.Line)
		}
		return convert(n.Alias, path)

	case yaml.MappingNode:
		return convertMapping(n, path)

	case yaml.SequenceNode:
		seq := &tree.Seq{Items: make([]tree.Node, 0, len(n.Content))}
		for i, item := range n.Content {
			v, err := convert(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			seq.Items = append(seq.Items, v)
		}
		return seq, nil

	case yaml.ScalarNode:
		return convertScalar(n, path)

	default:
		return nil, fmt.Errorf("phase=parse path=%s line=%d: unexpected YAML node kind: %d", path, n.Line, n.Kind)
	}
}

// convertMapping converts a mapping node, preserving key order.
// Keys must be scalars; the key text is used as-is, so `1:` is stored as "1".
func convertMapping(n *yaml.Node, path string) (tree.Node, error) {
	m := tree.NewMap()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
			keyNode = keyNode.Alias
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("phase=parse path=%s line=%d: mapping keys must be scalars", path, keyNode.Line)
		}
		key := keyNode.Value
		v, err := convert(n.Content[i+1], joinPath(path, key))
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	return m, nil
}

// convertScalar resolves a scalar by its YAML core tag.
//
// Conversion rules:
//   - !!str, !!binary, !!timestamp and custom tags → String (raw text)
//   - !!int   → Int; values outside int64 become Float, or String when
//     they do not parse as a float either
//   - !!bool  → Bool
//   - !!float → Float
//   - !!null  → Null
func convertScalar(n *yaml.Node, path string) (tree.Node, error) {
	switch n.ShortTag() {
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Left for the lookup that reaches it to reject.
			if f, ferr := strconv.ParseFloat(n.Value, 64); ferr == nil {
				return &tree.Float{Value: f}, nil
			}
			return &tree.String{Value: n.Value}, nil
		}
		return &tree.Int{Value: i}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("phase=parse path=%s line=%d: boolean %q: %w", path, n.Line, n.Value, err)
		}
		return &tree.Bool{Value: b}, nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			// .inf, .nan and friends are only understood by the YAML decoder.
			if derr := n.Decode(&f); derr != nil {
				return nil, fmt.Errorf("phase=parse path=%s line=%d: float %q: %w", path, n.Line, n.Value, derr)
			}
		}
		return &tree.Float{Value: f}, nil
	case "!!null":
		return &tree.Null{}, nil
	default:
		return &tree.String{Value: n.Value}, nil
	}
}

func joinPath(path, key string) string {
	if path == "<doc>" {
		return key
	}
	return path + "." + key
}
