package resolve

import (
	"strconv"

	"github.com/sergz72/cnf-runner/cmd/cnfrunner/tree"
)

// lookupMapping resolves a [hashName, sectionKeyParam, valueKey] definition:
//
//	Mappings.<hashName>.<params[sectionKeyParam]>.<valueKey>
//
// The section is selected by the value of a runtime parameter, not by the
// literal second element. Each of the four lookups fails with its own message.
func (e *Engine) lookupMapping(def *tree.Seq, path string) (string, error) {
	if def.Len() != 3 {
		return "", fail("mapping", path, "variable sequence length should be 3, got %d", def.Len())
	}
	hashName, ok := tree.AsString(def.Items[0])
	if !ok {
		return "", fail("mapping", path+"[0]", "variable hash name should be a string, got %s", def.Items[0].Kind())
	}
	sectionKey, ok := tree.AsString(def.Items[1])
	if !ok {
		return "", fail("mapping", path+"[1]", "variable section name should be a string, got %s", def.Items[1].Kind())
	}
	valueKey, ok := tree.AsString(def.Items[2])
	if !ok {
		return "", fail("mapping", path+"[2]", "variable value key should be a string, got %s", def.Items[2].Kind())
	}

	mappings, err := e.section("Mappings", "mapping")
	if err != nil {
		return "", err
	}

	// 1. hash
	hashNode, ok := mappings.Get(hashName)
	if !ok {
		return "", fail("mapping", path, "hash %s not found in Mappings", hashName)
	}
	hash, ok := tree.AsMap(hashNode)
	if !ok {
		return "", fail("mapping", path, "Mappings.%s should be a mapping, got %s", hashName, hashNode.Kind())
	}

	// 2. section name, taken from the parameters
	sectionName, ok := e.params[sectionKey]
	if !ok {
		return "", fail("mapping", path, "section parameter %s not found in parameters", sectionKey)
	}

	// 3. section
	sectionNode, ok := hash.Get(sectionName)
	if !ok {
		return "", fail("mapping", path, "section %s not found in Mappings.%s", sectionName, hashName)
	}
	section, ok := tree.AsMap(sectionNode)
	if !ok {
		return "", fail("mapping", path, "Mappings.%s.%s should be a mapping, got %s", hashName, sectionName, sectionNode.Kind())
	}

	// 4. value
	valueNode, ok := section.Get(valueKey)
	if !ok {
		return "", fail("mapping", path, "key %s not found in Mappings.%s.%s", valueKey, hashName, sectionName)
	}

	v, ok := scalarText(valueNode)
	if !ok {
		return "", fail("mapping", path, "Mappings.%s.%s.%s should be a string, boolean or integer, got %s",
			hashName, sectionName, valueKey, valueNode.Kind())
	}
	e.logger.Debug("mapping resolved", "hash", hashName, "section", sectionName, "key", valueKey)
	return v, nil
}

// scalarText renders the scalar kinds a mapping value may hold.
func scalarText(n tree.Node) (string, bool) {
	switch v := n.(type) {
	case *tree.String:
		return v.Value, true
	case *tree.Bool:
		return strconv.FormatBool(v.Value), true
	case *tree.Int:
		return strconv.FormatInt(v.Value, 10), true
	default:
		return "", false
	}
}
