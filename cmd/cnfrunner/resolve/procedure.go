package resolve

import (
	"fmt"

	"github.com/sergz72/cnf-runner/cmd/cnfrunner/tree"
)

// procedure looks up Resources.<name> and resolves its input variables.
//
// The expected shape is:
//
//	Resources:
//	  <name>:
//	    Properties:
//	      Value:
//	        - "<template>"
//	        - <input>: "${Param}"               # direct parameter
//	          <input>: [Hash, SectionParam, Key] # mapping lookup
func (e *Engine) procedure(name string) (Procedure, error) {
	resources, err := e.section("Resources", "procedure")
	if err != nil {
		return Procedure{}, err
	}

	base := "Resources." + name
	node, ok := resources.Get(name)
	if !ok {
		return Procedure{}, fail("procedure", base, "procedure %s not found", name)
	}

	props, ok := tree.Field(node, "Properties")
	if !ok {
		return Procedure{}, fail("procedure", base+".Properties", "procedure %s properties not found", name)
	}
	if _, ok := tree.AsMap(props); !ok {
		return Procedure{}, fail("procedure", base+".Properties", "procedure %s properties should be a mapping, got %s", name, props.Kind())
	}

	path := base + ".Properties.Value"
	valueNode, ok := tree.Field(props, "Value")
	if !ok {
		return Procedure{}, fail("procedure", path, "procedure %s value not found", name)
	}
	value, ok := tree.AsSeq(valueNode)
	if !ok {
		return Procedure{}, fail("procedure", path, "procedure %s value should be a sequence, got %s", name, valueNode.Kind())
	}
	if value.Len() != 2 {
		return Procedure{}, fail("procedure", path, "procedure %s value should have 2 elements, got %d", name, value.Len())
	}

	text, ok := tree.AsString(value.Items[0])
	if !ok {
		return Procedure{}, fail("procedure", path+"[0]", "procedure %s value[0] should be a string, got %s", name, value.Items[0].Kind())
	}
	defs, ok := tree.AsMap(value.Items[1])
	if !ok {
		return Procedure{}, fail("procedure", path+"[1]", "procedure %s value[1] should be a mapping, got %s", name, value.Items[1].Kind())
	}

	p := Procedure{Name: name, Template: text, Inputs: make([]Binding, 0, defs.Len())}
	for _, input := range defs.Keys() {
		def, _ := defs.Get(input)
		inputPath := fmt.Sprintf("%s[1].%s", path, input)

		var v string
		switch d := def.(type) {
		case *tree.Seq:
			v, err = e.lookupMapping(d, inputPath)
		case *tree.String:
			v, err = resolveParam(d.Value, e.params, inputPath)
		default:
			err = fail("procedure", inputPath, "procedure %s parameter %s should be a sequence or string, got %s", name, input, def.Kind())
		}
		if err != nil {
			return Procedure{}, err
		}
		p.Inputs = append(p.Inputs, Binding{Name: input, Value: v})
	}

	e.logger.Debug("procedure resolved", "procedure", name, "inputs", len(p.Inputs))
	return p, nil
}
