package resolve

import "strings"

// resolveParam resolves a direct input definition such as "${HostParam}".
// Every "${" and "}" is removed, not only a leading/trailing pair.
func resolveParam(def string, params Params, path string) (string, error) {
	name := strings.ReplaceAll(strings.ReplaceAll(def, "${", ""), "}", "")
	v, ok := params[name]
	if !ok {
		return "", fail("param", path, "parameter %s not found", def)
	}
	return v, nil
}
