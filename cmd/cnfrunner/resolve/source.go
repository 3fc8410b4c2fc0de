package resolve

import (
	"strconv"
	"strings"

	"github.com/sergz72/cnf-runner/cmd/cnfrunner/tree"
)

// Locate walks a dotted path such as "Resources.0.Vars" from doc and returns
// the node it points at.
//
// A segment that parses as a non-negative integer indexes a sequence; any
// other segment is a mapping key. Stepping onto an absent or null node fails.
func Locate(doc tree.Node, path string) (tree.Node, error) {
	cur := doc
	var walked []string

	for _, seg := range strings.Split(path, ".") {
		at := seg
		if len(walked) > 0 {
			at = strings.Join(walked, ".") + "." + seg
		}

		if idx, err := strconv.ParseUint(seg, 10, 0); err == nil {
			seq, ok := tree.AsSeq(cur)
			if !ok {
				return nil, fail("source", at, "expected sequence element for %s source parameter", seg)
			}
			item, ok := seq.At(int(idx))
			if !ok {
				return nil, fail("source", at, "index %s out of range for sequence of length %d", seg, seq.Len())
			}
			cur = item
		} else {
			// A key on a non-mapping is simply absent.
			m, _ := tree.AsMap(cur)
			cur, _ = m.Get(seg)
		}

		if tree.IsNull(cur) {
			return nil, fail("source", at, "%s source parameter not found", seg)
		}
		walked = append(walked, seg)
	}
	return cur, nil
}
