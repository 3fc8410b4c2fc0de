package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergz72/cnf-runner/cmd/cnfrunner/resolve"
)

// dryRun prints the command that would be executed and the variables it
// would receive, without running anything.
func dryRun(p *statusPrinter, execFile string, args []string, vars *resolve.VarSet, secrets []string) {
	argv := append([]string{execFile}, args...)
	fmt.Fprintf(p.w, "[dry-run] %s\n", p.nameStyle.Render(execFile))
	fmt.Fprintf(p.w, "  command: %s\n", strings.Join(argv, " "))
	if vars.Len() == 0 {
		return
	}

	secret := make(map[string]bool, len(secrets))
	for _, s := range secrets {
		secret[s] = true
	}
	fmt.Fprintln(p.w, "  env:")
	for _, b := range vars.Bindings() {
		v := b.Value
		if secret[b.Name] {
			v = secretMask
		}
		fmt.Fprintf(p.w, "    %s=%s\n", b.Name, v)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
