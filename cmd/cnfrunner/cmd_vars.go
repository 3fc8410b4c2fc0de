package main

import (
	"fmt"
	"io"

	"github.com/sergz72/cnf-runner/cmd/cnfrunner/resolve"

	"github.com/spf13/cobra"
)

func newVarsCommand() *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "vars CONFIG_FILE ENV_FILE",
		Short: "List the variables declared at the source path without resolving them",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			format, _ := cmd.Flags().GetString("log-format")
			logger, err := newLogger(level, format, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			s, ok, err := load(args[0], args[1], sets, logger)
			if err != nil {
				return err
			}
			if !ok {
				newStatusPrinter(cmd.OutOrStdout()).Notice("Source parameter is empty in the env file")
				return nil
			}

			decls, err := s.engine.Declarations(s.source)
			if err != nil {
				return err
			}
			printDeclarations(cmd.OutOrStdout(), collectEntries(s.engine, decls))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil,
		"override a parameter from ENV_FILE (key=value, repeatable)")
	return cmd
}

// varEntry describes where one declared variable gets its value from.
type varEntry struct {
	name   string
	origin string // "procedure <ref>" or "parameter"
}

// collectEntries classifies every declaration as a parameter override or a
// procedure call, in declaration order.
func collectEntries(e *resolve.Engine, decls []resolve.Declaration) []varEntry {
	out := make([]varEntry, 0, len(decls))
	for _, d := range decls {
		if _, ok := e.Overridden(d); ok {
			out = append(out, varEntry{name: d.Name, origin: "parameter"})
			continue
		}
		out = append(out, varEntry{name: d.Name, origin: "procedure " + d.Procedure})
	}
	return out
}

// printDeclarations prints all entries aligned on the variable name.
func printDeclarations(w io.Writer, entries []varEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no variables declared")
		return
	}

	maxLen := 0
	for _, e := range entries {
		if n := len(e.name); n > maxLen {
			maxLen = n
		}
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%-*s  [%s]\n", maxLen, e.name, e.origin)
	}
}
