package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:embed cmd_example_template.yml
var exampleTemplateYAML []byte

//go:embed cmd_example_params.env
var exampleParamsEnv []byte

const exampleTemplateHeader = `# cnfrunner: reference template document
# Run:     cnfrunner <this-file> <params-file> <program>
# Preview: cnfrunner --dry-run <this-file> <params-file> <program>
# Params:  cnfrunner example --params

`

const exampleParamsHeader = `# cnfrunner: reference parameter file for "cnfrunner example"
`

func newExampleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a reference template document or parameter file",
		Long: "Print a template document that demonstrates every resolution feature.\n" +
			"Use --params for the matching parameter file. Use --output to write to a\n" +
			"file instead of stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, _ := cmd.Flags().GetBool("params")

			header, body := exampleTemplateHeader, exampleTemplateYAML
			if params {
				header, body = exampleParamsHeader, exampleParamsEnv
			}

			output, _ := cmd.Flags().GetString("output")
			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if _, err := fmt.Fprint(w, header); err != nil {
				return err
			}
			if _, err := w.Write(body); err != nil {
				return err
			}

			if output != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "written to %s\n", output)
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	cmd.Flags().Bool("params", false, "print the parameter file instead of the template document")
	return cmd
}
