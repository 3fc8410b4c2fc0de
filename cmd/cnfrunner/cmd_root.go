package main

import (
	"github.com/spf13/cobra"
)

// rootOptions holds the flags of the root command.
type rootOptions struct {
	dryRun    bool
	sets      []string
	logLevel  string
	logFormat string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   appName + " CONFIG_FILE ENV_FILE EXEC_FILE [-- ARGS...]",
		Short: "Resolve environment variables from a template document and run a program with them",
		Long: appName + " reads parameters from ENV_FILE, resolves the variable list named by\n" +
			"the `source` parameter against CONFIG_FILE, prints every resolved variable,\n" +
			"and runs EXEC_FILE with those variables added to its environment.\n\n" +
			"Parameters with a special meaning:\n" +
			"  source          dotted path to the variable list, e.g. Resources.App.Properties.Vars\n" +
			"  replace         literal rewrites for input values, e.g. a->b->c->d\n" +
			"  secretsEnvFile  extra key=value file merged in last, values not printed",
		Args:          cobra.MinimumNArgs(3),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false,
		"resolve and print the variables without running anything")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil,
		"override a parameter from ENV_FILE (key=value, repeatable)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"diagnostics level: debug, info, warn, error (default: $"+envLogLevel+" or warn)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "",
		"diagnostics format: text or json (default: $"+envLogFormat+" or text)")

	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	configFile, envFile, execFile := args[0], args[1], args[2]
	extraArgs := args[3:]

	logger, err := newLogger(opts.logLevel, opts.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	out := newStatusPrinter(cmd.OutOrStdout())

	s, ok, err := load(configFile, envFile, opts.sets, logger)
	if err != nil {
		return err
	}
	if !ok {
		out.Notice("Source parameter is empty in the env file")
		return nil
	}

	vars, err := s.engine.Resolve(s.source)
	if err != nil {
		return err
	}
	for _, b := range vars.Bindings() {
		out.Var(b.Name, b.Value)
	}

	secrets, err := mergeSecrets(vars, s.params)
	if err != nil {
		return err
	}
	for _, name := range secrets {
		out.Secret(name)
	}

	if opts.dryRun {
		dryRun(out, execFile, extraArgs, vars, secrets)
		return nil
	}

	logger.Info("starting process", "exec", execFile, "args", len(extraArgs), "vars", vars.Len())
	state, err := execute(cmd.Context(), execFile, extraArgs, vars.Environ(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	out.Finished(execFile, state)
	return nil
}
