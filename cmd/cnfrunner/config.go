package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sergz72/cnf-runner/cmd/cnfrunner/resolve"
	"github.com/sergz72/cnf-runner/cmd/cnfrunner/tree"
	"github.com/sergz72/cnf-runner/cmd/cnfrunner/treeyaml"

	"github.com/hashicorp/go-envparse"
)

// appName is the single source of truth for the application name.
// All derived identifiers (env vars, usage text, error messages) are computed from it.
const appName = "cnfrunner"

// Derived env var names, computed once at init from appName.
var (
	envLogLevel  = strings.ToUpper(appName) + "_LOG_LEVEL"
	envLogFormat = strings.ToUpper(appName) + "_LOG_FORMAT"
)

// Parameter names with a meaning of their own.
const (
	paramSource  = "source"
	paramReplace = "replace"
	paramSecrets = "secretsEnvFile"
)

// resolveLogLevel returns the effective log level.
// Priority: --log-level > $<APPNAME>_LOG_LEVEL > "warn"
func resolveLogLevel(flagVal string) (slog.Level, error) {
	s := flagVal
	if s == "" {
		s = os.Getenv(envLogLevel)
	}
	switch strings.ToLower(s) {
	case "", "warn":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
}

// newLogger builds the diagnostics logger on w.
// Priority for the format: --log-format > $<APPNAME>_LOG_FORMAT > "text"
func newLogger(levelFlag, formatFlag string, w io.Writer) (*slog.Logger, error) {
	level, err := resolveLogLevel(levelFlag)
	if err != nil {
		return nil, err
	}
	format := formatFlag
	if format == "" {
		format = os.Getenv(envLogFormat)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", format)
	}
}

// loadParameters reads a flat key=value file into a parameter map.
// Values are taken literally: "$X" and "${X}" are never expanded, so
// placeholders survive until template substitution.
func loadParameters(path string) (resolve.Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("env file %s: %w", path, err)
	}
	defer f.Close()

	m, err := envparse.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("env file %s: %w", path, err)
	}
	return resolve.Params(m), nil
}

// applyOverrides merges --set key=value pairs into params; later pairs win.
func applyOverrides(params resolve.Params, sets []string) error {
	for _, kv := range sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return fmt.Errorf("invalid --set %q: expected key=value", kv)
		}
		params[k] = v
	}
	return nil
}

// loadDocument reads and parses the template document.
func loadDocument(path string) (tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	doc, err := treeyaml.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return doc, nil
}

// session is everything a command needs once the input files are loaded.
type session struct {
	params resolve.Params
	source string
	engine *resolve.Engine
}

// load reads both input files and prepares the engine.
// An empty source is reported with ok == false and no error; the caller
// prints a notice and stops.
func load(configFile, envFile string, sets []string, logger *slog.Logger) (s session, ok bool, err error) {
	params, err := loadParameters(envFile)
	if err != nil {
		return session{}, false, err
	}
	if err := applyOverrides(params, sets); err != nil {
		return session{}, false, err
	}

	source, present := params[paramSource]
	if !present {
		return session{}, false, fmt.Errorf("%s parameter is absent in the env file %s", paramSource, envFile)
	}
	if source == "" {
		return session{}, false, nil
	}

	rules, err := resolve.ParseReplaceRules(params[paramReplace])
	if err != nil {
		return session{}, false, err
	}

	doc, err := loadDocument(configFile)
	if err != nil {
		return session{}, false, err
	}
	logger.Debug("inputs loaded", "config", configFile, "env", envFile, "params", len(params), "rules", len(rules))

	engine := resolve.NewEngine(doc, params,
		resolve.WithReplaceRules(rules),
		resolve.WithLogger(logger),
	)
	return session{params: params, source: source, engine: engine}, true, nil
}

// mergeSecrets loads the optional secrets file named by the secretsEnvFile
// parameter and lays it over vars. Secrets win over resolved values of the
// same name. It returns the merged names, sorted.
func mergeSecrets(vars *resolve.VarSet, params resolve.Params) ([]string, error) {
	path, ok := params[paramSecrets]
	if !ok || path == "" {
		return nil, nil
	}
	secrets, err := loadParameters(path)
	if err != nil {
		return nil, fmt.Errorf("secrets %w", err)
	}
	names := sortedKeys(secrets)
	for _, k := range names {
		vars.Set(k, secrets[k])
	}
	return names, nil
}
