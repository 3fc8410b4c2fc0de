package resolve

import (
	"io"
	"log/slog"

	"github.com/sergz72/cnf-runner/cmd/cnfrunner/tree"
)

// Engine resolves declarations against one document and one parameter map.
// Neither is modified during resolution.
type Engine struct {
	doc    tree.Node
	params Params
	rules  ReplaceRules
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithReplaceRules sets the rules applied to every resolved input value.
func WithReplaceRules(rules ReplaceRules) Option {
	return func(e *Engine) { e.rules = rules }
}

// WithLogger routes debug tracing of the resolution to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine returns an engine resolving declarations of doc against params.
func NewEngine(doc tree.Node, params Params, opts ...Option) *Engine {
	e := &Engine{
		doc:    doc,
		params: params,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Declarations locates the source list at the dotted path and returns its
// declarations in order.
func (e *Engine) Declarations(source string) ([]Declaration, error) {
	node, err := Locate(e.doc, source)
	if err != nil {
		return nil, err
	}
	return BuildVarList(node)
}

// Overridden reports whether the declaration is satisfied directly by a
// runtime parameter of the same name.
func (e *Engine) Overridden(d Declaration) (string, bool) {
	v, ok := e.params[d.Name]
	return v, ok
}

// Resolve computes every declaration found at source, in order.
// The first failure aborts the run and no partial result is returned.
func (e *Engine) Resolve(source string) (*VarSet, error) {
	decls, err := e.Declarations(source)
	if err != nil {
		return nil, err
	}

	out := NewVarSet()
	for _, d := range decls {
		v, err := e.ResolveDeclaration(d)
		if err != nil {
			return nil, err
		}
		out.Set(d.Name, v)
	}
	return out, nil
}

// ResolveDeclaration computes the value of a single declaration.
//
// A parameter named like the output variable wins outright and the
// procedure is never looked up. Otherwise the procedure is resolved, the
// replace rules are applied to its input values, and the template is
// substituted.
func (e *Engine) ResolveDeclaration(d Declaration) (string, error) {
	if v, ok := e.Overridden(d); ok {
		e.logger.Debug("declaration overridden by parameter", "name", d.Name)
		return v, nil
	}

	p, err := e.procedure(d.Procedure)
	if err != nil {
		return "", err
	}

	inputs := make([]Binding, len(p.Inputs))
	for i, b := range p.Inputs {
		inputs[i] = Binding{Name: b.Name, Value: e.rules.Apply(b.Value)}
	}

	v := Substitute(p.Template, inputs, e.params)
	e.logger.Debug("declaration resolved", "name", d.Name, "procedure", d.Procedure, "inputs", len(inputs))
	return v, nil
}

// section returns a top-level mapping of the document, such as Resources.
func (e *Engine) section(name, phase string) (*tree.Map, error) {
	n, ok := tree.Field(e.doc, name)
	if !ok {
		return nil, fail(phase, name, "no %s found in the document", name)
	}
	m, ok := tree.AsMap(n)
	if !ok {
		return nil, fail(phase, name, "%s should be a mapping, got %s", name, n.Kind())
	}
	return m, nil
}
