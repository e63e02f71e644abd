// Package eval provides the expression evaluation environment for the
// pipeline DSL. Expressions are Starlark; column values and caller
// bindings appear as globals, and the Q builtin resolves names that are
// not valid identifiers.
package eval

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapframe/pkg/frame"
	"go.starlark.net/starlark"
)

// ErrNameNotFound is returned by the Q builtin when no binding with the
// requested name exists in the environment.
var ErrNameNotFound = errors.New("name not found")

// Environment holds the bindings visible to evaluated expressions.
//
// Every binding is reachable through Q("name"). Bindings whose name is a
// valid identifier are additionally exposed as globals, so an expression
// can say either `price * 2` or `Q("price") * 2`; a column named "class"
// or "unit price" is only reachable through Q.
type Environment struct {
	namespace map[string]any
	groupSize int // -1 outside a grouped operation

	globals starlark.StringDict
	logger  *slog.Logger
}

// Option configures an Environment.
type Option func(*Environment)

// WithValues binds the given name/value pairs.
func WithValues(values map[string]any) Option {
	return func(e *Environment) {
		for k, v := range values {
			e.namespace[k] = v
		}
	}
}

// WithFrame binds every column of the frame by name, each as a list of
// its values.
func WithFrame(df *frame.DataFrame) Option {
	return func(e *Environment) {
		for _, name := range df.Names() {
			col, ok := df.Column(name)
			if !ok {
				continue
			}
			e.namespace[name] = col.Values
		}
	}
}

// WithGroupSize sets the row count of the current group, making the n()
// builtin usable inside summarize-style expressions.
func WithGroupSize(n int) Option {
	return func(e *Environment) {
		e.groupSize = n
	}
}

// WithLogger sets a logger for debug traces of expression evaluation.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Environment) {
		e.logger = logger
	}
}

// NewEnvironment creates an environment from the given options. Binding
// values must be convertible to Starlark.
func NewEnvironment(opts ...Option) (*Environment, error) {
	e := &Environment{
		namespace: make(map[string]any),
		groupSize: -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.buildGlobals(); err != nil {
		return nil, err
	}
	return e, nil
}

// Empty returns an environment with no bindings. Useful for tests and
// for evaluating expressions that only use literals and builtins.
func Empty() *Environment {
	e, err := NewEnvironment()
	if err != nil {
		// No bindings to convert, so construction cannot fail.
		panic(err)
	}
	return e
}

// buildGlobals converts identifier-named bindings and installs the
// builtins.
func (e *Environment) buildGlobals() error {
	globals := make(starlark.StringDict, len(e.namespace)+2)
	for name, value := range e.namespace {
		if !isIdentifier(name) {
			continue
		}
		sv, err := ToStarlark(value)
		if err != nil {
			return fmt.Errorf("binding %q: %w", name, err)
		}
		globals[name] = sv
	}
	globals["Q"] = e.quoteBuiltin()
	globals["n"] = e.groupSizeBuiltin()
	e.globals = globals
	return nil
}

// Globals returns the globals dictionary used for evaluation.
func (e *Environment) Globals() starlark.StringDict {
	return e.globals
}

// Lookup returns the raw Go value bound to name.
func (e *Environment) Lookup(name string) (any, error) {
	v, ok := e.namespace[name]
	if !ok {
		return nil, fmt.Errorf("%w: no data named %q", ErrNameNotFound, name)
	}
	return v, nil
}

// EvalExpr evaluates a single expression and returns the result.
// The name identifies the expression in error messages.
func (e *Environment) EvalExpr(expr, name string) (starlark.Value, error) {
	thread := e.newThread(name)

	result, err := starlark.Eval(thread, name, expr, e.globals) //nolint:staticcheck // SA1019: will migrate to EvalOptions later
	if err != nil {
		return nil, &EvalError{
			Name:    name,
			Expr:    expr,
			Message: err.Error(),
		}
	}

	if e.logger != nil {
		e.logger.Debug("evaluated expression", "name", name, "expr", expr)
	}
	return result, nil
}

// EvalString evaluates an expression and returns the string result.
func (e *Environment) EvalString(expr, name string) (string, error) {
	result, err := e.EvalExpr(expr, name)
	if err != nil {
		return "", err
	}

	switch v := result.(type) {
	case starlark.String:
		return string(v), nil
	case starlark.NoneType:
		return "", nil
	default:
		return result.String(), nil
	}
}

// newThread creates a Starlark thread for one evaluation.
func (e *Environment) newThread(name string) *starlark.Thread {
	return &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			if e.logger != nil {
				e.logger.Debug("print from expression", "name", name, "msg", msg)
			}
		},
	}
}

// EvalError represents an error during expression evaluation.
type EvalError struct {
	Name    string
	Expr    string
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: error evaluating %q: %s", e.Name, e.Expr, e.Message)
}

// isIdentifier reports whether name can be referenced directly in an
// expression. Anything else stays reachable through Q only.
func isIdentifier(name string) bool {
	if name == "" || reserved[name] {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}

// reserved holds Starlark keywords plus the builtin names the
// environment installs itself.
var reserved = map[string]bool{
	"and": true, "break": true, "continue": true, "def": true,
	"elif": true, "else": true, "for": true, "if": true, "in": true,
	"lambda": true, "load": true, "not": true, "or": true, "pass": true,
	"return": true, "while": true,
	"Q": true, "n": true,
}
