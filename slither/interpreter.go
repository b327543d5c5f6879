package slither

import (
	"io"
	"os"
	"strings"
)

// Config configures an Interpreter. The zero value is valid: Output
// defaults to os.Stdout and RecursionLimit defaults to
// defaultRecursionLimit.
type Config struct {
	Output         io.Writer
	RecursionLimit int
}

// Interpreter runs slither programs against a fixed Config. It holds no
// per-run state: Run and Check may be called repeatedly and
// concurrently, each against its own freshly constructed scope.
type Interpreter struct {
	config Config
}

// NewInterpreter builds an Interpreter, applying Config defaults.
func NewInterpreter(cfg Config) *Interpreter {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = defaultRecursionLimit
	}
	return &Interpreter{config: cfg}
}

// Check lexes and parses source without evaluating it, returning the
// first lex or parse error encountered, if any.
func (in *Interpreter) Check(source string) error {
	_, err := in.compile(source)
	return err
}

// Run lexes, parses, and evaluates source against a fresh global scope.
// print output is written to the Interpreter's configured Output. A
// non-nil error is always a *LexError or *RuntimeError.
func (in *Interpreter) Run(source string) error {
	program, err := in.compile(source)
	if err != nil {
		return err
	}
	ctx := newContext(in.config.Output, source, in.config.RecursionLimit)
	scope := NewScope()
	_, err = evalStatement(program, scope, ctx)
	return asRuntimeError(ctx, err)
}

func (in *Interpreter) compile(source string) (Statement, error) {
	lexer, err := NewLexer(strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	p := newParser(lexer, source)
	return p.parseProgram()
}

// EvalStatement compiles source as a single standalone statement, not a
// whole Eof-terminated program, and evaluates it against scope, writing
// any print output to the Interpreter's configured Output.
// Unlike Run, which always starts from a fresh global scope and
// discards its bindings once the program completes, EvalStatement lets
// a caller reuse the same scope across repeated calls. This is what
// cmd/slither's REPL is built on: each line the user types is one
// statement evaluated against the same persistent Scope, so a later
// line can read a name an earlier one bound.
func (in *Interpreter) EvalStatement(source string, scope *Scope) (Value, error) {
	stmt, err := in.compileStatement(source)
	if err != nil {
		return Value{}, err
	}
	ctx := newContext(in.config.Output, source, in.config.RecursionLimit)
	v, err := evalStatement(stmt, scope, ctx)
	if err != nil {
		return Value{}, asRuntimeError(ctx, err)
	}
	return v, nil
}

// Display renders v the same way Print and str(...) do inside a running
// program, including recursing through an instance's __str__. Exported
// for interactive front ends (cmd/slither's REPL) that need to show the
// result of a statement the same way the language itself would.
func (in *Interpreter) Display(v Value) (string, error) {
	ctx := newContext(in.config.Output, "", in.config.RecursionLimit)
	return stringifyValue(v, ctx, Position{})
}

func (in *Interpreter) compileStatement(source string) (Statement, error) {
	lexer, err := NewLexer(strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	p := newParser(lexer, source)
	return p.parseStatement()
}
