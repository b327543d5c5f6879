// Package slither implements the front-end and tree-walking evaluator for
// a small indentation-structured, dynamically-typed scripting language: a
// compact, single-inheritance, object-oriented subset of Python.
//
// A program is read as a byte stream, lexed into a token sequence with
// synthetic INDENT/DEDENT/NEWLINE markers (Lexer), parsed into an AST of
// statements by the package's internal parser (Interpreter.Check stops
// here), and evaluated against a global Scope with `print` output written
// to a caller-supplied io.Writer (Interpreter.Run). Supported
// constructs: integer/string/bool/None literals, classes with
// single inheritance and dunder special methods (__init__, __str__,
// __eq__, __lt__, __add__), attribute access and assignment, arithmetic
// and comparison operators, `and`/`or`/`not`, `if`/`else`, and `return`
// with non-local unwinding out of nested blocks.
//
// There is no floating point, no arbitrary-precision integers, no
// loops, no exceptions visible to the running program, and no modules.
package slither
