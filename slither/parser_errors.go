package slither

import "fmt"

// newParseError builds a *LexError for a syntax failure. Parser errors
// share LexError's shape deliberately: both are compile-time failures
// reported before any evaluation begins, and a caller of Run/Check never
// needs to distinguish "malformed tokens" from "malformed grammar".
func newParseError(pos Position, format string, args ...any) error {
	return &LexError{Message: fmt.Sprintf(format, args...), Pos: pos}
}
