package slither

// CompoundStmt evaluates its children in sequence. It yields None
// itself, but a Return raised by any child propagates through it
// unchanged (see MethodBodyStmt).
type CompoundStmt struct {
	position Position
	Stmts    []Statement
}

func (s *CompoundStmt) Pos() Position { return s.position }
func (s *CompoundStmt) stmtNode()     {}

// ExprStmt wraps an expression used as a statement: assignment, field
// assignment, method calls, and instantiation are all expressions that
// also commonly appear on a line by themselves.
type ExprStmt struct {
	position Position
	X        Expression
}

func (s *ExprStmt) Pos() Position { return s.position }
func (s *ExprStmt) stmtNode()     {}

// PrintStmt evaluates each argument left to right and writes them
// space-separated to the context's output, followed by a trailing
// newline.
type PrintStmt struct {
	position Position
	Args     []Expression
}

func (s *PrintStmt) Pos() Position { return s.position }
func (s *PrintStmt) stmtNode()     {}

// ReturnStmt evaluates Value (NoneConst if the source wrote a bare
// `return`) and raises the non-local return signal, unless the
// evaluated value is None, in which case execution continues past the
// return. A top-level return (outside any method body) is a runtime
// error, since there is no MethodBodyStmt to catch the signal.
type ReturnStmt struct {
	position Position
	Value    Expression
}

func (s *ReturnStmt) Pos() Position { return s.position }
func (s *ReturnStmt) stmtNode()     {}

// IfElseStmt evaluates Cond; if truthy it evaluates Then, otherwise Else
// if present. Else is nil when the source has no else clause.
type IfElseStmt struct {
	position Position
	Cond     Expression
	Then     Statement
	Else     Statement
}

func (s *IfElseStmt) Pos() Position { return s.position }
func (s *IfElseStmt) stmtNode()     {}

// ClassDefStmt binds Class.Name to a Class value in the current scope
// and yields that same value. ParentName is the identifier named in a
// `class B(A):` header, empty if the class has no parent; it is
// resolved against the runtime scope (not at parse time) the first time
// the statement is evaluated, since the parent must already be bound by
// then but cannot be resolved before the program runs.
type ClassDefStmt struct {
	position   Position
	Class      *ClassDef
	ParentName string
}

func (s *ClassDefStmt) Pos() Position { return s.position }
func (s *ClassDefStmt) stmtNode()     {}

// MethodBodyStmt wraps the compiled body of a def. It is the only node
// that catches the non-local return signal: evaluating Body either
// completes normally (MethodBodyStmt yields None) or is interrupted by a
// raised return (MethodBodyStmt yields the carried value).
type MethodBodyStmt struct {
	position Position
	Body     Statement
}

func (s *MethodBodyStmt) Pos() Position { return s.position }
func (s *MethodBodyStmt) stmtNode()     {}
