package slither

// NumericConst yields a Number literal.
type NumericConst struct {
	position Position
	Value    int32
}

func (e *NumericConst) Pos() Position { return e.position }
func (e *NumericConst) exprNode()     {}

// StringConst yields a String literal.
type StringConst struct {
	position Position
	Value    string
}

func (e *StringConst) Pos() Position { return e.position }
func (e *StringConst) exprNode()     {}

// BoolConst yields a Bool literal.
type BoolConst struct {
	position Position
	Value    bool
}

func (e *BoolConst) Pos() Position { return e.position }
func (e *BoolConst) exprNode()     {}

// NoneConst yields None.
type NoneConst struct {
	position Position
}

func (e *NoneConst) Pos() Position { return e.position }
func (e *NoneConst) exprNode()     {}

// VariableValue resolves a dotted identifier path: the head is looked up
// in scope, and each remaining segment requires the current value to be
// an Instance whose field scope is consulted for the next segment.
type VariableValue struct {
	position Position
	Path     []string
}

func (e *VariableValue) Pos() Position { return e.position }
func (e *VariableValue) exprNode()     {}

// Assignment binds Name in the current scope to the value of Value,
// creating or overwriting the binding, and yields that value.
type Assignment struct {
	position Position
	Name     string
	Value    Expression
}

func (e *Assignment) Pos() Position { return e.position }
func (e *Assignment) exprNode()     {}

// FieldAssignment resolves Target to an Instance, evaluates Value, and
// stores it under Field in the instance's field scope.
type FieldAssignment struct {
	position Position
	Target   *VariableValue
	Field    string
	Value    Expression
}

func (e *FieldAssignment) Pos() Position { return e.position }
func (e *FieldAssignment) exprNode()     {}

// MethodCallExpr evaluates Receiver to an Instance, evaluates each
// argument left to right, and invokes Method on the receiver.
type MethodCallExpr struct {
	position Position
	Receiver Expression
	Method   string
	Args     []Expression
}

func (e *MethodCallExpr) Pos() Position { return e.position }
func (e *MethodCallExpr) exprNode()     {}

// NewInstanceExpr evaluates Class to a Class value, builds a fresh
// Instance of it, and runs __init__ with Args if the arity matches.
type NewInstanceExpr struct {
	position Position
	Class    Expression
	Args     []Expression
}

func (e *NewInstanceExpr) Pos() Position { return e.position }
func (e *NewInstanceExpr) exprNode()     {}

// StringifyExpr formats X using the same rules as PrintStmt for a single
// value, but without a trailing newline, and yields the result as a
// String.
type StringifyExpr struct {
	position Position
	X        Expression
}

func (e *StringifyExpr) Pos() Position { return e.position }
func (e *StringifyExpr) exprNode()     {}

// BinaryExpr is Add/Sub/Mult/Div over Lhs and Rhs.
type BinaryExpr struct {
	position Position
	Op       BinaryOp
	Lhs      Expression
	Rhs      Expression
}

func (e *BinaryExpr) Pos() Position { return e.position }
func (e *BinaryExpr) exprNode()     {}

// LogicalExpr is Or/And over Lhs and Rhs. Both operands are always
// evaluated; neither operator short-circuits.
type LogicalExpr struct {
	position Position
	Op       LogicalOp
	Lhs      Expression
	Rhs      Expression
}

func (e *LogicalExpr) Pos() Position { return e.position }
func (e *LogicalExpr) exprNode()     {}

// NotExpr negates the truthiness of X.
type NotExpr struct {
	position Position
	X        Expression
}

func (e *NotExpr) Pos() Position { return e.position }
func (e *NotExpr) exprNode()     {}

// ComparisonExpr is one of the six relational operators over Lhs and
// Rhs, yielding a Bool.
type ComparisonExpr struct {
	position Position
	Op       CompareOp
	Lhs      Expression
	Rhs      Expression
}

func (e *ComparisonExpr) Pos() Position { return e.position }
func (e *ComparisonExpr) exprNode()     {}
