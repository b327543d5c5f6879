package slither

import (
	"strings"
	"testing"
)

func parseSource(t *testing.T, src string) Statement {
	t.Helper()
	lex, err := NewLexer(strings.NewReader(src))
	if err != nil {
		t.Fatalf("NewLexer: %v", err)
	}
	p := newParser(lex, src)
	prog, err := p.parseProgram()
	if err != nil {
		t.Fatalf("parseProgram(%q): %v", src, err)
	}
	return prog
}

func TestParseAssignmentAndFieldAssignment(t *testing.T) {
	prog := parseSource(t, "x = 1\nself.y = 2\n")
	compound := prog.(*CompoundStmt)
	if len(compound.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(compound.Stmts))
	}
	assign, ok := compound.Stmts[0].(*ExprStmt).X.(*Assignment)
	if !ok || assign.Name != "x" {
		t.Fatalf("expected Assignment to x, got %#v", compound.Stmts[0])
	}
	fieldAssign, ok := compound.Stmts[1].(*ExprStmt).X.(*FieldAssignment)
	if !ok || fieldAssign.Field != "y" || fieldAssign.Target.Path[0] != "self" {
		t.Fatalf("expected FieldAssignment on self.y, got %#v", compound.Stmts[1])
	}
}

func TestParseNewInstanceVsMethodCall(t *testing.T) {
	prog := parseSource(t, "Counter(10)\nc.inc()\n")
	compound := prog.(*CompoundStmt)
	if _, ok := compound.Stmts[0].(*ExprStmt).X.(*NewInstanceExpr); !ok {
		t.Fatalf("expected bare Name(...) to parse as NewInstanceExpr, got %#v", compound.Stmts[0])
	}
	call, ok := compound.Stmts[1].(*ExprStmt).X.(*MethodCallExpr)
	if !ok || call.Method != "inc" {
		t.Fatalf("expected c.inc() to parse as a MethodCallExpr, got %#v", compound.Stmts[1])
	}
}

func TestParseClassWithParent(t *testing.T) {
	prog := parseSource(t, "class A:\n  def __init__():\n    return None\n\nclass B(A):\n  def __init__():\n    return None\n")
	compound := prog.(*CompoundStmt)
	classB := compound.Stmts[1].(*ClassDefStmt)
	if classB.Class.Name != "B" || classB.ParentName != "A" {
		t.Fatalf("expected class B(A), got %#v", classB)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	prog := parseSource(t, "print 1 + 2 * 3\n")
	compound := prog.(*CompoundStmt)
	printStmt := compound.Stmts[0].(*PrintStmt)
	bin := printStmt.Args[0].(*BinaryExpr)
	if bin.Op != OpAdd {
		t.Fatalf("expected top-level operator to be +, got %v", bin.Op)
	}
	rhs, ok := bin.Rhs.(*BinaryExpr)
	if !ok || rhs.Op != OpMult {
		t.Fatalf("expected right operand to be a multiplication, got %#v", bin.Rhs)
	}
}

func TestParseMissingColonIsError(t *testing.T) {
	lex, err := NewLexer(strings.NewReader("if True\n  print 1\n"))
	if err != nil {
		t.Fatalf("NewLexer: %v", err)
	}
	p := newParser(lex, "if True\n  print 1\n")
	if _, err := p.parseProgram(); err == nil {
		t.Fatalf("expected a parse error for a missing ':'")
	}
}

func TestParseUnaryMinusDesugarsToSubtraction(t *testing.T) {
	prog := parseSource(t, "print -5\n")
	compound := prog.(*CompoundStmt)
	printStmt := compound.Stmts[0].(*PrintStmt)
	bin, ok := printStmt.Args[0].(*BinaryExpr)
	if !ok || bin.Op != OpSub {
		t.Fatalf("expected unary minus to desugar to a Sub BinaryExpr, got %#v", printStmt.Args[0])
	}
	lhs, ok := bin.Lhs.(*NumericConst)
	if !ok || lhs.Value != 0 {
		t.Fatalf("expected left operand to be NumericConst(0), got %#v", bin.Lhs)
	}
}
