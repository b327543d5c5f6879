package slither

import "testing"

func TestIsTrueIsTotal(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"none", NewNone(), false},
		{"zero", NewNumber(0), false},
		{"nonzero", NewNumber(-3), true},
		{"empty string", NewString(""), false},
		{"nonempty string", NewString("x"), true},
		{"false", NewBool(false), false},
		{"true", NewBool(true), true},
		{"class", NewClassValue(&ClassDef{Name: "C"}), false},
		{"instance", NewInstanceValue(NewInstanceOf(&ClassDef{Name: "C"})), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTrue(tc.v); got != tc.want {
				t.Fatalf("IsTrue(%v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestMethodResolutionPrefersOverride(t *testing.T) {
	parentBody := &MethodBodyStmt{Body: &ReturnStmt{Value: &StringConst{Value: "parent"}}}
	childBody := &MethodBodyStmt{Body: &ReturnStmt{Value: &StringConst{Value: "child"}}}
	parent := &ClassDef{Name: "P", Methods: []*Method{{Name: "m", Body: parentBody}}}
	child := &ClassDef{Name: "C", Parent: parent, Methods: []*Method{{Name: "m", Body: childBody}}}

	m := child.GetMethod("m")
	if m == nil || m.Body != childBody {
		t.Fatalf("expected child's override to win, got %#v", m)
	}
}

func TestRelationalOperatorsDerivedFromLessAndEqual(t *testing.T) {
	ctx := newContext(nil, "", 0)
	pos := Position{}
	pairs := [][2]int32{{1, 2}, {2, 1}, {3, 3}}
	for _, pair := range pairs {
		a, b := NewNumber(pair[0]), NewNumber(pair[1])
		lt, err := Less(a, b, ctx, pos)
		if err != nil {
			t.Fatalf("Less: %v", err)
		}
		eq, err := Equal(a, b, ctx, pos)
		if err != nil {
			t.Fatalf("Equal: %v", err)
		}
		gt, _ := Greater(a, b, ctx, pos)
		if gt != (!lt && !eq) {
			t.Fatalf("Greater invariant broken for %v", pair)
		}
		le, _ := LessOrEqual(a, b, ctx, pos)
		if le != !gt {
			t.Fatalf("LessOrEqual invariant broken for %v", pair)
		}
		ge, _ := GreaterOrEqual(a, b, ctx, pos)
		if ge != !lt {
			t.Fatalf("GreaterOrEqual invariant broken for %v", pair)
		}
		ne, _ := NotEqual(a, b, ctx, pos)
		if ne != !eq {
			t.Fatalf("NotEqual invariant broken for %v", pair)
		}
	}
}

func TestEqualityIncompatibleKindsIsError(t *testing.T) {
	ctx := newContext(nil, "", 0)
	if _, err := Equal(NewNumber(1), NewString("1"), ctx, Position{}); err == nil {
		t.Fatalf("expected an error comparing a Number and a String")
	}
}
