package slither

import (
	"strings"
	"testing"
)

// FuzzLexer checks that tokenizing never panics, and that whenever it
// succeeds, the Indent/Dedent balance invariant (testable property #1)
// holds.
func FuzzLexer(f *testing.F) {
	seeds := []string{
		"print \"hello\"\n",
		"class A:\n  def __init__(x):\n    self.x = x\n",
		"if True:\n  print 1\nelse:\n  print 2\n",
		" x = 1\n",
		"x = 1\n  y = 2\n",
		"\"unterminated",
		"\"\\q\"\n",
		"0123\n",
		"a !b\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		lex, err := NewLexer(strings.NewReader(src))
		if err != nil {
			return
		}
		indents, dedents := 0, 0
		for {
			tok := lex.Current()
			if tok.Type == tokenIndent {
				indents++
			}
			if tok.Type == tokenDedent {
				dedents++
			}
			if tok.Type == tokenEOF {
				break
			}
			lex.Advance()
		}
		if indents != dedents {
			t.Fatalf("unbalanced indent/dedent for input %q: %d indents, %d dedents", src, indents, dedents)
		}
	})
}
