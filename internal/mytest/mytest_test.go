package mytest

import (
	"testing"

	"github.com/mythonlang/mython/internal/lexer"
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/parser"
)

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("LoadScenarios: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatal("no scenarios loaded")
	}
	seen := make(map[string]bool, len(scenarios))
	for _, sc := range scenarios {
		if sc.Name == "" || sc.Source == "" {
			t.Errorf("scenario %+v is missing a name or source", sc)
		}
		if seen[sc.Name] {
			t.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true
		if !sc.WantErr && sc.Want == "" && sc.Source != "" {
			t.Errorf("scenario %q expects neither output nor an error", sc.Name)
		}
	}
}

// TestSweepSurvivesFieldCycles runs a program whose field assignments
// close a cycle between two instances and checks that the end-of-run
// reachability sweep still terminates and counts each instance once.
func TestSweepSurvivesFieldCycles(t *testing.T) {
	src := `class Node:
  def __init__():
    self.next = None

a = Node()
b = Node()
a.next = b
b.next = a
print 'linked'
`
	out, reachable, err := EvalReachable(src)
	if err != nil {
		t.Fatalf("EvalReachable: %v", err)
	}
	if out != "linked\n" {
		t.Errorf("output %q, want %q", out, "linked\n")
	}
	if reachable != 2 {
		t.Errorf("reachable = %d, want 2", reachable)
	}
}

// TestErrorKinds checks that each failure category surfaces as its
// own concrete error type.
func TestErrorKinds(t *testing.T) {
	t.Run("Lexical", func(t *testing.T) {
		_, err := Eval("x = 'unterminated\n")
		if _, ok := err.(*lexer.Error); !ok {
			t.Errorf("error %v is %T, want *lexer.Error", err, err)
		}
	})
	t.Run("Parse", func(t *testing.T) {
		_, err := Eval("foo()\n")
		if _, ok := err.(*parser.Error); !ok {
			t.Errorf("error %v is %T, want *parser.Error", err, err)
		}
	})
	t.Run("Runtime", func(t *testing.T) {
		_, err := Eval("print 1/0\n")
		if _, ok := err.(*object.RuntimeError); !ok {
			t.Errorf("error %v is %T, want *object.RuntimeError", err, err)
		}
	})
}
