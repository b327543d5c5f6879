package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateHelpCommandTogglesHelp(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
}

func TestEvaluateAssignmentStoresVariable(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("score = 42\n")
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}

	v, ok := m.scope.Get("score")
	if !ok {
		t.Fatalf("expected score to be stored in the session scope")
	}
	n, _ := v.AsNumber()
	if n != 42 {
		t.Fatalf("unexpected score value: %d", n)
	}
	if output != "42" {
		t.Fatalf("unexpected rendered result: %q", output)
	}
}

func TestEvaluatePrintCapturesOutput(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("print \"hi\"\n")
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	if output != "hi" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestHandleLineAccumulatesBlockUntilBlankLine(t *testing.T) {
	m := newREPLModel()

	m = m.handleLine("if True:")
	if !m.inBlock {
		t.Fatalf("expected a trailing ':' to open a block")
	}

	m = m.handleLine("  print \"inside\"")
	if len(m.history) != 0 {
		t.Fatalf("block body should not evaluate until the block closes")
	}

	m = m.handleLine("")
	if m.inBlock {
		t.Fatalf("blank line should close the block")
	}
	if len(m.history) != 1 {
		t.Fatalf("expected exactly one evaluated history entry, got %d", len(m.history))
	}
	if m.history[0].isErr {
		t.Fatalf("unexpected error evaluating block: %s", m.history[0].output)
	}
	if m.history[0].output != "inside" {
		t.Fatalf("unexpected block output: %q", m.history[0].output)
	}
}

func TestSessionScopePersistsAcrossLines(t *testing.T) {
	m := newREPLModel()

	m = m.handleLine("x = 10")
	m = m.handleLine("print x + 5")

	if len(m.history) != 2 {
		t.Fatalf("expected two history entries, got %d", len(m.history))
	}
	if m.history[1].output != "15" {
		t.Fatalf("unexpected output: %q", m.history[1].output)
	}
}
