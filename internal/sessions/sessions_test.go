package sessions

import (
	"testing"

	"github.com/nextlevelbuilder/westmarch/pkg/protocol"
)

func TestEnsure_AllocatesAndReuses(t *testing.T) {
	m := NewManager()

	id := m.Ensure("")
	if id == "" {
		t.Fatal("Ensure did not allocate a session id")
	}
	if got := m.Ensure(id); got != id {
		t.Errorf("Ensure(%q) = %q, want same id", id, got)
	}
	if got := m.Ensure("parlour"); got != "parlour" {
		t.Errorf("Ensure(parlour) = %q", got)
	}
}

func TestAppendHistoryOrder(t *testing.T) {
	m := NewManager()
	m.Append("s1",
		protocol.TranscriptRecord{Role: "user", Speaker: "user", Content: "hello"},
		protocol.TranscriptRecord{Role: "assistant", Speaker: "Jeeves", Content: "good evening"},
	)
	m.Append("s1", protocol.TranscriptRecord{Role: "user", Speaker: "user", Content: "tea, please"})

	history := m.History("s1")
	if len(history) != 3 {
		t.Fatalf("history = %d records, want 3", len(history))
	}
	if history[0].Content != "hello" || history[2].Content != "tea, please" {
		t.Errorf("history out of order: %+v", history)
	}

	// History hands out copies.
	history[0].Content = "tampered"
	if m.History("s1")[0].Content == "tampered" {
		t.Error("History returned shared backing storage")
	}
}

func TestClear_KeepsSessionAlive(t *testing.T) {
	m := NewManager()
	m.Append("s1", protocol.TranscriptRecord{Role: "user", Speaker: "user", Content: "hello"})
	m.Clear("s1")

	if got := m.History("s1"); got != nil {
		t.Errorf("History after Clear = %+v, want nil", got)
	}
	if ids := m.List(); len(ids) != 1 || ids[0] != "s1" {
		t.Errorf("List after Clear = %v, want [s1]", ids)
	}
}

func TestDeleteAndList(t *testing.T) {
	m := NewManager()
	m.Ensure("b")
	m.Ensure("a")
	m.Delete("b")

	if ids := m.List(); len(ids) != 1 || ids[0] != "a" {
		t.Errorf("List = %v, want [a]", ids)
	}
	if got := m.History("b"); got != nil {
		t.Errorf("History of deleted session = %+v", got)
	}
}
