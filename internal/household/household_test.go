package household

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nextlevelbuilder/westmarch/internal/memory"
)

// fakeProvider records the last call and replies with a fixed string.
type fakeProvider struct {
	reply      string
	lastSystem string
	lastUser   string
	calls      int
}

func (f *fakeProvider) Name() string { return "Fake" }

func (f *fakeProvider) Complete(_ context.Context, systemPrompt, userContent string) (string, error) {
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userContent
	return f.reply, nil
}

func TestButler_PromptSelection(t *testing.T) {
	b := NewButler(&fakeProvider{})

	structured := b.systemPrompt(Message{Context: Context{Mode: ModeStructured}})
	if !strings.Contains(structured, "Orchestrator of the Westmarch Household") {
		t.Error("structured mode did not select the main prompt")
	}

	parlour := b.systemPrompt(Message{Context: Context{Mode: ModeParlour}})
	if !strings.Contains(parlour, "parlour") {
		t.Error("parlour mode did not select the parlour prompt")
	}
	if structured == parlour {
		t.Error("mode had no effect on prompt selection")
	}
}

func TestButler_UserContent(t *testing.T) {
	b := NewButler(&fakeProvider{})
	msg := Message{
		Task:    TaskPlanning,
		Content: "Draw up the morning schedule.",
		Context: Context{OriginalRequest: "Plan my day"},
	}

	got := b.userContent(msg)
	if !strings.Contains(got, "Task: planning") {
		t.Errorf("missing task label:\n%s", got)
	}
	if !strings.Contains(got, "User Request:\nPlan my day") {
		t.Errorf("missing original request:\n%s", got)
	}
	if !strings.Contains(got, "OVERRIDES ALL PRIOR CONTEXT") {
		t.Errorf("missing override directive:\n%s", got)
	}
	// The instruction must come after the override directive.
	if strings.Index(got, "OVERRIDES") > strings.Index(got, "Draw up the morning schedule.") {
		t.Error("instruction precedes the override directive")
	}
}

func TestButler_UserContentOmitsEmptyRequest(t *testing.T) {
	b := NewButler(&fakeProvider{})
	got := b.userContent(Message{Task: TaskConversation, Content: "Greet the user."})
	if strings.Contains(got, "User Request:") {
		t.Errorf("empty original request still rendered:\n%s", got)
	}
}

func TestResearcher_Run(t *testing.T) {
	fp := &fakeProvider{reply: "- fact one"}
	r := NewResearcher(fp)

	out, err := r.Run(context.Background(), Message{Content: "Investigate the ledger anomaly."})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "- fact one" {
		t.Errorf("output = %q, want model text verbatim", out)
	}
	if !strings.Contains(fp.lastUser, "Instruction:\nInvestigate the ledger anomaly.") {
		t.Errorf("instruction not framed:\n%s", fp.lastUser)
	}
	if !strings.Contains(fp.lastSystem, "Research Footman") {
		t.Error("wrong system prompt")
	}
}

func TestScribe_UserContentRendersResearch(t *testing.T) {
	s := NewScribe(&fakeProvider{}, nil)
	msg := Message{
		Content: "Draft the report.",
		Context: Context{
			OriginalRequest: "Write up the findings",
			PreviousOutputs: []StageOutput{
				{Source: "Perkins", Summary: "found a sealed door"},
				{Source: "Lady Hawthorne", Summary: "doubts the seal"},
			},
		},
	}

	got := s.userContent(msg)
	if !strings.Contains(got, "- Perkins: found a sealed door") {
		t.Errorf("missing first research line:\n%s", got)
	}
	if !strings.Contains(got, "- Lady Hawthorne: doubts the seal") {
		t.Errorf("missing second research line:\n%s", got)
	}
	if !strings.Contains(got, "User request:\nWrite up the findings") {
		t.Errorf("missing original request:\n%s", got)
	}
}

func TestScribe_UserContentNoResearch(t *testing.T) {
	s := NewScribe(&fakeProvider{}, nil)
	got := s.userContent(Message{Content: "Draft a letter."})
	if !strings.Contains(got, "(no research provided)") {
		t.Errorf("missing empty-research placeholder:\n%s", got)
	}
}

func TestCritic_OmitsOriginalRequest(t *testing.T) {
	c := NewCritic(&fakeProvider{})
	msg := Message{
		Content: "A rather plain poem.",
		Context: Context{OriginalRequest: "Critique my poem"},
	}

	got := c.userContent(msg)
	if strings.Contains(got, "Critique my poem") {
		t.Errorf("critic content leaked the original request:\n%s", got)
	}
	if !strings.Contains(got, "Material to critique:\nA rather plain poem.") {
		t.Errorf("missing material:\n%s", got)
	}
}

func TestScribe_MemoryOps(t *testing.T) {
	ledger, err := memory.NewLedger(filepath.Join(t.TempDir(), "memory.json"))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScribe(&fakeProvider{}, ledger)

	entry, err := s.SaveNote("The gnome returned at dusk.")
	if err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if entry.ID == "" {
		t.Error("entry has no id")
	}

	all := s.LoadAllNotes()
	if len(all) != 1 {
		t.Fatalf("LoadAllNotes = %d entries, want 1", len(all))
	}

	if hits := s.SearchMemory("gnome"); len(hits) != 1 {
		t.Errorf("SearchMemory = %d hits, want 1", len(hits))
	}
	if !strings.Contains(s.RecallAll(), "The gnome returned at dusk.") {
		t.Error("RecallAll missing saved content")
	}
}

func TestScribe_SummarizeMemoryGoesThroughRun(t *testing.T) {
	ledger, err := memory.NewLedger(filepath.Join(t.TempDir(), "memory.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.Append("A quiet week at the house.", nil); err != nil {
		t.Fatal(err)
	}

	fp := &fakeProvider{reply: "A gentle summary."}
	s := NewScribe(fp, ledger)

	out, err := s.SummarizeMemory(context.Background())
	if err != nil {
		t.Fatalf("SummarizeMemory: %v", err)
	}
	if out != "A gentle summary." {
		t.Errorf("out = %q", out)
	}
	if fp.calls != 1 {
		t.Errorf("calls = %d, want 1", fp.calls)
	}
	if !strings.Contains(fp.lastUser, "A quiet week at the house.") {
		t.Error("rendered ledger not passed to the model")
	}
	if !strings.Contains(fp.lastSystem, "Scribe & Archivist") {
		t.Error("summary did not use the scribe persona")
	}
}
