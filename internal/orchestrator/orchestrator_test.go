package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nextlevelbuilder/westmarch/internal/household"
	"github.com/nextlevelbuilder/westmarch/internal/memory"
)

// scriptedProvider replies from a fixed queue, one reply per call, and keeps
// every prompt it saw.
type scriptedProvider struct {
	replies []string
	prompts []string
	calls   int
}

func (s *scriptedProvider) Name() string { return "Scripted" }

func (s *scriptedProvider) Complete(_ context.Context, _, userContent string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, userContent)
	if len(s.replies) > 0 {
		reply := s.replies[0]
		s.replies = s.replies[1:]
		return reply, nil
	}
	return fmt.Sprintf("reply-%d", s.calls), nil
}

func newTestOrchestrator(t *testing.T, provider *scriptedProvider) (*Orchestrator, *memory.Ledger) {
	t.Helper()
	ledger, err := memory.NewLedger(filepath.Join(t.TempDir(), "memory.json"))
	if err != nil {
		t.Fatal(err)
	}
	house := household.New(provider, provider, ledger)
	return New(house), ledger
}

func TestRun_UnknownTask(t *testing.T) {
	p := &scriptedProvider{}
	o, _ := newTestOrchestrator(t, p)

	out, err := o.Run(context.Background(), "polish_the_silver", "please", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != UnknownTaskReply {
		t.Errorf("out = %q, want the fixed fallback apology", out)
	}
	if p.calls != 0 {
		t.Errorf("unknown task made %d model calls", p.calls)
	}
}

func TestRun_TaskNameCaseInsensitive(t *testing.T) {
	p := &scriptedProvider{replies: []string{"findings"}}
	o, _ := newTestOrchestrator(t, p)

	out, err := o.Run(context.Background(), "ReSeArCh", "compare tea and coffee", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "findings" {
		t.Errorf("out = %q", out)
	}
}

func TestClosure_ShortCircuitsEveryWorkflow(t *testing.T) {
	cases := []struct {
		task   string
		phrase string
		want   string
	}{
		{TaskParlourDiscussion, "Thank you, Jeeves", parlourClosureReply},
		{TaskDailyPlanning, "This will do nicely", planningApprovalReply},
		{TaskResearch, "That's all Perkins", researchClosureReply},
		{TaskDrafting, "Thank you, Miss Pennington", draftingClosureReply},
		{TaskQueryArchive, "That will suffice", archiveClosureReply},
		{TaskCritique, "Much obliged", critiqueClosureReply},
		{TaskWholeHousehold, "My thanks", wholeHouseholdClosureReply},
		{TaskRecallMemory, "Very well", recallClosureReply},
	}

	for _, tc := range cases {
		t.Run(tc.task, func(t *testing.T) {
			p := &scriptedProvider{}
			o, ledger := newTestOrchestrator(t, p)

			out, err := o.Run(context.Background(), tc.task, tc.phrase, household.ModeStructured)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if out != tc.want {
				t.Errorf("out = %q, want canned acknowledgement", out)
			}
			if p.calls != 0 {
				t.Errorf("closure made %d model calls, want 0", p.calls)
			}
			if n := len(ledger.LoadAll()); n != 0 {
				t.Errorf("closure wrote %d ledger entries, want 0", n)
			}
		})
	}
}

func TestDailyPlanning_ModeSelection(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"clock time", "Breakfast at 9:30, then correspondence", planModePreserve},
		{"dotted time", "Ride at 7.15 sharp", planModePreserve},
		{"hour range", "Work 9 - 11, then rest", planModePreserve},
		{"no times", "Arrange a gentle day for me", planModePropose},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &scriptedProvider{}
			o, _ := newTestOrchestrator(t, p)

			if _, err := o.Run(context.Background(), TaskDailyPlanning, tc.input, household.ModeStructured); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if len(p.prompts) != 1 {
				t.Fatalf("calls = %d, want 1", len(p.prompts))
			}
			if !strings.Contains(p.prompts[0], "MODE: "+tc.want) {
				t.Errorf("prompt mode hint missing %q:\n%s", tc.want, p.prompts[0])
			}
		})
	}
}

func TestDrafting_EndToEnd(t *testing.T) {
	p := &scriptedProvider{replies: []string{"Dear colleague, regrettably I must be absent tomorrow."}}
	o, ledger := newTestOrchestrator(t, p)

	input := "Rewrite this into a polite email: I can't attend the meeting tomorrow."
	out, err := o.Run(context.Background(), TaskDrafting, input, household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "Dear colleague, regrettably I must be absent tomorrow." {
		t.Errorf("out = %q, want the scribe's literal model output", out)
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want exactly one persona call", p.calls)
	}

	entries := ledger.LoadAll()
	if len(entries) != 1 {
		t.Fatalf("ledger entries = %d, want 1", len(entries))
	}
	var hasDraftTag bool
	for _, tag := range entries[0].Tags {
		if tag == "type:draft" {
			hasDraftTag = true
		}
	}
	if !hasDraftTag {
		t.Errorf("archived entry tags = %v, want type:draft", entries[0].Tags)
	}
}

func TestResearch_ArchivesAndReturnsVerbatim(t *testing.T) {
	p := &scriptedProvider{replies: []string{"- The gnome moved at midnight."}}
	o, ledger := newTestOrchestrator(t, p)

	out, err := o.Run(context.Background(), TaskResearch, "investigate the gnome", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "- The gnome moved at midnight." {
		t.Errorf("out = %q", out)
	}

	entries := ledger.LoadAll()
	if len(entries) != 1 {
		t.Fatalf("ledger entries = %d, want 1", len(entries))
	}
	var hasResearchTag bool
	for _, tag := range entries[0].Tags {
		if tag == "type:research" {
			hasResearchTag = true
		}
	}
	if !hasResearchTag {
		t.Errorf("tags = %v, want type:research", entries[0].Tags)
	}
}

func TestWholeHousehold_SevenStages(t *testing.T) {
	p := &scriptedProvider{replies: []string{
		"investigation", "interjection", "draft", "letter feedback",
		"revision", "archival summary", "Jeeves presents the summary.",
	}}
	o, ledger := newTestOrchestrator(t, p)

	out, err := o.Run(context.Background(), TaskWholeHousehold, "the gnome has moved again", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "Jeeves presents the summary." {
		t.Errorf("out = %q, want the butler's final presentation", out)
	}
	if p.calls != 7 {
		t.Errorf("calls = %d, want 7 stages", p.calls)
	}

	// Each stage's output feeds the next stage's prompt.
	if !strings.Contains(p.prompts[1], "investigation") {
		t.Error("stage 2 prompt missing stage 1 output")
	}
	if !strings.Contains(p.prompts[4], "draft") || !strings.Contains(p.prompts[4], "letter feedback") {
		t.Error("stage 5 prompt missing draft or feedback")
	}
	for _, piece := range []string{"investigation", "interjection", "draft", "letter feedback", "revision"} {
		if !strings.Contains(p.prompts[5], piece) {
			t.Errorf("stage 6 prompt missing %q", piece)
		}
	}
	if !strings.Contains(p.prompts[6], "archival summary") {
		t.Error("stage 7 prompt missing the scribe's summary")
	}

	entries := ledger.LoadAll()
	if len(entries) != 1 {
		t.Fatalf("ledger entries = %d, want 1 (the investigation archive)", len(entries))
	}
	var hasInvestigationTag bool
	for _, tag := range entries[0].Tags {
		if tag == "type:investigation" {
			hasInvestigationTag = true
		}
	}
	if !hasInvestigationTag {
		t.Errorf("tags = %v, want type:investigation", entries[0].Tags)
	}
}

func TestQueryArchive_HistoricalFilter(t *testing.T) {
	p := &scriptedProvider{replies: []string{"summary of old records", "Jeeves presents the archives."}}
	o, ledger := newTestOrchestrator(t, p)

	if _, err := ledger.Append("The estate was founded in 1742 by the first earl.", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.Append("Grocery list drafted in 2024.", nil); err != nil {
		t.Fatal(err)
	}

	out, err := o.Run(context.Background(), TaskQueryArchive, "tell me about the estate's history", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "Jeeves presents the archives." {
		t.Errorf("out = %q", out)
	}
	if !strings.Contains(p.prompts[0], "1742") {
		t.Error("summarization prompt missing the historical entry")
	}
	if strings.Contains(p.prompts[0], "2024") {
		t.Error("summarization prompt includes a non-historical entry")
	}
}

func TestQueryArchive_NoHistoricalMatches(t *testing.T) {
	p := &scriptedProvider{}
	o, ledger := newTestOrchestrator(t, p)

	if _, err := ledger.Append("A plain modern note.", nil); err != nil {
		t.Fatal(err)
	}

	out, err := o.Run(context.Background(), TaskQueryArchive, "anything historical?", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != archiveNoMatchesReply {
		t.Errorf("out = %q, want the polite no-records reply", out)
	}
	if p.calls != 0 {
		t.Errorf("no-match path made %d model calls, want 0", p.calls)
	}
}

func TestMemorySummary_PresentsThroughButler(t *testing.T) {
	p := &scriptedProvider{replies: []string{"the scribe's summary", "Jeeves presents it."}}
	o, ledger := newTestOrchestrator(t, p)

	if _, err := ledger.Append("A quiet week at the house.", nil); err != nil {
		t.Fatal(err)
	}

	out, err := o.Run(context.Background(), TaskMemorySummary, "", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "Jeeves presents it." {
		t.Errorf("out = %q", out)
	}
	if p.calls != 2 {
		t.Errorf("calls = %d, want scribe then butler", p.calls)
	}
	if !strings.Contains(p.prompts[1], "the scribe's summary") {
		t.Error("butler prompt missing the scribe's summary")
	}
}

func TestRecall_NothingFound(t *testing.T) {
	p := &scriptedProvider{}
	o, ledger := newTestOrchestrator(t, p)

	if _, err := ledger.Append("An unrelated note.", nil); err != nil {
		t.Fatal(err)
	}

	out, err := o.Run(context.Background(), TaskRecallMemory, "zeppelin", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != recallNothingFoundReply {
		t.Errorf("out = %q, want graceful nothing-found reply", out)
	}
	if p.calls != 0 {
		t.Errorf("recall made %d model calls, want 0", p.calls)
	}
}

func TestRecall_DomainCoherencePrefersMatchingDomain(t *testing.T) {
	p := &scriptedProvider{}
	o, ledger := newTestOrchestrator(t, p)

	// Higher keyword overlap, wrong domain.
	if _, err := ledger.Append("tell me about the morning schedule today", nil); err != nil {
		t.Fatal(err)
	}
	// Lower overlap, matching poetry domain.
	if _, err := ledger.Append("a fine poem with a lovely verse", nil); err != nil {
		t.Fatal(err)
	}

	out, err := o.Run(context.Background(), TaskRecallMemory, "tell me about the poem verse", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "a fine poem with a lovely verse") {
		t.Errorf("recall chose the wrong entry:\n%s", out)
	}
	if !strings.Contains(out, "Indeed, sir.") {
		t.Errorf("recall reply missing the presentation template:\n%s", out)
	}
}

func TestRecall_FallsBackToTopScorer(t *testing.T) {
	p := &scriptedProvider{}
	o, ledger := newTestOrchestrator(t, p)

	// Only candidate: scores on "about" but carries a non-matching domain.
	if _, err := ledger.Append("notes about the weekly schedule", nil); err != nil {
		t.Fatal(err)
	}

	out, err := o.Run(context.Background(), TaskRecallMemory, "poem about verse", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "notes about the weekly schedule") {
		t.Errorf("recall did not fall back to the top scorer:\n%s", out)
	}
}

func TestRecall_TiePrefersDomainCoherentEntry(t *testing.T) {
	p := &scriptedProvider{}
	o, ledger := newTestOrchestrator(t, p)

	// Both entries overlap the query on three tokens. The earlier one is
	// domain-less; the later one shares the query's finance domain and must
	// win the tie.
	if _, err := ledger.Append("the quarterly figures ledger", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := ledger.Append("the etf figures rose", nil); err != nil {
		t.Fatal(err)
	}

	out, err := o.Run(context.Background(), TaskRecallMemory, "the quarterly etf figures", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "the etf figures rose") {
		t.Errorf("recall chose the domain-less tie over the finance entry:\n%s", out)
	}
}

func TestRecall_DomainlessEntryIsFallback(t *testing.T) {
	p := &scriptedProvider{}
	o, ledger := newTestOrchestrator(t, p)

	// The entry scores on keyword overlap and carries no detectable domain.
	// With nothing in the pool sharing the query's poetry domain, the
	// domain-less entry is the fallback choice.
	if _, err := ledger.Append("a quiet memorandum with no particular theme", nil); err != nil {
		t.Fatal(err)
	}

	out, err := o.Run(context.Background(), TaskRecallMemory, "poem about the quiet memorandum", household.ModeStructured)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "a quiet memorandum with no particular theme") {
		t.Errorf("recall missed the entry:\n%s", out)
	}
}

func TestApology(t *testing.T) {
	err := fmt.Errorf("provider exploded")

	plain := Apology(err, false)
	if strings.Contains(plain, "provider exploded") {
		t.Error("non-debug apology leaked technical detail")
	}
	if !strings.Contains(plain, "beg your pardon") {
		t.Errorf("apology lost its voice: %q", plain)
	}

	debug := Apology(err, true)
	if !strings.Contains(debug, "provider exploded") {
		t.Error("debug apology missing technical detail")
	}
}

func TestSpeaker(t *testing.T) {
	if got := Speaker(TaskCritique); got != household.NameHawthorne {
		t.Errorf("Speaker(critique) = %q", got)
	}
	if got := Speaker(TaskDrafting); got != household.NamePennington {
		t.Errorf("Speaker(drafting) = %q", got)
	}
	if got := Speaker("anything_else"); got != household.NameJeeves {
		t.Errorf("Speaker(default) = %q", got)
	}
}
