package household

import (
	"context"
	"fmt"
	"strings"

	"github.com/nextlevelbuilder/westmarch/internal/memory"
	"github.com/nextlevelbuilder/westmarch/internal/providers"
)

// Scribe is Miss Pennington, scribe and archivist persona. Beyond drafting,
// she is the sole custodian of the household's memory ledger.
type Scribe struct {
	provider providers.Provider
	ledger   *memory.Ledger
}

func NewScribe(p providers.Provider, l *memory.Ledger) *Scribe {
	return &Scribe{provider: p, ledger: l}
}

func (s *Scribe) Name() string { return NamePennington }

func (s *Scribe) userContent(msg Message) string {
	var research strings.Builder
	for _, out := range msg.Context.PreviousOutputs {
		fmt.Fprintf(&research, "- %s: %s\n", out.Source, out.Summary)
	}
	ctx := strings.TrimRight(research.String(), "\n")
	if ctx == "" {
		ctx = "(no research provided)"
	}

	return fmt.Sprintf("User request:\n%s\n\nResearch context:\n%s\n\nInstruction:\n%s\n",
		msg.Context.OriginalRequest, ctx, msg.Content)
}

func (s *Scribe) Run(ctx context.Context, msg Message) (string, error) {
	return complete(ctx, s.Name(), s.provider, penningtonPrompt, s.userContent(msg))
}

// SaveNote archives content with automatic classification plus any explicit
// tags.
func (s *Scribe) SaveNote(content string, tags ...string) (memory.Entry, error) {
	return s.ledger.Append(content, tags)
}

// LoadAllNotes returns every archived entry in insertion order.
func (s *Scribe) LoadAllNotes() []memory.Entry {
	return s.ledger.LoadAll()
}

// SearchMemory returns entries matching query by content or tag.
func (s *Scribe) SearchMemory(query string) []memory.Entry {
	return s.ledger.Search(query)
}

// RecallAll renders the whole ledger as readable text.
func (s *Scribe) RecallAll() string {
	return s.ledger.RenderText()
}

// SummarizeText asks the scribe to summarize an arbitrary text blob. It goes
// through the normal Run pipeline so the summary keeps her voice.
func (s *Scribe) SummarizeText(ctx context.Context, text string) (string, error) {
	msg := Message{
		Sender:      NameJeeves,
		Recipient:   s.Name(),
		Task:        TaskDrafting,
		Content:     "Summarize the following text clearly and gracefully:\n\n" + text,
		Constraints: DefaultConstraints(),
	}
	return s.Run(ctx, msg)
}

// SummarizeMemory renders the whole ledger and asks the model for an
// in-persona prose summary of it.
func (s *Scribe) SummarizeMemory(ctx context.Context) (string, error) {
	return s.SummarizeText(ctx, s.RecallAll())
}
