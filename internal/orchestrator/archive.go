package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/nextlevelbuilder/westmarch/internal/household"
)

// historicalYearPattern matches a year between 1000 and 1999. The archive
// query treats entries mentioning such a year as historical records.
var historicalYearPattern = regexp.MustCompile(`\b1[0-9]{3}\b`)

const archiveNoMatchesReply = "I regret to say, sir, that the archives contain no records " +
	"relevant to your request. Might you wish to phrase it differently?"

// queryArchive filters the ledger for historical entries, has the scribe
// summarize them, and has the butler present the summary.
func (o *Orchestrator) queryArchive(ctx context.Context, input string, mode household.Mode) (string, error) {
	if matchesClosure(input, archiveClosures) {
		return archiveClosureReply, nil
	}

	var matches []string
	for _, note := range o.staff().Scribe.LoadAllNotes() {
		if historicalYearPattern.MatchString(note.Content) {
			matches = append(matches, note.Content)
		}
	}
	slog.Debug("orchestrator: archive query", "matches", len(matches))

	if len(matches) == 0 {
		return archiveNoMatchesReply, nil
	}

	combined := strings.Join(matches, "\n\n---\n\n")
	summary, err := o.staff().Scribe.SummarizeText(ctx, combined)
	if err != nil {
		return "", err
	}

	return o.staff().Butler.Run(ctx, household.Message{
		Sender:    "System",
		Recipient: household.NameJeeves,
		Task:      household.TaskConversation,
		Content: fmt.Sprintf(
			"Please present the following as a concise, elegant summary drawn "+
				"from the Estate archives:\n\n%s", summary),
		Context: contextFor(input, mode),
	})
}

// memorySummary asks the scribe to summarize everything she knows, then has
// the butler present it gracefully.
func (o *Orchestrator) memorySummary(ctx context.Context, input string, mode household.Mode) (string, error) {
	summary, err := o.staff().Scribe.SummarizeMemory(ctx)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(input) == "" {
		input = "Summarize what you know about me so far."
	}

	return o.staff().Butler.Run(ctx, household.Message{
		Sender:    "System",
		Recipient: household.NameJeeves,
		Task:      household.TaskPlanning,
		Content: fmt.Sprintf(
			"Please present this as a brief summary of what the household "+
				"currently remembers about the patron:\n\n%s", summary),
		Context: contextFor(input, mode),
	})
}
