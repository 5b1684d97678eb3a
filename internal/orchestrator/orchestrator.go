// Package orchestrator is the household's workflow engine: it maps a named
// task and free-text input to a fixed pipeline of persona calls, applies
// closure short-circuiting, and performs memory recall.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/nextlevelbuilder/westmarch/internal/household"
)

// Recognized task names. Matching is case-insensitive.
const (
	TaskParlourDiscussion = "parlour_discussion"
	TaskDailyPlanning     = "daily_planning"
	TaskResearch          = "research"
	TaskDrafting          = "drafting"
	TaskQueryArchive      = "query_archive"
	TaskMemorySummary     = "memory_summary"
	TaskCritique          = "critique"
	TaskWholeHousehold    = "whole_household"
	TaskRecallMemory      = "recall_memory"
)

// UnknownTaskReply is returned for an unrecognized task name. The dispatcher
// never raises on bad input.
const UnknownTaskReply = "My apologies sir, but the household staff are quite baffled by the request."

// TaskNames lists every live workflow in menu order. The scripted replay
// transcript is a separate capability and is not dispatched here.
func TaskNames() []string {
	return []string{
		TaskParlourDiscussion,
		TaskDailyPlanning,
		TaskResearch,
		TaskDrafting,
		TaskQueryArchive,
		TaskMemorySummary,
		TaskCritique,
		TaskWholeHousehold,
		TaskRecallMemory,
	}
}

// Speaker returns the persona whose voice delivers the final reply for a
// task. Presentation surfaces use it to label chat bubbles.
func Speaker(task string) string {
	switch strings.ToLower(task) {
	case TaskResearch:
		return household.NamePerkins
	case TaskDrafting:
		return household.NamePennington
	case TaskCritique:
		return household.NameHawthorne
	default:
		return household.NameJeeves
	}
}

// Orchestrator runs workflows over the four personas. It is strictly
// sequential: one input produces one blocking chain of persona calls.
type Orchestrator struct {
	mu    sync.RWMutex
	house *household.Household
}

func New(house *household.Household) *Orchestrator {
	return &Orchestrator{house: house}
}

// SetHousehold swaps the personas, e.g. after a config reload changed
// provider credentials. Workflow stages already dispatched finish on
// whichever staff they resolved.
func (o *Orchestrator) SetHousehold(h *household.Household) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.house = h
}

func (o *Orchestrator) staff() *household.Household {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.house
}

// Run dispatches task (case-insensitive) to its workflow and returns the
// final reply text. A model-call failure surfaces as an error so callers can
// distinguish "persona spoke" from "call failed"; everything else, including
// an unrecognized task name, comes back as normal reply text.
func (o *Orchestrator) Run(ctx context.Context, task, input string, mode household.Mode) (string, error) {
	slog.Info("orchestrator: dispatch", "task", task, "mode", mode.String())

	switch strings.ToLower(strings.TrimSpace(task)) {
	case TaskParlourDiscussion:
		return o.parlourDiscussion(ctx, input)
	case TaskDailyPlanning:
		return o.dailyPlanning(ctx, input, mode)
	case TaskResearch:
		return o.quickResearch(ctx, input, mode)
	case TaskDrafting:
		return o.draftShortText(ctx, input, mode)
	case TaskQueryArchive:
		return o.queryArchive(ctx, input, mode)
	case TaskMemorySummary:
		return o.memorySummary(ctx, input, mode)
	case TaskCritique:
		return o.critiqueText(ctx, input, mode)
	case TaskWholeHousehold:
		return o.wholeHousehold(ctx, input, mode)
	case TaskRecallMemory:
		return o.recallMemory(input)
	default:
		slog.Warn("orchestrator: unknown task", "task", task)
		return UnknownTaskReply, nil
	}
}

// contextFor builds the per-step message context.
func contextFor(input string, mode household.Mode, prev ...household.StageOutput) household.Context {
	return household.Context{
		OriginalRequest: input,
		PreviousOutputs: prev,
		Mode:            mode,
	}
}

// archive saves a note through the scribe. Archival failures are logged and
// swallowed: a workflow never fails because the ledger did.
func (o *Orchestrator) archive(content string) {
	if _, err := o.staff().Scribe.SaveNote(content); err != nil {
		slog.Warn("orchestrator: could not archive note", "error", err)
	}
}

// Apology renders an error as an in-persona failure message. With debug set,
// the technical detail is appended so the cause is visible during
// development.
func Apology(err error, debug bool) string {
	msg := "*Clears throat apologetically*\n\n" +
		"I do beg your pardon, but it appears we've encountered an unexpected " +
		"difficulty in the household. Perhaps you might rephrase your request?"
	if debug && err != nil {
		msg += fmt.Sprintf("\n\n**Technical Details:**\n```\n%v\n```", err)
	}
	return msg
}
