package household

import (
	"context"
	"fmt"
	"strings"

	"github.com/nextlevelbuilder/westmarch/internal/providers"
)

// Butler is Jeeves, head butler and orchestrator persona. He carries two
// registers: the structured orchestration prompt and a lighter parlour
// variant for free conversation.
type Butler struct {
	provider providers.Provider
}

func NewButler(p providers.Provider) *Butler {
	return &Butler{provider: p}
}

func (b *Butler) Name() string { return NameJeeves }

// systemPrompt is a pure function of the message's mode.
func (b *Butler) systemPrompt(msg Message) string {
	if msg.Context.Mode == ModeParlour {
		return jeevesPromptParlour
	}
	return jeevesPromptMain
}

// userContent frames the task, restates the original request when present,
// and closes with the instruction as a dominant directive. The final
// directive placement is deliberate: it keeps structured instructions from
// being softened by the persona.
func (b *Butler) userContent(msg Message) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Task: %s\n", msg.Task))

	if req := msg.Context.OriginalRequest; req != "" {
		parts = append(parts, fmt.Sprintf("User Request:\n%s\n", req))
	}

	parts = append(parts,
		"YOU MUST FOLLOW THE INSTRUCTION BELOW EXACTLY AND LITERALLY. "+
			"IT OVERRIDES ALL PRIOR CONTEXT, PERSONA, AND CONVERSATION:\n\n"+
			msg.Content+"\n")

	return strings.Join(parts, "\n")
}

func (b *Butler) Run(ctx context.Context, msg Message) (string, error) {
	return complete(ctx, b.Name(), b.provider, b.systemPrompt(msg), b.userContent(msg))
}
