package household

import (
	"context"
	"fmt"

	"github.com/nextlevelbuilder/westmarch/internal/providers"
)

// Researcher is Perkins, the research footman persona.
type Researcher struct {
	provider providers.Provider
}

func NewResearcher(p providers.Provider) *Researcher {
	return &Researcher{provider: p}
}

func (r *Researcher) Name() string { return NamePerkins }

func (r *Researcher) userContent(msg Message) string {
	return fmt.Sprintf("Instruction:\n%s\n\nRespond with concise, structured research points.", msg.Content)
}

func (r *Researcher) Run(ctx context.Context, msg Message) (string, error) {
	return complete(ctx, r.Name(), r.provider, perkinsPrompt, r.userContent(msg))
}
