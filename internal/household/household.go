package household

import (
	"github.com/nextlevelbuilder/westmarch/internal/memory"
	"github.com/nextlevelbuilder/westmarch/internal/providers"
)

// Household bundles the four personas. The butler, researcher, and scribe run
// on the Gemini provider; the critic runs on OpenAI.
type Household struct {
	Butler     *Butler
	Researcher *Researcher
	Scribe     *Scribe
	Critic     *Critic
}

func New(gemini, openai providers.Provider, ledger *memory.Ledger) *Household {
	return &Household{
		Butler:     NewButler(gemini),
		Researcher: NewResearcher(gemini),
		Scribe:     NewScribe(gemini, ledger),
		Critic:     NewCritic(openai),
	}
}
