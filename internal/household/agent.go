package household

import (
	"context"
	"log/slog"

	"github.com/nextlevelbuilder/westmarch/internal/providers"
)

// Canonical persona names, used for prompt framing and logging.
const (
	NameJeeves     = "Jeeves"
	NamePerkins    = "Perkins"
	NamePennington = "Miss Pennington"
	NameHawthorne  = "Lady Hawthorne"
)

// Agent is one persona: a system prompt, a content-assembly rule, and a model
// call. Run returns the model's text verbatim; personas never post-process or
// truncate it.
type Agent interface {
	Name() string
	Run(ctx context.Context, msg Message) (string, error)
}

// complete invokes the provider for a persona and logs the exchange.
func complete(ctx context.Context, name string, p providers.Provider, systemPrompt, userContent string) (string, error) {
	slog.Debug("household: persona call",
		"persona", name, "provider", p.Name(), "content_len", len(userContent))
	out, err := p.Complete(ctx, systemPrompt, userContent)
	if err != nil {
		slog.Warn("household: persona call failed", "persona", name, "error", err)
		return "", err
	}
	slog.Debug("household: persona reply", "persona", name, "reply_len", len(out))
	return out, nil
}
