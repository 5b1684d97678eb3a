package household

import (
	"context"
	"fmt"

	"github.com/nextlevelbuilder/westmarch/internal/providers"
)

// Critic is Lady Hawthorne, the dowager critic persona. She is the one
// household member backed by the OpenAI provider.
type Critic struct {
	provider providers.Provider
}

func NewCritic(p providers.Provider) *Critic {
	return &Critic{provider: p}
}

func (c *Critic) Name() string { return NameHawthorne }

// userContent presents only the material under review. The original user
// request is deliberately omitted so the critic never critiques the request
// itself instead of the material.
func (c *Critic) userContent(msg Message) string {
	return fmt.Sprintf("Material to critique:\n%s\n", msg.Content)
}

func (c *Critic) Run(ctx context.Context, msg Message) (string, error) {
	return complete(ctx, c.Name(), c.provider, hawthornePrompt, c.userContent(msg))
}
