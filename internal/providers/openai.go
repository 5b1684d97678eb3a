package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	openAIDefaultBase  = "https://api.openai.com/v1"
	openAIDefaultModel = "gpt-4.1"

	// Hard reply cap, matching the household's short conversational turns.
	openAIMaxTokens = 800
)

// OpenAIProvider calls the OpenAI chat completions API.
type OpenAIProvider struct {
	apiKey  string
	apiBase string
	model   string
	client  *http.Client
}

func NewOpenAIProvider(apiKey, apiBase, model string) *OpenAIProvider {
	if apiBase == "" {
		apiBase = openAIDefaultBase
	}
	if model == "" {
		model = openAIDefaultModel
	}
	return &OpenAIProvider{
		apiKey:  apiKey,
		apiBase: strings.TrimRight(apiBase, "/"),
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *OpenAIProvider) Name() string { return "OpenAI" }

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	if p.apiKey == "" {
		return "", &CallError{Provider: p.Name(), Kind: KindCredentialMissing,
			Err: fmt.Errorf("OPENAI_API_KEY not set")}
	}

	body, err := json.Marshal(openAIRequest{
		Model: p.model,
		Messages: []openAIMessage{
			{Role: "system", Content: strings.TrimSpace(systemPrompt)},
			{Role: "user", Content: strings.TrimSpace(userContent)},
		},
		MaxTokens: openAIMaxTokens,
	})
	if err != nil {
		return "", &CallError{Provider: p.Name(), Kind: KindRequestFailed, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiBase+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &CallError{Provider: p.Name(), Kind: KindRequestFailed, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	slog.Debug("openai: chat completion", "model", p.model)
	resp, err := p.client.Do(req)
	if err != nil {
		return "", &CallError{Provider: p.Name(), Kind: KindRequestFailed, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &CallError{Provider: p.Name(), Kind: KindRequestFailed, Err: err}
	}

	var parsed openAIResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &CallError{Provider: p.Name(), Kind: KindBadStatus,
			Err: fmt.Errorf("status %d: unparseable body", resp.StatusCode)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &CallError{Provider: p.Name(), Kind: KindBadStatus, Err: fmt.Errorf("%s", msg)}
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", &CallError{Provider: p.Name(), Kind: KindEmptyReply, Err: fmt.Errorf("no choices returned")}
	}
	return parsed.Choices[0].Message.Content, nil
}
