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
	geminiDefaultBase  = "https://generativelanguage.googleapis.com/v1beta"
	geminiDefaultModel = "gemini-2.5-flash-lite"
)

// GeminiProvider calls the Google Generative Language API. Gemini takes a
// single combined prompt, so the system prompt is prepended to the user
// content with a blank line between them.
type GeminiProvider struct {
	apiKey  string
	apiBase string
	model   string
	client  *http.Client
}

func NewGeminiProvider(apiKey, apiBase, model string) *GeminiProvider {
	if apiBase == "" {
		apiBase = geminiDefaultBase
	}
	if model == "" {
		model = geminiDefaultModel
	}
	return &GeminiProvider{
		apiKey:  apiKey,
		apiBase: strings.TrimRight(apiBase, "/"),
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *GeminiProvider) Name() string { return "Gemini" }

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *GeminiProvider) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	if p.apiKey == "" {
		return "", &CallError{Provider: p.Name(), Kind: KindCredentialMissing,
			Err: fmt.Errorf("GOOGLE_API_KEY not set")}
	}

	full := strings.TrimSpace(strings.TrimSpace(systemPrompt) + "\n\n" + strings.TrimSpace(userContent))
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: full}}}},
	})
	if err != nil {
		return "", &CallError{Provider: p.Name(), Kind: KindRequestFailed, Err: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.apiBase, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &CallError{Provider: p.Name(), Kind: KindRequestFailed, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	slog.Debug("gemini: generate content", "model", p.model)
	resp, err := p.client.Do(req)
	if err != nil {
		return "", &CallError{Provider: p.Name(), Kind: KindRequestFailed, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &CallError{Provider: p.Name(), Kind: KindRequestFailed, Err: err}
	}

	var parsed geminiResponse
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

	var text strings.Builder
	if len(parsed.Candidates) > 0 {
		for _, part := range parsed.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", &CallError{Provider: p.Name(), Kind: KindEmptyReply, Err: fmt.Errorf("no candidates returned")}
	}
	return text.String(), nil
}
