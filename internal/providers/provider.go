// Package providers implements the model-call boundary: one client per LLM
// provider, each reducing to (system prompt, user content) → text.
//
// Failures are typed values, not sentinel strings. Callers that need the
// legacy display shape "[<Provider> Error: <message>]" render it via
// CallError.Sentinel.
package providers

import (
	"context"
	"errors"
	"fmt"
)

// Provider is the opaque model-call collaborator.
type Provider interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, userContent string) (string, error)
}

// ErrorKind classifies a model-call failure.
type ErrorKind string

const (
	// KindCredentialMissing: the provider has no API key configured.
	KindCredentialMissing ErrorKind = "credential_missing"
	// KindRequestFailed: the HTTP request could not be completed.
	KindRequestFailed ErrorKind = "request_failed"
	// KindBadStatus: the provider answered with a non-2xx status.
	KindBadStatus ErrorKind = "bad_status"
	// KindEmptyReply: the provider answered 2xx but produced no text.
	KindEmptyReply ErrorKind = "empty_reply"
)

// CallError is a typed model-call failure.
type CallError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *CallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s call failed (%s): %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s call failed (%s)", e.Provider, e.Kind)
}

func (e *CallError) Unwrap() error { return e.Err }

// Sentinel renders the failure in the legacy inline shape used by display
// surfaces: "[<Provider> Error: <message>]".
func (e *CallError) Sentinel() string {
	msg := string(e.Kind)
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("[%s Error: %s]", e.Provider, msg)
}

// AsCallError extracts a *CallError from err, if present.
func AsCallError(err error) (*CallError, bool) {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
