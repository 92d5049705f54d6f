package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Kind labels a provider failure for operator logs. The caller-facing
// contract never exposes it.
type Kind string

const (
	KindCanceled       Kind = "canceled"
	KindTimeout        Kind = "timeout"
	KindAuth           Kind = "auth"
	KindQuota          Kind = "quota"
	KindInvalidRequest Kind = "invalid_request"
	KindProvider       Kind = "provider"
	KindUnknown        Kind = "unknown"
)

// ProviderError is the structured failure of a model call: a coarse kind for
// operators plus the underlying error for detail.
type ProviderError struct {
	Kind Kind
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider call failed (%s): %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Classify wraps a raw provider error with a Kind derived from context state
// and, for REST failures, the HTTP status code.
func Classify(err error) *ProviderError {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled):
		return &ProviderError{Kind: KindCanceled, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &ProviderError{Kind: KindTimeout, Err: err}
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return &ProviderError{Kind: KindAuth, Err: err}
		case apiErr.Code == http.StatusTooManyRequests:
			return &ProviderError{Kind: KindQuota, Err: err}
		case apiErr.Code >= 400 && apiErr.Code < 500:
			return &ProviderError{Kind: KindInvalidRequest, Err: err}
		case apiErr.Code >= 500:
			return &ProviderError{Kind: KindProvider, Err: err}
		}
	}

	return &ProviderError{Kind: KindUnknown, Err: err}
}
