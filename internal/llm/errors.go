package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrRateLimit indicates the provider returned a transient rate limit
// error (429). Retryable.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrQuotaExceeded indicates the account's generation quota or billing
// allowance is exhausted. Never retried; always fatal to the run that
// hit it.
type ErrQuotaExceeded struct {
	Err error
}

func (e *ErrQuotaExceeded) Error() string {
	return fmt.Sprintf("generation quota exceeded: %v", e.Err)
}

func (e *ErrQuotaExceeded) Unwrap() error { return e.Err }

// ErrContentPolicy indicates the prompt was rejected by the service's
// safety filter.
type ErrContentPolicy struct {
	Err error
}

func (e *ErrContentPolicy) Error() string {
	return fmt.Sprintf("prompt rejected by content policy: %v", e.Err)
}

func (e *ErrContentPolicy) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// IsQuota reports whether err is (or wraps) a quota-exhaustion error.
func IsQuota(err error) bool {
	var q *ErrQuotaExceeded
	return errors.As(err, &q)
}

// IsContentPolicy reports whether err is (or wraps) a safety rejection.
func IsContentPolicy(err error) bool {
	var c *ErrContentPolicy
	return errors.As(err, &c)
}

// quotaMessage matches the substrings the services use to signal billing
// exhaustion rather than a transient rate limit.
func quotaMessage(msg string) bool {
	return strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(strings.ToLower(msg), "quota") ||
		strings.Contains(strings.ToLower(msg), "billing")
}

// policyMessage matches the substrings the services use to signal a
// safety-filter rejection.
func policyMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(msg, "PROHIBITED_CONTENT") ||
		strings.Contains(lower, "prompt was blocked") ||
		strings.Contains(lower, "content_policy_violation") ||
		strings.Contains(lower, "safety system")
}

// classifyTooManyRequests splits a 429 into quota exhaustion (fatal)
// and plain rate limiting (retryable) based on the message body.
func classifyTooManyRequests(err error) error {
	if quotaMessage(err.Error()) {
		return &ErrQuotaExceeded{Err: err}
	}
	return &ErrRateLimit{Err: err}
}

// ClassifyMessage maps a provider error whose message signals quota
// exhaustion or a safety rejection to the corresponding typed error.
// Returns nil when the message matches neither. Image providers share
// this taxonomy so callers can treat text and image failures uniformly.
func ClassifyMessage(err error) error {
	if err == nil {
		return nil
	}
	if policyMessage(err.Error()) {
		return &ErrContentPolicy{Err: err}
	}
	if quotaMessage(err.Error()) {
		return &ErrQuotaExceeded{Err: err}
	}
	return nil
}
