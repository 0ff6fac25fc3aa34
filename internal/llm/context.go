package llm

import "context"

// Purpose labels recorded with each logged request. The worksheet
// pipeline currently has a single call site; the label keeps the event
// log and `llm stats` meaningful if more are added.
const (
	PurposePageStructure = "page-structure"
	PurposeUnknown       = "unknown"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context. The logging
// decorator stores it with the event row.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, or PurposeUnknown when the
// caller never set one.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return PurposeUnknown
}
