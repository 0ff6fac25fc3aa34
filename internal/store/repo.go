package store

import (
	"context"
	"time"

	"github.com/smartcriacao/atividade/internal/activity"
)

// User is the persisted identity record.
type User struct {
	ID           string
	Email        string
	IsAdmin      bool
	IsSubscribed bool
	CreatedAt    time.Time
}

// UserRepo manages user records.
type UserRepo interface {
	// GetOrCreate returns the user with the given email, creating it
	// (free tier) when absent.
	GetOrCreate(ctx context.Context, email string) (*User, error)

	// SetSubscribed updates the subscription flag.
	SetSubscribed(ctx context.Context, id string, subscribed bool) error

	// SetAdmin updates the administrator flag.
	SetAdmin(ctx context.Context, id string, admin bool) error
}

// SavedActivity is one persisted worksheet: the originating form plus
// the generated pages. An empty UserID marks an anonymous worksheet;
// it is stored unowned rather than referencing a users row.
type SavedActivity struct {
	ID        string
	UserID    string
	Name      string
	FormData  activity.FormData
	Pages     []activity.GeneratedPage
	CreatedAt time.Time
}

// ActivityRepo manages saved worksheets.
type ActivityRepo interface {
	// Save persists a named worksheet for an owner and returns its ID.
	Save(ctx context.Context, a *SavedActivity) (string, error)

	// List returns an owner's worksheets, newest first. An empty userID
	// selects anonymous worksheets. Page payloads are included; callers
	// that only need names may ignore them.
	List(ctx context.Context, userID string) ([]SavedActivity, error)

	// Get returns one worksheet by ID.
	Get(ctx context.Context, id string) (*SavedActivity, error)

	// Delete removes a worksheet by ID.
	Delete(ctx context.Context, id string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored event row.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage per request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the LLM request log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
