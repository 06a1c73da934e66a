package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a referenced entity does not exist.
var ErrNotFound = errors.New("not found")

// CategoryState joins a category with its mastery and activity rollup,
// substituting neutral defaults (rating 50, rating_var 50, activity 0,
// perf 0.5) when the lazily-created rows don't exist yet.
type CategoryState struct {
	ID           int
	ParentID     *int
	Name         string
	TargetWeight float64
	Active       bool
	Rating       float64
	RatingVar    float64
	EmaActivity  float64
	EmaPerf      float64
}

// QuestionRow is a fully hydrated question as served to clients.
type QuestionRow struct {
	ID           int
	CategoryID   int
	CategoryName string
	Type         string
	Prompt       string
	Choices      []string
	Answer       string
	Difficulty   float64
}

// QuestionInput is a question to be inserted by the bank importer.
type QuestionInput struct {
	CategoryID int
	Type       string
	Prompt     string
	Choices    []string
	Answer     string
	Difficulty float64
}

// CategoryPatch is a partial category update. Nil fields are left unchanged.
type CategoryPatch struct {
	Name         *string
	TargetWeight *float64
	Active       *bool
	ParentID     *int
	ClearParent  bool
}

// CategorySummary is a catalog listing row with its question count.
type CategorySummary struct {
	CategoryState
	QuestionCount int
}

// DifficultyRange restricts question sampling to [Min, Max].
type DifficultyRange struct {
	Min float64
	Max float64
}

// CatalogRepo provides read access to categories and questions, plus the
// idempotent creation of per-category learner state.
type CatalogRepo interface {
	// ActiveCategories returns all active categories joined with their
	// mastery and rollup state, top-level categories first, then by name.
	ActiveCategories(ctx context.Context) ([]CategoryState, error)

	// State returns the joined state for one category.
	// Returns ErrNotFound if the category does not exist.
	State(ctx context.Context, categoryID int) (*CategoryState, error)

	// EnsureState creates the Mastery and ActivityRollup rows for the
	// category if missing. Idempotent. Returns ErrNotFound if the
	// category itself does not exist.
	EnsureState(ctx context.Context, categoryID int) error

	// QuestionByID returns a hydrated question or ErrNotFound.
	QuestionByID(ctx context.Context, id int) (*QuestionRow, error)

	// SampleQuestionIDs draws up to limit distinct random question ids
	// from one category, optionally restricted to a difficulty range.
	SampleQuestionIDs(ctx context.Context, categoryID, limit int, dr *DifficultyRange) ([]int, error)

	// SampleSubtreeQuestions draws up to limit random hydrated questions
	// from a category and all its descendants.
	SampleSubtreeQuestions(ctx context.Context, categoryID, limit int) ([]QuestionRow, error)

	// ListSummaries returns active categories with question counts.
	ListSummaries(ctx context.Context) ([]CategorySummary, error)

	// UpdateCategory applies a partial update; returns rows changed.
	UpdateCategory(ctx context.Context, id int, patch CategoryPatch) (int, error)

	// EnsureCategoryPath walks a slash-separated path of names, creating
	// missing nodes (with target weight 0 and fresh learner state), and
	// returns the id of the leaf category.
	EnsureCategoryPath(ctx context.Context, parts []string) (int, error)

	// InsertQuestions inserts items in one transaction, skipping exact
	// (category, prompt) duplicates. Returns the number created.
	InsertQuestions(ctx context.Context, items []QuestionInput) (int, error)
}

// Session status values.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// SessionRow mirrors one sessions table row.
type SessionRow struct {
	ID        int
	UID       string
	Status    string
	StartedAt time.Time
	EndedAt   *time.Time
	NavBefore float64
	TeBefore  float64
	NavAfter  float64
	TeAfter   float64
	Pnl       float64
}

// AnswerWrite carries everything the answer transaction persists: the new
// mastery and rollup values plus the audit row. All writes commit together
// or not at all.
type AnswerWrite struct {
	SessionID  int
	QuestionID int
	CategoryID int
	Correct    bool
	TimeSec    int

	RatingDelta  float64
	NewRating    float64
	NewRatingVar float64
	ReviewedAt   time.Time

	NewEmaActivity float64
	NewEmaPerf     float64
}

// SessionRepo manages session rows and the atomic answer commit.
type SessionRepo interface {
	// Open inserts a new open session with its starting snapshot.
	Open(ctx context.Context, uid string, navBefore, teBefore float64) (*SessionRow, error)

	// ByUID returns the session or ErrNotFound.
	ByUID(ctx context.Context, uid string) (*SessionRow, error)

	// Close stamps the closing snapshot and marks the session closed.
	Close(ctx context.Context, id int, navAfter, teAfter, pnl float64, endedAt time.Time) error

	// CommitAnswer applies the mastery update, the rollup update and the
	// answer audit row in a single transaction.
	CommitAnswer(ctx context.Context, w AnswerWrite) error
}
