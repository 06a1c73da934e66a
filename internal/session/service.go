// Package session drives the practice-session state machine: open with a
// NAV/tracking-error snapshot, process answers atomically, close exactly
// once with the realized P&L.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nmercier/quantfolio/internal/mastery"
	"github.com/nmercier/quantfolio/internal/portfolio"
	"github.com/nmercier/quantfolio/internal/store"
)

// ErrSessionClosed is returned when answering or closing a session that is
// no longer open.
var ErrSessionClosed = errors.New("session already closed")

// DefaultTimeSec is assumed when the client omits the answer latency.
const DefaultTimeSec = 30

// BatchSelector picks the question ids for a new session.
type BatchSelector interface {
	Select(ctx context.Context, n int) ([]int, error)
}

// Service coordinates session lifecycle against the store.
type Service struct {
	catalog    store.CatalogRepo
	sessions   store.SessionRepo
	reconciler *portfolio.Service
	selector   BatchSelector
}

// NewService wires the session service.
func NewService(catalog store.CatalogRepo, sessions store.SessionRepo, reconciler *portfolio.Service, selector BatchSelector) *Service {
	return &Service{
		catalog:    catalog,
		sessions:   sessions,
		reconciler: reconciler,
		selector:   selector,
	}
}

// OpenResult is the freshly opened session and its starting snapshot.
type OpenResult struct {
	SessionID string
	NavBefore float64
	TeBefore  float64
}

// Open snapshots NAV and tracking error and inserts a new open session.
func (s *Service) Open(ctx context.Context) (*OpenResult, error) {
	nav, te, _, err := s.reconciler.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	row, err := s.sessions.Open(ctx, uuid.NewString(), nav, te)
	if err != nil {
		return nil, err
	}
	return &OpenResult{
		SessionID: row.UID,
		NavBefore: row.NavBefore,
		TeBefore:  row.TeBefore,
	}, nil
}

// Batch is a new session together with its hydrated question list.
type Batch struct {
	SessionID string
	Questions []store.QuestionRow
}

// NextBatch opens a session and selects up to n questions for it.
func (s *Service) NextBatch(ctx context.Context, n int) (*Batch, error) {
	opened, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := s.selector.Select(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("select batch: %w", err)
	}

	questions := make([]store.QuestionRow, 0, len(ids))
	for _, id := range ids {
		q, err := s.catalog.QuestionByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("hydrate question %d: %w", id, err)
		}
		questions = append(questions, *q)
	}

	return &Batch{SessionID: opened.SessionID, Questions: questions}, nil
}

// AnswerResult is returned to the caller for display and logging.
type AnswerResult struct {
	P     float64 // expected success probability before the answer
	Delta float64 // signed rating change applied
}

// Answer processes one answered question: it resolves the question's
// category, ensures the learner state rows exist, computes the mastery and
// rollup updates, and commits them with the audit row in one transaction.
// Fails with ErrSessionClosed if the session is not open.
func (s *Service) Answer(ctx context.Context, sessionID string, questionID int, correct bool, timeSec int) (*AnswerResult, error) {
	sess, err := s.sessions.ByUID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != store.StatusOpen {
		return nil, fmt.Errorf("answer in session %s: %w", sessionID, ErrSessionClosed)
	}

	q, err := s.catalog.QuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if err := s.catalog.EnsureState(ctx, q.CategoryID); err != nil {
		return nil, err
	}
	st, err := s.catalog.State(ctx, q.CategoryID)
	if err != nil {
		return nil, err
	}

	upd := mastery.Evaluate(st.Rating, st.RatingVar, q.Difficulty, correct, timeSec, time.Now())
	roll := mastery.NextRollup(mastery.Rollup{
		EmaActivity: st.EmaActivity,
		EmaPerf:     st.EmaPerf,
	}, correct)

	err = s.sessions.CommitAnswer(ctx, store.AnswerWrite{
		SessionID:      sess.ID,
		QuestionID:     q.ID,
		CategoryID:     q.CategoryID,
		Correct:        correct,
		TimeSec:        timeSec,
		RatingDelta:    upd.Delta,
		NewRating:      upd.NewRating,
		NewRatingVar:   upd.NewRatingVar,
		ReviewedAt:     upd.ReviewedAt,
		NewEmaActivity: roll.EmaActivity,
		NewEmaPerf:     roll.EmaPerf,
	})
	if err != nil {
		return nil, err
	}

	return &AnswerResult{P: upd.P, Delta: upd.Delta}, nil
}

// CloseResult is the full before/after/pnl tuple of a closed session.
type CloseResult struct {
	NavBefore float64
	NavAfter  float64
	Pnl       float64
	TeBefore  float64
	TeAfter   float64
}

// Close snapshots the closing NAV and tracking error and marks the session
// closed. Closing twice fails with ErrSessionClosed.
func (s *Service) Close(ctx context.Context, sessionID string) (*CloseResult, error) {
	sess, err := s.sessions.ByUID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != store.StatusOpen {
		return nil, fmt.Errorf("close session %s: %w", sessionID, ErrSessionClosed)
	}

	nav, te, _, err := s.reconciler.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("close session: %w", err)
	}
	pnl := nav - sess.NavBefore

	if err := s.sessions.Close(ctx, sess.ID, nav, te, pnl, time.Now()); err != nil {
		return nil, err
	}

	return &CloseResult{
		NavBefore: sess.NavBefore,
		NavAfter:  nav,
		Pnl:       pnl,
		TeBefore:  sess.TeBefore,
		TeAfter:   te,
	}, nil
}
