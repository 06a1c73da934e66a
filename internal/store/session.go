package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nmercier/quantfolio/ent"
	"github.com/nmercier/quantfolio/ent/activityrollup"
	"github.com/nmercier/quantfolio/ent/mastery"
	"github.com/nmercier/quantfolio/ent/session"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Open(ctx context.Context, uid string, navBefore, teBefore float64) (*SessionRow, error) {
	s, err := r.client.Session.Create().
		SetUID(uid).
		SetNavBefore(navBefore).
		SetTeBefore(teBefore).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return sessionRow(s), nil
}

func (r *sessionRepo) ByUID(ctx context.Context, uid string) (*SessionRow, error) {
	s, err := r.client.Session.Query().
		Where(session.UID(uid)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %s: %w", uid, ErrNotFound)
		}
		return nil, fmt.Errorf("get session %s: %w", uid, err)
	}
	return sessionRow(s), nil
}

func (r *sessionRepo) Close(ctx context.Context, id int, navAfter, teAfter, pnl float64, endedAt time.Time) error {
	_, err := r.client.Session.UpdateOneID(id).
		SetStatus(session.StatusClosed).
		SetEndedAt(endedAt).
		SetNavAfter(navAfter).
		SetTeAfter(teAfter).
		SetPnl(pnl).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("session %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("close session %d: %w", id, err)
	}
	return nil
}

func (r *sessionRepo) CommitAnswer(ctx context.Context, w AnswerWrite) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin answer tx: %w", err)
	}

	n, err := tx.Mastery.Update().
		Where(mastery.CategoryID(w.CategoryID)).
		SetRating(w.NewRating).
		SetRatingVar(w.NewRatingVar).
		SetLastReviewed(w.ReviewedAt).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("update mastery for category %d: %w", w.CategoryID, err))
	}
	if n == 0 {
		return rollback(tx, fmt.Errorf("mastery for category %d: %w", w.CategoryID, ErrNotFound))
	}

	n, err = tx.ActivityRollup.Update().
		Where(activityrollup.CategoryID(w.CategoryID)).
		SetEmaActivity(w.NewEmaActivity).
		SetEmaPerf(w.NewEmaPerf).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("update rollup for category %d: %w", w.CategoryID, err))
	}
	if n == 0 {
		return rollback(tx, fmt.Errorf("rollup for category %d: %w", w.CategoryID, ErrNotFound))
	}

	_, err = tx.Answer.Create().
		SetSessionID(w.SessionID).
		SetQuestionID(w.QuestionID).
		SetCategoryID(w.CategoryID).
		SetCorrect(w.Correct).
		SetTimeSec(w.TimeSec).
		SetRatingDelta(w.RatingDelta).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("insert answer row: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit answer tx: %w", err)
	}
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}

func sessionRow(s *ent.Session) *SessionRow {
	return &SessionRow{
		ID:        s.ID,
		UID:       s.UID,
		Status:    string(s.Status),
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		NavBefore: s.NavBefore,
		TeBefore:  s.TeBefore,
		NavAfter:  s.NavAfter,
		TeAfter:   s.TeAfter,
		Pnl:       s.Pnl,
	}
}
