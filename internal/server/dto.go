package server

import (
	"encoding/json"

	"github.com/nmercier/quantfolio/internal/portfolio"
	"github.com/nmercier/quantfolio/internal/store"
)

// WeightRow is one category's reconciliation state as served by /api/stats.
type WeightRow struct {
	ID            int     `json:"id"`
	ParentID      *int    `json:"parent_id"`
	Name          string  `json:"name"`
	TargetWeight  float64 `json:"target_weight"`
	CurrentWeight float64 `json:"current_weight"`
	Rating        float64 `json:"rating"`
}

// StatsResponse is the aggregate portfolio view.
type StatsResponse struct {
	Nav     float64     `json:"nav"`
	Te      float64     `json:"te"`
	Weights []WeightRow `json:"weights"`
}

func weightRows(weights []portfolio.Weight) []WeightRow {
	rows := make([]WeightRow, len(weights))
	for i, w := range weights {
		rows[i] = WeightRow{
			ID:            w.ID,
			ParentID:      w.ParentID,
			Name:          w.Name,
			TargetWeight:  w.TargetWeight,
			CurrentWeight: w.CurrentWeight,
			Rating:        w.Rating,
		}
	}
	return rows
}

// QuestionDTO is a hydrated question as served to the client. The canonical
// answer rides along because the frontend grades locally.
type QuestionDTO struct {
	ID           int      `json:"id"`
	CategoryID   int      `json:"category_id"`
	CategoryName string   `json:"category_name"`
	Type         string   `json:"type"`
	Prompt       string   `json:"prompt"`
	Choices      []string `json:"choices"`
	Answer       string   `json:"answer"`
	Difficulty   float64  `json:"difficulty"`
}

func questionDTOs(rows []store.QuestionRow) []QuestionDTO {
	out := make([]QuestionDTO, len(rows))
	for i, r := range rows {
		out[i] = QuestionDTO{
			ID:           r.ID,
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Type:         r.Type,
			Prompt:       r.Prompt,
			Choices:      r.Choices,
			Answer:       r.Answer,
			Difficulty:   r.Difficulty,
		}
	}
	return out
}

// NextSessionResponse is returned by GET /api/session/next.
type NextSessionResponse struct {
	SessionID string        `json:"sessionId"`
	Questions []QuestionDTO `json:"questions"`
}

// AnswerRequest is the body of POST /api/session/answer.
type AnswerRequest struct {
	SessionID  string `json:"sessionId" binding:"required"`
	QuestionID int    `json:"questionId" binding:"required"`
	Correct    bool   `json:"correct"`
	TimeSec    *int   `json:"timeSec"`
}

// AnswerResponse carries the expected probability and the applied delta.
type AnswerResponse struct {
	P     float64 `json:"p"`
	Delta float64 `json:"delta"`
}

// CloseRequest is the body of POST /api/session/close.
type CloseRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// CloseResponse is the full before/after/pnl tuple.
type CloseResponse struct {
	NavBefore float64 `json:"nav_before"`
	NavAfter  float64 `json:"nav_after"`
	Pnl       float64 `json:"pnl"`
	TeBefore  float64 `json:"te_before"`
	TeAfter   float64 `json:"te_after"`
}

// CategoryRow is one catalog listing row.
type CategoryRow struct {
	ID            int     `json:"id"`
	ParentID      *int    `json:"parent_id"`
	Name          string  `json:"name"`
	TargetWeight  float64 `json:"target_weight"`
	Active        bool    `json:"active"`
	Rating        float64 `json:"rating"`
	EmaActivity   float64 `json:"ema_activity"`
	QuestionCount int     `json:"question_count"`
}

// PatchCategoryRequest is a partial category update. ParentID is raw so
// an explicit JSON null (detach from parent) can be told apart from an
// absent field (leave unchanged).
type PatchCategoryRequest struct {
	Name         *string         `json:"name"`
	TargetWeight *float64        `json:"target_weight"`
	Active       *bool           `json:"active"`
	ParentID     json.RawMessage `json:"parent_id"`
}

// ImportResponse reports a question-bank sync.
type ImportResponse struct {
	Ok      bool   `json:"ok"`
	Created int    `json:"created"`
	Note    string `json:"note,omitempty"`
}
