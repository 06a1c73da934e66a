package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nmercier/quantfolio/internal/portfolio"
	"github.com/nmercier/quantfolio/internal/qbank"
	"github.com/nmercier/quantfolio/internal/session"
	"github.com/nmercier/quantfolio/internal/store"
)

const (
	defaultBatchSize  = 12
	maxBatchSize      = 100
	maxQuestionSample = 50
)

// Handler serves the engine to the web frontend.
type Handler struct {
	sessions   *session.Service
	reconciler *portfolio.Service
	catalog    store.CatalogRepo
	bank       *qbank.Syncer
	log        *zap.Logger
}

// NewHandler wires the HTTP handler.
func NewHandler(sessions *session.Service, reconciler *portfolio.Service, catalog store.CatalogRepo, bank *qbank.Syncer, log *zap.Logger) *Handler {
	return &Handler{
		sessions:   sessions,
		reconciler: reconciler,
		catalog:    catalog,
		bank:       bank,
		log:        log,
	}
}

// GetStats handles GET /api/stats.
func (h *Handler) GetStats(c *gin.Context) {
	h.syncBank(c)

	nav, te, weights, err := h.reconciler.Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, "stats", err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		Nav:     nav,
		Te:      te,
		Weights: weightRows(weights),
	})
}

// GetNextSession handles GET /api/session/next?n=. It opens a session and
// returns the selected, fully hydrated question batch.
func (h *Handler) GetNextSession(c *gin.Context) {
	h.syncBank(c)

	n := defaultBatchSize
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid n"})
			return
		}
		n = parsed
	}
	if n > maxBatchSize {
		n = maxBatchSize
	}

	batch, err := h.sessions.NextBatch(c.Request.Context(), n)
	if err != nil {
		h.fail(c, "session/next", err)
		return
	}
	c.JSON(http.StatusOK, NextSessionResponse{
		SessionID: batch.SessionID,
		Questions: questionDTOs(batch.Questions),
	})
}

// PostAnswer handles POST /api/session/answer.
func (h *Handler) PostAnswer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeSec := session.DefaultTimeSec
	if req.TimeSec != nil {
		if *req.TimeSec < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "timeSec must be non-negative"})
			return
		}
		timeSec = *req.TimeSec
	}

	res, err := h.sessions.Answer(c.Request.Context(), req.SessionID, req.QuestionID, req.Correct, timeSec)
	if err != nil {
		h.fail(c, "session/answer", err)
		return
	}
	c.JSON(http.StatusOK, AnswerResponse{P: res.P, Delta: res.Delta})
}

// PostClose handles POST /api/session/close.
func (h *Handler) PostClose(c *gin.Context) {
	var req CloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.sessions.Close(c.Request.Context(), req.SessionID)
	if err != nil {
		h.fail(c, "session/close", err)
		return
	}
	c.JSON(http.StatusOK, CloseResponse{
		NavBefore: res.NavBefore,
		NavAfter:  res.NavAfter,
		Pnl:       res.Pnl,
		TeBefore:  res.TeBefore,
		TeAfter:   res.TeAfter,
	})
}

// GetCategories handles GET /api/categories.
func (h *Handler) GetCategories(c *gin.Context) {
	summaries, err := h.catalog.ListSummaries(c.Request.Context())
	if err != nil {
		h.fail(c, "categories", err)
		return
	}
	rows := make([]CategoryRow, len(summaries))
	for i, s := range summaries {
		rows[i] = CategoryRow{
			ID:            s.ID,
			ParentID:      s.ParentID,
			Name:          s.Name,
			TargetWeight:  s.TargetWeight,
			Active:        s.Active,
			Rating:        s.Rating,
			EmaActivity:   s.EmaActivity,
			QuestionCount: s.QuestionCount,
		}
	}
	c.JSON(http.StatusOK, rows)
}

// PatchCategory handles PATCH /api/categories/:id.
func (h *Handler) PatchCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return
	}

	var req PatchCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid JSON body"})
		return
	}

	patch := store.CategoryPatch{
		Name:         req.Name,
		TargetWeight: req.TargetWeight,
		Active:       req.Active,
	}
	if len(req.ParentID) > 0 {
		if bytes.Equal(req.ParentID, []byte("null")) {
			patch.ClearParent = true
		} else {
			var parentID int
			if err := json.Unmarshal(req.ParentID, &parentID); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid parent_id"})
				return
			}
			patch.ParentID = &parentID
		}
	}

	updated, err := h.catalog.UpdateCategory(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, "categories/patch", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "updated": updated})
}

// GetQuestions handles GET /api/questions?category_id=&n=. Questions are
// sampled from the category and all its descendants.
func (h *Handler) GetQuestions(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Query("category_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id required"})
		return
	}

	n := defaultBatchSize
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid n"})
			return
		}
		n = parsed
	}
	if n > maxQuestionSample {
		n = maxQuestionSample
	}

	rows, err := h.catalog.SampleSubtreeQuestions(c.Request.Context(), categoryID, n)
	if err != nil {
		h.fail(c, "questions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questionDTOs(rows)})
}

// PostImport handles POST /api/questions/import: a forced bank re-import.
func (h *Handler) PostImport(c *gin.Context) {
	res, err := h.bank.Force(c.Request.Context())
	if err != nil {
		h.fail(c, "questions/import", err)
		return
	}
	c.JSON(http.StatusOK, ImportResponse{Ok: true, Created: res.Created, Note: res.Note})
}

// HealthCheck handles GET /healthcheck.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// syncBank opportunistically refreshes the question bank before read-heavy
// routes. Failures are logged and do not block the request.
func (h *Handler) syncBank(c *gin.Context) {
	if h.bank == nil {
		return
	}
	if _, err := h.bank.Sync(c.Request.Context()); err != nil {
		h.log.Warn("question bank sync failed", zap.Error(err))
	}
}

// fail translates engine errors to HTTP statuses: missing entities map to
// 404, lifecycle violations to 409, everything else to 500.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrSessionClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error("request failed", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed: " + op})
	}
}
