// Package qbank imports the curated question bank (a JSON file of
// categorized questions) into the catalog. Sync is marker-driven: the
// caller owns the last-synced marker and passes it in, so there is no
// hidden process-wide state.
package qbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/nmercier/quantfolio/internal/store"
)

// DefaultDifficulty is used when a bank item omits its difficulty.
const DefaultDifficulty = 0.5

// Item is one entry of the question bank file. Category is a
// slash-separated path; missing nodes are created on import.
type Item struct {
	Category   string          `json:"category"`
	Type       string          `json:"type"`
	Prompt     string          `json:"prompt"`
	Choices    []string        `json:"choices,omitempty"`
	Answer     json.RawMessage `json:"answer"`
	Difficulty *float64        `json:"difficulty,omitempty"`
}

// Marker identifies the bank file revision that was last imported
// (modification time in nanoseconds). Zero means never synced.
type Marker int64

// Result reports what a sync did.
type Result struct {
	Synced  bool
	Created int
	Note    string
}

// SyncIfStale imports the bank file at path unless marker already matches
// its current revision. It returns the new marker; on error the old marker
// is returned so the caller retries on the next call. A missing file is
// not an error: the bank is optional.
func SyncIfStale(ctx context.Context, catalog store.CatalogRepo, marker Marker, path string) (Result, Marker, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{Note: "no question bank"}, marker, nil
	}
	if err != nil {
		return Result{}, marker, fmt.Errorf("stat question bank: %w", err)
	}

	next := Marker(info.ModTime().UnixNano())
	if next == marker {
		return Result{Note: "already synced"}, marker, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{}, marker, fmt.Errorf("read question bank: %w", err)
	}
	items, err := Parse(raw)
	if err != nil {
		return Result{}, marker, err
	}

	created, err := importItems(ctx, catalog, items)
	if err != nil {
		return Result{}, marker, err
	}
	return Result{Synced: true, Created: created}, next, nil
}

// importItems resolves category paths and inserts the questions, skipping
// exact (category, prompt) duplicates. Difficulty is clamped to [0,1].
func importItems(ctx context.Context, catalog store.CatalogRepo, items []Item) (int, error) {
	inputs := make([]store.QuestionInput, 0, len(items))
	for _, it := range items {
		parts := SplitCategoryPath(it.Category)
		if len(parts) == 0 {
			continue
		}
		categoryID, err := catalog.EnsureCategoryPath(ctx, parts)
		if err != nil {
			return 0, fmt.Errorf("resolve category %q: %w", it.Category, err)
		}
		inputs = append(inputs, store.QuestionInput{
			CategoryID: categoryID,
			Type:       it.Type,
			Prompt:     it.Prompt,
			Choices:    it.Choices,
			Answer:     string(it.Answer),
			Difficulty: clampDifficulty(it.Difficulty),
		})
	}
	return catalog.InsertQuestions(ctx, inputs)
}

// Syncer owns the sync marker for long-lived callers like the HTTP server.
// It serializes syncs; the marker is explicit instance state, not a global.
type Syncer struct {
	catalog store.CatalogRepo
	path    string

	mu     sync.Mutex
	marker Marker
}

// NewSyncer creates a Syncer for the bank file at path.
func NewSyncer(catalog store.CatalogRepo, path string) *Syncer {
	return &Syncer{catalog: catalog, path: path}
}

// Sync imports the bank if its file changed since the last call.
func (s *Syncer) Sync(ctx context.Context) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, next, err := SyncIfStale(ctx, s.catalog, s.marker, s.path)
	if err != nil {
		return res, err
	}
	s.marker = next
	return res, nil
}

// Force re-imports the bank regardless of the marker. Existing questions
// are still deduplicated, so this only picks up new entries.
func (s *Syncer) Force(ctx context.Context) (Result, error) {
	s.mu.Lock()
	s.marker = 0
	s.mu.Unlock()
	return s.Sync(ctx)
}

// SplitCategoryPath breaks "Rates/Curves/Bootstrapping" into its trimmed
// segments, dropping empty ones.
func SplitCategoryPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func clampDifficulty(d *float64) float64 {
	if d == nil {
		return DefaultDifficulty
	}
	switch {
	case *d < 0:
		return 0
	case *d > 1:
		return 1
	default:
		return *d
	}
}
