package store

import (
	"context"
	"fmt"
	"sort"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/nmercier/quantfolio/ent"
	"github.com/nmercier/quantfolio/ent/activityrollup"
	"github.com/nmercier/quantfolio/ent/category"
	"github.com/nmercier/quantfolio/ent/mastery"
	"github.com/nmercier/quantfolio/ent/question"
)

// Neutral defaults substituted when the lazily-created state rows are
// missing. They match the column defaults in the schema.
const (
	defaultRating      = 50.0
	defaultRatingVar   = 50.0
	defaultEmaActivity = 0.0
	defaultEmaPerf     = 0.5
)

type catalogRepo struct {
	client *ent.Client
}

func (r *catalogRepo) ActiveCategories(ctx context.Context) ([]CategoryState, error) {
	cats, err := r.client.Category.Query().
		Where(category.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active categories: %w", err)
	}

	masteries, err := r.client.Mastery.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery: %w", err)
	}
	rollups, err := r.client.ActivityRollup.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity rollups: %w", err)
	}

	mByCat := make(map[int]*ent.Mastery, len(masteries))
	for _, m := range masteries {
		mByCat[m.CategoryID] = m
	}
	aByCat := make(map[int]*ent.ActivityRollup, len(rollups))
	for _, a := range rollups {
		aByCat[a.CategoryID] = a
	}

	states := make([]CategoryState, 0, len(cats))
	for _, c := range cats {
		states = append(states, joinState(c, mByCat[c.ID], aByCat[c.ID]))
	}

	// Top-level categories first, then by name, matching the catalog view.
	sort.Slice(states, func(i, j int) bool {
		ti, tj := states[i].ParentID == nil, states[j].ParentID == nil
		if ti != tj {
			return ti
		}
		return states[i].Name < states[j].Name
	})
	return states, nil
}

func (r *catalogRepo) State(ctx context.Context, categoryID int) (*CategoryState, error) {
	c, err := r.client.Category.Get(ctx, categoryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
		}
		return nil, fmt.Errorf("get category %d: %w", categoryID, err)
	}

	m, err := r.client.Mastery.Query().
		Where(mastery.CategoryID(categoryID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("get mastery for category %d: %w", categoryID, err)
	}
	a, err := r.client.ActivityRollup.Query().
		Where(activityrollup.CategoryID(categoryID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("get rollup for category %d: %w", categoryID, err)
	}

	st := joinState(c, m, a)
	return &st, nil
}

func (r *catalogRepo) EnsureState(ctx context.Context, categoryID int) error {
	exists, err := r.client.Category.Query().
		Where(category.ID(categoryID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check category %d: %w", categoryID, err)
	}
	if !exists {
		return fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}

	hasMastery, err := r.client.Mastery.Query().
		Where(mastery.CategoryID(categoryID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check mastery for category %d: %w", categoryID, err)
	}
	if !hasMastery {
		_, err := r.client.Mastery.Create().
			SetCategoryID(categoryID).
			Save(ctx)
		// A concurrent ensure may have won the race; that is fine.
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("create mastery for category %d: %w", categoryID, err)
		}
	}

	hasRollup, err := r.client.ActivityRollup.Query().
		Where(activityrollup.CategoryID(categoryID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check rollup for category %d: %w", categoryID, err)
	}
	if !hasRollup {
		_, err := r.client.ActivityRollup.Create().
			SetCategoryID(categoryID).
			Save(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("create rollup for category %d: %w", categoryID, err)
		}
	}
	return nil
}

func (r *catalogRepo) QuestionByID(ctx context.Context, id int) (*QuestionRow, error) {
	q, err := r.client.Question.Query().
		Where(question.ID(id)).
		WithCategory().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	row := questionRow(q)
	return &row, nil
}

func (r *catalogRepo) SampleQuestionIDs(ctx context.Context, categoryID, limit int, dr *DifficultyRange) ([]int, error) {
	q := r.client.Question.Query().
		Where(question.CategoryID(categoryID))
	if dr != nil {
		q = q.Where(
			question.DifficultyGTE(dr.Min),
			question.DifficultyLTE(dr.Max),
		)
	}
	ids, err := q.Order(randomOrder()).Limit(limit).IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("sample questions for category %d: %w", categoryID, err)
	}
	return ids, nil
}

func (r *catalogRepo) SampleSubtreeQuestions(ctx context.Context, categoryID, limit int) ([]QuestionRow, error) {
	ids, err := r.subtreeIDs(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	qs, err := r.client.Question.Query().
		Where(question.CategoryIDIn(ids...)).
		WithCategory().
		Order(randomOrder()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("sample subtree questions for category %d: %w", categoryID, err)
	}

	rows := make([]QuestionRow, len(qs))
	for i, q := range qs {
		rows[i] = questionRow(q)
	}
	return rows, nil
}

// subtreeIDs collects a category id and all its descendants breadth-first.
func (r *catalogRepo) subtreeIDs(ctx context.Context, rootID int) ([]int, error) {
	all := []int{rootID}
	frontier := []int{rootID}
	for len(frontier) > 0 {
		children, err := r.client.Category.Query().
			Where(category.ParentIDIn(frontier...)).
			IDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("query children of %v: %w", frontier, err)
		}
		all = append(all, children...)
		frontier = children
	}
	return all, nil
}

func (r *catalogRepo) ListSummaries(ctx context.Context) ([]CategorySummary, error) {
	states, err := r.ActiveCategories(ctx)
	if err != nil {
		return nil, err
	}

	var counts []struct {
		CategoryID int `json:"category_id"`
		Count      int `json:"count"`
	}
	err = r.client.Question.Query().
		GroupBy(question.FieldCategoryID).
		Aggregate(ent.Count()).
		Scan(ctx, &counts)
	if err != nil {
		return nil, fmt.Errorf("count questions per category: %w", err)
	}
	countByCat := make(map[int]int, len(counts))
	for _, c := range counts {
		countByCat[c.CategoryID] = c.Count
	}

	summaries := make([]CategorySummary, len(states))
	for i, st := range states {
		summaries[i] = CategorySummary{
			CategoryState: st,
			QuestionCount: countByCat[st.ID],
		}
	}
	return summaries, nil
}

func (r *catalogRepo) UpdateCategory(ctx context.Context, id int, patch CategoryPatch) (int, error) {
	u := r.client.Category.Update().
		Where(category.ID(id))

	if patch.Name != nil {
		u.SetName(*patch.Name)
	}
	if patch.TargetWeight != nil {
		u.SetTargetWeight(*patch.TargetWeight)
	}
	if patch.Active != nil {
		u.SetActive(*patch.Active)
	}
	if patch.ClearParent {
		u.ClearParentID()
	} else if patch.ParentID != nil {
		u.SetParentID(*patch.ParentID)
	}

	n, err := u.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update category %d: %w", id, err)
	}
	return n, nil
}

func (r *catalogRepo) EnsureCategoryPath(ctx context.Context, parts []string) (int, error) {
	if len(parts) == 0 {
		return 0, fmt.Errorf("empty category path")
	}

	var parentID *int
	for _, name := range parts {
		q := r.client.Category.Query().Where(category.Name(name))
		if parentID == nil {
			q = q.Where(category.ParentIDIsNil())
		} else {
			q = q.Where(category.ParentID(*parentID))
		}

		c, err := q.Only(ctx)
		switch {
		case err == nil:
			id := c.ID
			parentID = &id
			continue
		case !ent.IsNotFound(err):
			return 0, fmt.Errorf("lookup category %q: %w", name, err)
		}

		create := r.client.Category.Create().
			SetName(name).
			SetTargetWeight(0.0)
		if parentID != nil {
			create = create.SetParentID(*parentID)
		}
		created, err := create.Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("create category %q: %w", name, err)
		}
		if err := r.EnsureState(ctx, created.ID); err != nil {
			return 0, err
		}
		id := created.ID
		parentID = &id
	}
	return *parentID, nil
}

func (r *catalogRepo) InsertQuestions(ctx context.Context, items []QuestionInput) (int, error) {
	existing, err := r.client.Question.Query().
		Select(question.FieldCategoryID, question.FieldPrompt).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query existing questions: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, q := range existing {
		seen[promptKey(q.CategoryID, q.Prompt)] = true
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}

	created := 0
	for _, it := range items {
		key := promptKey(it.CategoryID, it.Prompt)
		if seen[key] {
			continue
		}
		builder := tx.Question.Create().
			SetCategoryID(it.CategoryID).
			SetType(it.Type).
			SetPrompt(it.Prompt).
			SetAnswer(it.Answer).
			SetDifficulty(it.Difficulty)
		if len(it.Choices) > 0 {
			builder = builder.SetChoices(it.Choices)
		}
		if _, err := builder.Save(ctx); err != nil {
			return 0, rollback(tx, fmt.Errorf("insert question %q: %w", it.Prompt, err))
		}
		seen[key] = true
		created++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit questions: %w", err)
	}
	return created, nil
}

func promptKey(categoryID int, prompt string) string {
	return fmt.Sprintf("%d::%s", categoryID, prompt)
}

// randomOrder orders rows by SQLite's RANDOM(), giving a distinct uniform
// sample when combined with LIMIT.
func randomOrder() question.OrderOption {
	return func(s *entsql.Selector) {
		s.OrderExpr(entsql.Expr("RANDOM()"))
	}
}

func joinState(c *ent.Category, m *ent.Mastery, a *ent.ActivityRollup) CategoryState {
	st := CategoryState{
		ID:           c.ID,
		ParentID:     c.ParentID,
		Name:         c.Name,
		TargetWeight: c.TargetWeight,
		Active:       c.Active,
		Rating:       defaultRating,
		RatingVar:    defaultRatingVar,
		EmaActivity:  defaultEmaActivity,
		EmaPerf:      defaultEmaPerf,
	}
	if m != nil {
		st.Rating = m.Rating
		st.RatingVar = m.RatingVar
	}
	if a != nil {
		st.EmaActivity = a.EmaActivity
		st.EmaPerf = a.EmaPerf
	}
	return st
}

func questionRow(q *ent.Question) QuestionRow {
	row := QuestionRow{
		ID:         q.ID,
		CategoryID: q.CategoryID,
		Type:       q.Type,
		Prompt:     q.Prompt,
		Choices:    q.Choices,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
	}
	if q.Edges.Category != nil {
		row.CategoryName = q.Edges.Category.Name
	}
	return row
}
