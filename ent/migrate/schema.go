// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityRollupsColumns holds the columns for the "activity_rollups" table.
	ActivityRollupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "ema_activity", Type: field.TypeFloat64, Default: 0},
		{Name: "ema_perf", Type: field.TypeFloat64, Default: 0.5},
		{Name: "category_id", Type: field.TypeInt, Unique: true},
	}
	// ActivityRollupsTable holds the schema information for the "activity_rollups" table.
	ActivityRollupsTable = &schema.Table{
		Name:       "activity_rollups",
		Columns:    ActivityRollupsColumns,
		PrimaryKey: []*schema.Column{ActivityRollupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activity_rollups_categories_rollup",
				Columns:    []*schema.Column{ActivityRollupsColumns[3]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_sec", Type: field.TypeInt},
		{Name: "rating_delta", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeInt},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_categories_answers",
				Columns:    []*schema.Column{AnswersColumns[5]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "answers_questions_answers",
				Columns:    []*schema.Column{AnswersColumns[6]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "answers_sessions_answers",
				Columns:    []*schema.Column{AnswersColumns[7]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[7]},
			},
			{
				Name:    "answer_category_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[5]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "target_weight", Type: field.TypeFloat64, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "parent_id", Type: field.TypeInt, Nullable: true},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "categories_categories_children",
				Columns:    []*schema.Column{CategoriesColumns[4]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "category_parent_id_name",
				Unique:  true,
				Columns: []*schema.Column{CategoriesColumns[4], CategoriesColumns[1]},
			},
		},
	}
	// MasteriesColumns holds the columns for the "masteries" table.
	MasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "rating", Type: field.TypeFloat64, Default: 50},
		{Name: "rating_var", Type: field.TypeFloat64, Default: 50},
		{Name: "last_reviewed", Type: field.TypeTime, Nullable: true},
		{Name: "category_id", Type: field.TypeInt, Unique: true},
	}
	// MasteriesTable holds the schema information for the "masteries" table.
	MasteriesTable = &schema.Table{
		Name:       "masteries",
		Columns:    MasteriesColumns,
		PrimaryKey: []*schema.Column{MasteriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "masteries_categories_mastery",
				Columns:    []*schema.Column{MasteriesColumns[4]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "choices", Type: field.TypeJSON, Nullable: true},
		{Name: "answer", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0.5},
		{Name: "category_id", Type: field.TypeInt},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_categories_questions",
				Columns:    []*schema.Column{QuestionsColumns[6]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_category_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[6]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "closed"}, Default: "open"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "nav_before", Type: field.TypeFloat64},
		{Name: "te_before", Type: field.TypeFloat64},
		{Name: "nav_after", Type: field.TypeFloat64, Nullable: true},
		{Name: "te_after", Type: field.TypeFloat64, Nullable: true},
		{Name: "pnl", Type: field.TypeFloat64, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_uid",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityRollupsTable,
		AnswersTable,
		CategoriesTable,
		MasteriesTable,
		QuestionsTable,
		SessionsTable,
	}
)

func init() {
	ActivityRollupsTable.ForeignKeys[0].RefTable = CategoriesTable
	AnswersTable.ForeignKeys[0].RefTable = CategoriesTable
	AnswersTable.ForeignKeys[1].RefTable = QuestionsTable
	AnswersTable.ForeignKeys[2].RefTable = SessionsTable
	CategoriesTable.ForeignKeys[0].RefTable = CategoriesTable
	MasteriesTable.ForeignKeys[0].RefTable = CategoriesTable
	QuestionsTable.ForeignKeys[0].RefTable = CategoriesTable
}
