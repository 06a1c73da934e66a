// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nmercier/quantfolio/ent/activityrollup"
	"github.com/nmercier/quantfolio/ent/answer"
	"github.com/nmercier/quantfolio/ent/category"
	"github.com/nmercier/quantfolio/ent/mastery"
	"github.com/nmercier/quantfolio/ent/question"
	"github.com/nmercier/quantfolio/ent/schema"
	"github.com/nmercier/quantfolio/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityrollupFields := schema.ActivityRollup{}.Fields()
	_ = activityrollupFields
	// activityrollupDescEmaActivity is the schema descriptor for ema_activity field.
	activityrollupDescEmaActivity := activityrollupFields[1].Descriptor()
	// activityrollup.DefaultEmaActivity holds the default value on creation for the ema_activity field.
	activityrollup.DefaultEmaActivity = activityrollupDescEmaActivity.Default.(float64)
	// activityrollupDescEmaPerf is the schema descriptor for ema_perf field.
	activityrollupDescEmaPerf := activityrollupFields[2].Descriptor()
	// activityrollup.DefaultEmaPerf holds the default value on creation for the ema_perf field.
	activityrollup.DefaultEmaPerf = activityrollupDescEmaPerf.Default.(float64)
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescCreatedAt is the schema descriptor for created_at field.
	answerDescCreatedAt := answerFields[6].Descriptor()
	// answer.DefaultCreatedAt holds the default value on creation for the created_at field.
	answer.DefaultCreatedAt = answerDescCreatedAt.Default.(func() time.Time)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescTargetWeight is the schema descriptor for target_weight field.
	categoryDescTargetWeight := categoryFields[2].Descriptor()
	// category.DefaultTargetWeight holds the default value on creation for the target_weight field.
	category.DefaultTargetWeight = categoryDescTargetWeight.Default.(float64)
	// categoryDescActive is the schema descriptor for active field.
	categoryDescActive := categoryFields[3].Descriptor()
	// category.DefaultActive holds the default value on creation for the active field.
	category.DefaultActive = categoryDescActive.Default.(bool)
	masteryFields := schema.Mastery{}.Fields()
	_ = masteryFields
	// masteryDescRating is the schema descriptor for rating field.
	masteryDescRating := masteryFields[1].Descriptor()
	// mastery.DefaultRating holds the default value on creation for the rating field.
	mastery.DefaultRating = masteryDescRating.Default.(float64)
	// masteryDescRatingVar is the schema descriptor for rating_var field.
	masteryDescRatingVar := masteryFields[2].Descriptor()
	// mastery.DefaultRatingVar holds the default value on creation for the rating_var field.
	mastery.DefaultRatingVar = masteryDescRatingVar.Default.(float64)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescType is the schema descriptor for type field.
	questionDescType := questionFields[1].Descriptor()
	// question.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	question.TypeValidator = questionDescType.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[2].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescAnswer is the schema descriptor for answer field.
	questionDescAnswer := questionFields[4].Descriptor()
	// question.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	question.AnswerValidator = questionDescAnswer.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[5].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(float64)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescUID is the schema descriptor for uid field.
	sessionDescUID := sessionFields[0].Descriptor()
	// session.UIDValidator is a validator for the "uid" field. It is called by the builders before save.
	session.UIDValidator = sessionDescUID.Validators[0].(func(string) error)
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[2].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
}
