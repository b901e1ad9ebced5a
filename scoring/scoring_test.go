package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fitscore/models"
)

func account(id uint, name string) models.Account {
	return models.Account{Model: gorm.Model{ID: id}, Name: name, CompanyID: 1, OwnerID: 1}
}

func question(id uint, qType string, weight float64) models.Question {
	return models.Question{Model: gorm.Model{ID: id}, Text: "q", Type: qType, Weight: weight, CompanyID: 1, OwnerID: 1}
}

func boolAnswer(accountID, questionID uint, value bool) models.AccountAnswer {
	return models.AccountAnswer{AccountID: accountID, QuestionID: questionID, AnswerType: models.QuestionTypeBoolean, BoolValue: value, OwnerID: 1}
}

func numberAnswer(accountID, questionID uint, value float64) models.AccountAnswer {
	return models.AccountAnswer{AccountID: accountID, QuestionID: questionID, AnswerType: models.QuestionTypeNumber, NumberValue: value, OwnerID: 1}
}

func choiceAnswer(accountID, questionID uint, option string) models.AccountAnswer {
	return models.AccountAnswer{AccountID: accountID, QuestionID: questionID, AnswerType: models.QuestionTypeMultipleChoice, TextValue: option, OwnerID: 1}
}

func TestEvaluateBooleanAnsweredTrue(t *testing.T) {
	results := Evaluate(
		[]models.Account{account(1, "Acme")},
		[]models.Question{question(1, models.QuestionTypeBoolean, 10)},
		[]models.AccountAnswer{boolAnswer(1, 1, true)},
	)

	require.Len(t, results, 1)
	score := results[0].Score
	assert.Equal(t, 10.0, score.TotalScore)
	assert.Equal(t, 10.0, score.MaxScore)
	assert.Equal(t, 100, score.Percentage)
	assert.Equal(t, TierA, score.Tier)
	assert.Equal(t, 1, score.Rank)
}

func TestEvaluateBooleanAnsweredFalse(t *testing.T) {
	results := Evaluate(
		[]models.Account{account(1, "Acme")},
		[]models.Question{question(1, models.QuestionTypeBoolean, 10)},
		[]models.AccountAnswer{boolAnswer(1, 1, false)},
	)

	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Score.TotalScore)
	assert.Equal(t, 0, results[0].Score.Percentage)
	assert.Equal(t, TierD, results[0].Score.Tier)
}

func TestEvaluateMixedQuestionTypes(t *testing.T) {
	results := Evaluate(
		[]models.Account{account(1, "Acme")},
		[]models.Question{
			question(1, models.QuestionTypeBoolean, 6),
			question(2, models.QuestionTypeNumber, 4),
		},
		[]models.AccountAnswer{
			boolAnswer(1, 1, true),
			numberAnswer(1, 2, 5),
		},
	)

	require.Len(t, results, 1)
	assert.Equal(t, 10.0, results[0].Score.TotalScore)
	assert.Equal(t, 10.0, results[0].Score.MaxScore)
	assert.Equal(t, 100, results[0].Score.Percentage)
	assert.Equal(t, TierA, results[0].Score.Tier)
}

func TestEvaluateUnansweredQuestionsScoreZero(t *testing.T) {
	results := Evaluate(
		[]models.Account{account(1, "Acme")},
		[]models.Question{
			question(1, models.QuestionTypeBoolean, 5),
			question(2, models.QuestionTypeNumber, 5),
		},
		nil,
	)

	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Score.TotalScore)
	assert.Equal(t, 10.0, results[0].Score.MaxScore)
	assert.Equal(t, 0, results[0].Score.Percentage)
	assert.Equal(t, TierD, results[0].Score.Tier)
}

func TestEvaluateNumberRules(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		want  float64
	}{
		{"positive earns weight", 5, 4},
		{"zero earns nothing", 0, 0},
		{"negative earns nothing", -3, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results := Evaluate(
				[]models.Account{account(1, "Acme")},
				[]models.Question{question(1, models.QuestionTypeNumber, 4)},
				[]models.AccountAnswer{numberAnswer(1, 1, tc.value)},
			)
			require.Len(t, results, 1)
			assert.Equal(t, tc.want, results[0].Score.TotalScore)
		})
	}
}

func TestEvaluateMultipleChoiceAnySelectionScoresFull(t *testing.T) {
	questions := []models.Question{question(1, models.QuestionTypeMultipleChoice, 8)}

	selected := Evaluate([]models.Account{account(1, "Acme")}, questions,
		[]models.AccountAnswer{choiceAnswer(1, 1, "Enterprise")})
	require.Len(t, selected, 1)
	assert.Equal(t, 8.0, selected[0].Score.TotalScore)

	// Option identity is irrelevant; a different option scores the same.
	other := Evaluate([]models.Account{account(1, "Acme")}, questions,
		[]models.AccountAnswer{choiceAnswer(1, 1, "SMB")})
	assert.Equal(t, selected[0].Score.TotalScore, other[0].Score.TotalScore)

	empty := Evaluate([]models.Account{account(1, "Acme")}, questions,
		[]models.AccountAnswer{choiceAnswer(1, 1, "")})
	assert.Equal(t, 0.0, empty[0].Score.TotalScore)
}

func TestEvaluateWrongTypedAnswerScoresZero(t *testing.T) {
	// A choice answer recorded against a boolean question carries no bool
	// value, so it evaluates as falsy rather than erroring.
	results := Evaluate(
		[]models.Account{account(1, "Acme")},
		[]models.Question{question(1, models.QuestionTypeBoolean, 10)},
		[]models.AccountAnswer{choiceAnswer(1, 1, "true")},
	)

	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Score.TotalScore)
}

func TestEvaluateTieKeepsInputOrder(t *testing.T) {
	questions := []models.Question{question(1, models.QuestionTypeBoolean, 4)}
	answers := []models.AccountAnswer{
		boolAnswer(1, 1, true),
		boolAnswer(2, 1, true),
	}

	results := Evaluate([]models.Account{account(1, "X"), account(2, "Y")}, questions, answers)

	require.Len(t, results, 2)
	assert.Equal(t, "X", results[0].Account.Name)
	assert.Equal(t, 1, results[0].Score.Rank)
	assert.Equal(t, "Y", results[1].Account.Name)
	assert.Equal(t, 2, results[1].Score.Rank)
	assert.Equal(t, results[0].Score.Percentage, results[1].Score.Percentage)
}

func TestEvaluateRanksByPercentageDescending(t *testing.T) {
	questions := []models.Question{
		question(1, models.QuestionTypeBoolean, 6),
		question(2, models.QuestionTypeNumber, 4),
	}
	answers := []models.AccountAnswer{
		boolAnswer(1, 1, false), // Low: 0%
		numberAnswer(2, 2, 3),   // Mid: 40%
		boolAnswer(3, 1, true),  // High: 100%
		numberAnswer(3, 2, 1),
	}

	results := Evaluate(
		[]models.Account{account(1, "Low"), account(2, "Mid"), account(3, "High")},
		questions, answers,
	)

	require.Len(t, results, 3)
	assert.Equal(t, "High", results[0].Account.Name)
	assert.Equal(t, "Mid", results[1].Account.Name)
	assert.Equal(t, "Low", results[2].Account.Name)
	for i, result := range results {
		assert.Equal(t, i+1, result.Score.Rank)
	}
}

func TestEvaluateZeroQuestions(t *testing.T) {
	results := Evaluate(
		[]models.Account{account(1, "A"), account(2, "B")},
		nil, nil,
	)

	require.Len(t, results, 2)
	for i, result := range results {
		assert.Equal(t, 0.0, result.Score.MaxScore)
		assert.Equal(t, 0, result.Score.Percentage)
		assert.Equal(t, TierD, result.Score.Tier)
		assert.Equal(t, i+1, result.Score.Rank)
	}
	assert.Equal(t, "A", results[0].Account.Name)
}

func TestEvaluateNegativeWeightSumClampsToZeroPercent(t *testing.T) {
	results := Evaluate(
		[]models.Account{account(1, "Acme")},
		[]models.Question{question(1, models.QuestionTypeBoolean, -5)},
		[]models.AccountAnswer{boolAnswer(1, 1, true)},
	)

	require.Len(t, results, 1)
	assert.Equal(t, -5.0, results[0].Score.MaxScore)
	assert.Equal(t, 0, results[0].Score.Percentage)
	assert.Equal(t, TierD, results[0].Score.Tier)
}

func TestEvaluateIgnoresOrphanedAnswers(t *testing.T) {
	results := Evaluate(
		[]models.Account{account(1, "Acme")},
		[]models.Question{question(1, models.QuestionTypeBoolean, 10)},
		[]models.AccountAnswer{
			boolAnswer(1, 1, true),
			boolAnswer(99, 1, true), // unknown account
			boolAnswer(1, 42, true), // unknown question
		},
	)

	require.Len(t, results, 1)
	assert.Equal(t, 10.0, results[0].Score.TotalScore)
	assert.Equal(t, 100, results[0].Score.Percentage)
}

func TestEvaluateAttachesMatchingAnswers(t *testing.T) {
	answers := []models.AccountAnswer{
		boolAnswer(1, 1, true),
		boolAnswer(2, 1, false),
	}
	results := Evaluate(
		[]models.Account{account(1, "A"), account(2, "B")},
		[]models.Question{question(1, models.QuestionTypeBoolean, 10)},
		answers,
	)

	require.Len(t, results, 2)
	for _, result := range results {
		require.Len(t, result.Answers, 1)
		assert.Equal(t, result.Account.ID, result.Answers[0].AccountID)
	}
}

func TestEvaluatePercentageRounding(t *testing.T) {
	// 2 of 3 equally weighted questions answered: 66.67% rounds to 67.
	questions := []models.Question{
		question(1, models.QuestionTypeBoolean, 1),
		question(2, models.QuestionTypeBoolean, 1),
		question(3, models.QuestionTypeBoolean, 1),
	}
	answers := []models.AccountAnswer{
		boolAnswer(1, 1, true),
		boolAnswer(1, 2, true),
	}

	results := Evaluate([]models.Account{account(1, "Acme")}, questions, answers)

	require.Len(t, results, 1)
	assert.Equal(t, 67, results[0].Score.Percentage)
	assert.Equal(t, TierB, results[0].Score.Tier)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	accounts := []models.Account{account(1, "A"), account(2, "B")}
	questions := []models.Question{
		question(1, models.QuestionTypeBoolean, 6),
		question(2, models.QuestionTypeMultipleChoice, 4),
	}
	answers := []models.AccountAnswer{
		boolAnswer(1, 1, true),
		choiceAnswer(2, 2, "Mid-market"),
	}

	first := Evaluate(accounts, questions, answers)
	second := Evaluate(accounts, questions, answers)

	assert.Equal(t, first, second)
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		percentage int
		want       string
	}{
		{100, TierA}, {80, TierA},
		{79, TierB}, {60, TierB},
		{59, TierC}, {40, TierC},
		{39, TierD}, {0, TierD},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.percentage), "percentage %d", tc.percentage)
	}
}

func TestTierSummaryCountsEveryTier(t *testing.T) {
	questions := []models.Question{question(1, models.QuestionTypeBoolean, 10)}
	answers := []models.AccountAnswer{
		boolAnswer(1, 1, true),
		boolAnswer(2, 1, false),
	}

	results := Evaluate([]models.Account{account(1, "A"), account(2, "B")}, questions, answers)
	summary := TierSummary(results)

	assert.Equal(t, 1, summary[TierA])
	assert.Equal(t, 0, summary[TierB])
	assert.Equal(t, 0, summary[TierC])
	assert.Equal(t, 1, summary[TierD])
}
