package scoring

import (
	"math"
	"sort"

	"fitscore/models"
)

// Tier grades derived from percentage
const (
	TierA = "A"
	TierB = "B"
	TierC = "C"
	TierD = "D"
)

// AccountScore is the derived score for one account. It is recomputed on
// every evaluation and never persisted.
type AccountScore struct {
	AccountID  uint    `json:"account_id"`
	TotalScore float64 `json:"total_score"`
	MaxScore   float64 `json:"max_score"`
	Percentage int     `json:"percentage"`
	Tier       string  `json:"tier"`
	Rank       int     `json:"rank"`
}

// EvaluationResult bundles one account with its score and its answers.
type EvaluationResult struct {
	Account models.Account         `json:"account"`
	Score   AccountScore           `json:"score"`
	Answers []models.AccountAnswer `json:"answers"`
}

type answerKey struct {
	accountID  uint
	questionID uint
}

// Evaluate scores every account against the full question set and returns the
// results ranked by percentage descending. Ties keep the input account order,
// and ranks are dense 1..N with no sharing. Orphaned answers (referencing an
// unknown account or question) are never looked up, so they are ignored.
func Evaluate(accounts []models.Account, questions []models.Question, answers []models.AccountAnswer) []EvaluationResult {
	lookup := make(map[answerKey]models.AccountAnswer, len(answers))
	byAccount := make(map[uint][]models.AccountAnswer)
	for _, answer := range answers {
		lookup[answerKey{answer.AccountID, answer.QuestionID}] = answer
		byAccount[answer.AccountID] = append(byAccount[answer.AccountID], answer)
	}

	results := make([]EvaluationResult, 0, len(accounts))
	for _, account := range accounts {
		totalScore := 0.0
		maxScore := 0.0

		for _, question := range questions {
			maxScore += question.Weight

			answer, ok := lookup[answerKey{account.ID, question.ID}]
			if !ok {
				continue
			}
			totalScore += questionScore(question, answer)
		}

		// maxScore <= 0 is clamped to a 0% result so a zero or negative
		// weight sum never divides.
		percentage := 0
		if maxScore > 0 {
			percentage = int(math.Round(100 * totalScore / maxScore))
		}

		results = append(results, EvaluationResult{
			Account: account,
			Score: AccountScore{
				AccountID:  account.ID,
				TotalScore: totalScore,
				MaxScore:   maxScore,
				Percentage: percentage,
				Tier:       TierFor(percentage),
			},
			Answers: byAccount[account.ID],
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.Percentage > results[j].Score.Percentage
	})
	for i := range results {
		results[i].Score.Rank = i + 1
	}

	return results
}

// questionScore awards the full question weight or nothing. An answer of the
// wrong type scores 0 because its typed value column holds the zero value.
func questionScore(question models.Question, answer models.AccountAnswer) float64 {
	switch question.Type {
	case models.QuestionTypeBoolean:
		if answer.BoolValue {
			return question.Weight
		}
	case models.QuestionTypeNumber:
		if answer.NumberValue > 0 {
			return question.Weight
		}
	case models.QuestionTypeMultipleChoice:
		// Any non-empty selected option earns the weight; options are not
		// ranked against each other.
		if answer.TextValue != "" {
			return question.Weight
		}
	}
	return 0
}

// TierFor maps a percentage to its letter grade. Thresholds are fixed policy.
func TierFor(percentage int) string {
	switch {
	case percentage >= 80:
		return TierA
	case percentage >= 60:
		return TierB
	case percentage >= 40:
		return TierC
	default:
		return TierD
	}
}

// TierSummary counts results per tier for the report header.
func TierSummary(results []EvaluationResult) map[string]int {
	summary := map[string]int{TierA: 0, TierB: 0, TierC: 0, TierD: 0}
	for _, result := range results {
		summary[result.Score.Tier]++
	}
	return summary
}
