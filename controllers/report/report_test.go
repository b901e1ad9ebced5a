package reportController

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fitscore/database"
	"fitscore/models"
	"fitscore/scoring"
)

func result(rank int, name, industry string, total, max float64, percentage int, tier string) scoring.EvaluationResult {
	return scoring.EvaluationResult{
		Account: models.Account{Name: name, Industry: industry},
		Score: scoring.AccountScore{
			TotalScore: total,
			MaxScore:   max,
			Percentage: percentage,
			Tier:       tier,
			Rank:       rank,
		},
	}
}

func TestBuildCSVFormat(t *testing.T) {
	results := []scoring.EvaluationResult{
		result(1, "Acme Corp", "Software", 10, 10, 100, "A"),
		result(2, "Globex", "Manufacturing", 6, 10, 60, "B"),
		result(3, "Initech", "Finance", 0, 10, 0, "D"),
	}

	// The export layout is consumed by existing downstream tooling and must
	// stay byte-for-byte stable.
	want := "Rank,Company,Industry,Score,Percentage,Tier\n" +
		"1,Acme Corp,Software,\"10/10\",\"100%\",A\n" +
		"2,Globex,Manufacturing,\"6/10\",\"60%\",B\n" +
		"3,Initech,Finance,\"0/10\",\"0%\",D"

	assert.Equal(t, want, BuildCSV(results))
}

func TestBuildCSVFractionalWeights(t *testing.T) {
	results := []scoring.EvaluationResult{
		result(1, "Acme", "Software", 7.5, 10.5, 71, "B"),
	}

	assert.Equal(t, "Rank,Company,Industry,Score,Percentage,Tier\n"+
		"1,Acme,Software,\"7.5/10.5\",\"71%\",B", BuildCSV(results))
}

func TestBuildCSVEmptyResults(t *testing.T) {
	assert.Equal(t, "Rank,Company,Industry,Score,Percentage,Tier", BuildCSV(nil))
}

// setupTestDb swaps the global database for an isolated in-memory sqlite
func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:report_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)

	previous := database.Database
	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() {
		database.Database = previous
		sqlDB.Close()
	})

	return db
}

func seedWizard(t *testing.T, db *gorm.DB) (models.Company, []models.Account, []models.Question) {
	t.Helper()

	company := models.Company{Name: "FitScore Inc", Industry: "Software", OwnerID: 1}
	require.NoError(t, db.Create(&company).Error)

	questions := []models.Question{
		{Text: "Uses a CRM?", Type: models.QuestionTypeBoolean, Weight: 6, CompanyID: company.ID, OwnerID: 1},
		{Text: "Sales headcount", Type: models.QuestionTypeNumber, Weight: 4, CompanyID: company.ID, OwnerID: 1},
	}
	for i := range questions {
		require.NoError(t, db.Create(&questions[i]).Error)
	}

	accounts := []models.Account{
		{Name: "Acme", Industry: "Software", CompanyID: company.ID, OwnerID: 1},
		{Name: "Globex", Industry: "Manufacturing", CompanyID: company.ID, OwnerID: 1},
	}
	for i := range accounts {
		require.NoError(t, db.Create(&accounts[i]).Error)
	}

	return company, accounts, questions
}

func TestReportPipelineRanksAccounts(t *testing.T) {
	db := setupTestDb(t)
	company, accounts, questions := seedWizard(t, db)

	answers := []models.AccountAnswer{
		{AccountID: accounts[0].ID, QuestionID: questions[0].ID, AnswerType: models.QuestionTypeBoolean, BoolValue: true, OwnerID: 1},
		{AccountID: accounts[0].ID, QuestionID: questions[1].ID, AnswerType: models.QuestionTypeNumber, NumberValue: 12, OwnerID: 1},
		{AccountID: accounts[1].ID, QuestionID: questions[0].ID, AnswerType: models.QuestionTypeBoolean, BoolValue: true, OwnerID: 1},
	}
	for i := range answers {
		require.NoError(t, db.Create(&answers[i]).Error)
	}

	dbAccounts, dbQuestions, dbAnswers, err := loadScoringInputs(int(company.ID), 1)
	require.NoError(t, err)

	results := scoring.Evaluate(dbAccounts, dbQuestions, dbAnswers)
	require.Len(t, results, 2)

	assert.Equal(t, "Acme", results[0].Account.Name)
	assert.Equal(t, 100, results[0].Score.Percentage)
	assert.Equal(t, 1, results[0].Score.Rank)

	assert.Equal(t, "Globex", results[1].Account.Name)
	assert.Equal(t, 60, results[1].Score.Percentage)
	assert.Equal(t, 2, results[1].Score.Rank)
}

func TestReportPipelineRecomputesAfterMutation(t *testing.T) {
	db := setupTestDb(t)
	company, accounts, questions := seedWizard(t, db)

	answer := models.AccountAnswer{
		AccountID:  accounts[1].ID,
		QuestionID: questions[0].ID,
		AnswerType: models.QuestionTypeBoolean,
		BoolValue:  false,
		OwnerID:    1,
	}
	require.NoError(t, db.Create(&answer).Error)

	dbAccounts, dbQuestions, dbAnswers, err := loadScoringInputs(int(company.ID), 1)
	require.NoError(t, err)
	before := scoring.Evaluate(dbAccounts, dbQuestions, dbAnswers)
	require.Len(t, before, 2)
	assert.Equal(t, 0, before[1].Score.Percentage)

	// Flip the answer; the next report read must reflect it.
	require.NoError(t, db.Model(&models.AccountAnswer{}).
		Where("id = ?", answer.ID).
		Update("bool_value", true).Error)

	dbAccounts, dbQuestions, dbAnswers, err = loadScoringInputs(int(company.ID), 1)
	require.NoError(t, err)
	after := scoring.Evaluate(dbAccounts, dbQuestions, dbAnswers)

	assert.Equal(t, "Globex", after[0].Account.Name)
	assert.Equal(t, 60, after[0].Score.Percentage)
}

func TestReportPipelineExcludesSoftDeletedRows(t *testing.T) {
	db := setupTestDb(t)
	company, accounts, questions := seedWizard(t, db)

	answer := models.AccountAnswer{
		AccountID:  accounts[0].ID,
		QuestionID: questions[0].ID,
		AnswerType: models.QuestionTypeBoolean,
		BoolValue:  true,
		OwnerID:    1,
	}
	require.NoError(t, db.Create(&answer).Error)

	// Soft-delete the second question: max score shrinks for everyone.
	require.NoError(t, db.Model(&models.Question{}).
		Where("id = ?", questions[1].ID).
		Update("is_deleted", true).Error)

	dbAccounts, dbQuestions, dbAnswers, err := loadScoringInputs(int(company.ID), 1)
	require.NoError(t, err)
	require.Len(t, dbQuestions, 1)

	results := scoring.Evaluate(dbAccounts, dbQuestions, dbAnswers)
	assert.Equal(t, 6.0, results[0].Score.MaxScore)
	assert.Equal(t, 100, results[0].Score.Percentage)
}
