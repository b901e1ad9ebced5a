package models

import "gorm.io/gorm"

// AccountAnswer stores one answer per (account, question) pair. AnswerType is
// copied from the owning question when the answer is recorded, and exactly one
// of the value columns is meaningful for that type. Re-recording an answer
// updates the existing row.
type AccountAnswer struct {
	gorm.Model
	AccountID   uint    `json:"account_id" gorm:"index:idx_account_question;not null"`
	QuestionID  uint    `json:"question_id" gorm:"index:idx_account_question;not null"`
	AnswerType  string  `json:"answer_type" gorm:"not null"` // BOOLEAN, NUMBER, MULTIPLE_CHOICE
	BoolValue   bool    `json:"bool_value" gorm:"default:false"`
	NumberValue float64 `json:"number_value" gorm:"default:0"`
	TextValue   string  `json:"text_value" gorm:"default:''"` // selected option
	OwnerID     uint    `json:"owner_id" gorm:"index;not null"`
	IsDeleted   bool    `gorm:"default:false"`
}
