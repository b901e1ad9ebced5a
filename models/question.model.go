package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question types
const (
	QuestionTypeBoolean        = "BOOLEAN"
	QuestionTypeNumber         = "NUMBER"
	QuestionTypeMultipleChoice = "MULTIPLE_CHOICE"
)

// Question is an evaluation criterion built in step 2. Weight contributes to
// both the earned and the maximum possible score.
type Question struct {
	gorm.Model
	Text      string         `json:"text" gorm:"not null"`
	Type      string         `json:"type" gorm:"not null"` // BOOLEAN, NUMBER, MULTIPLE_CHOICE
	Weight    float64        `json:"weight" gorm:"not null"`
	Options   datatypes.JSON `json:"options"` // ordered string array, MULTIPLE_CHOICE only
	CompanyID uint           `json:"company_id" gorm:"index;not null"`
	OwnerID   uint           `json:"owner_id" gorm:"index;not null"`
	IsDeleted bool           `gorm:"default:false"`
}
