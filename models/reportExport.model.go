package models

import (
	"time"

	"gorm.io/gorm"
)

// ReportExport is an audit row recorded every time a ranked report is
// exported as CSV.
type ReportExport struct {
	gorm.Model
	ExportID   string    `json:"export_id" gorm:"size:36;index;not null"` // uuid reference
	CompanyID  uint      `json:"company_id" gorm:"index;not null"`
	OwnerID    uint      `json:"owner_id" gorm:"index;not null"`
	RowCount   int       `json:"row_count"`
	ExportedAt time.Time `json:"exported_at"`
	IsDeleted  bool      `gorm:"default:false"`
}
