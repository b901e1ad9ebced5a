package models

import "gorm.io/gorm"

// Company is the profile captured in step 1 of the wizard. It is display
// metadata only; scoring never reads it.
type Company struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	Description  string `json:"description"`
	Industry     string `json:"industry"`
	TargetMarket string `json:"target_market"`
	OwnerID      uint   `json:"owner_id" gorm:"index;not null"`
	IsDeleted    bool   `gorm:"default:false"`
}
