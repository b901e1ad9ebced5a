package models

import "gorm.io/gorm"

// Account is one scored subject, recorded in step 3.
type Account struct {
	gorm.Model
	Name             string `json:"name" gorm:"not null"`
	Industry         string `json:"industry"`
	CompanySize      string `json:"company_size"`
	Revenue          string `json:"revenue"`
	Location         string `json:"location"`
	Website          string `json:"website"`
	Notes            string `json:"notes"`
	CompanyID        uint   `json:"company_id" gorm:"index;not null"`
	OwnerID          uint   `json:"owner_id" gorm:"index;not null"`
	WebsiteChecked   bool   `json:"website_checked" gorm:"default:false"`
	WebsiteReachable bool   `json:"website_reachable" gorm:"default:false"`
	IsDeleted        bool   `gorm:"default:false"`
}
