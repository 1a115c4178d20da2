package model

import "time"

// Experience is one entry on the work timeline. StartDate is free text
// ("Jan 2023", "2021 - now"), not a parsed date. Order drives manual
// sorting; nil means the entry has not been placed yet.
type Experience struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Company     string    `json:"company" gorm:"not null"`
	StartDate   string    `json:"startDate"`
	Description string    `json:"description"`
	Tools       []string  `json:"tools" gorm:"serializer:json"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:false"`
	Order       *int      `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Experience) TableName() string {
	return "experiences"
}
