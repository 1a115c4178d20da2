package model

import "time"

// Portfolio is one project in the gallery. Category is free text; the
// public page derives its tabs from whatever values exist.
type Portfolio struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	Technologies []string  `json:"technologies" gorm:"serializer:json"`
	Category     string    `json:"category" gorm:"not null"`
	ImageUrls    []string  `json:"imageUrls" gorm:"serializer:json"`
	ProjectUrl   *string   `json:"projectUrl"`
	GithubUrl    *string   `json:"githubUrl"`
	IsActive     bool      `json:"isActive" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}
