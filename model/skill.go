package model

// SkillCard is a titled group of skills shown on the public skills grid.
// It has no activation flag: every card is public the moment it exists.
type SkillCard struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	Title  string  `json:"title" gorm:"not null"`
	Skills string  `json:"skills" gorm:"not null"`
	Link   *string `json:"link"`
}

func (SkillCard) TableName() string {
	return "skill_cards"
}
