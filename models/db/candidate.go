package dbmodels

import (
	"time"
)

const ConsentGiven = "yes"

// Candidate анкета кандидата, сохраняется только при согласии на обработку данных
type Candidate struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:text"`
	Email     string `gorm:"type:text;index"`
	Phone     string `gorm:"type:text"`
	Exp       int    // опыт в годах
	Position  string `gorm:"type:text"`
	Location  string `gorm:"type:text"`
	Country   string `gorm:"type:text"`
	TechStack string `gorm:"type:text"`
	Consent   string `gorm:"type:text"`
	Timestamp time.Time
}

func (Candidate) TableName() string {
	return "candidates"
}
