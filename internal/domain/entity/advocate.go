package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Advocate is a read-only directory record. The table is owned outside this
// service; specialties live in the jsonb "payload" column.
type Advocate struct {
	ID                int                         `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName         string                      `gorm:"type:text;not null" json:"firstName"`
	LastName          string                      `gorm:"type:text;not null" json:"lastName"`
	City              string                      `gorm:"type:text;not null" json:"city"`
	Degree            string                      `gorm:"type:text;not null" json:"degree"`
	Specialties       datatypes.JSONSlice[string] `gorm:"column:payload;not null" json:"specialties"`
	YearsOfExperience int                         `gorm:"not null" json:"yearsOfExperience"`
	PhoneNumber       int64                       `gorm:"not null" json:"phoneNumber"`
	CreatedAt         time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
}

func (Advocate) TableName() string {
	return "advocates"
}
