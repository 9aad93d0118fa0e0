package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satisfaction levels for feedback records.
const (
	SatisfactionNeutral      = "Neutral"
	SatisfactionNotSatisfied = "Not satisfied"
	SatisfactionSatisfied    = "Satisfied"
)

// User input types.
const (
	InputTypeProblem  = "Problem"
	InputTypeFeedback = "Feedback"
)

// StringList is an ordered list of strings persisted as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// UserInput represents a feedback or problem report submitted by a user.
// Answers holds admin-appended replies in submission order.
type UserInput struct {
	ID              uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID  `json:"userId" gorm:"type:char(36);not null;index"`
	Comment         string     `json:"comment" gorm:"size:1024;not null"`
	SatisfactionLvl string     `json:"satisfactionLvl" gorm:"size:50;default:'Neutral'"`
	Answers         StringList `json:"answers" gorm:"type:json"`
	Type            string     `json:"type" gorm:"size:50;not null"`
	Date            string     `json:"date" gorm:"size:64;not null"`
	Resolved        bool       `json:"resolved" gorm:"default:false"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *UserInput) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
