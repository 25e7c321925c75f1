package models

import (
	"time"

	"github.com/google/uuid"
)

// Credit represents a content-generation credit grant or purchase
// DB: credits
type Credit struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Amount      int        `gorm:"column:amount;not null" json:"amount"`
	Type        string     `gorm:"column:type;size:20;default:'purchase'" json:"type"`
	Description *string    `gorm:"column:description;size:500" json:"description,omitempty"`
	Used        bool       `gorm:"column:used;default:false" json:"used"`
	ExpiresAt   *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Credit) TableName() string {
	return "credits"
}

// CreditColumns is the filter/sort allow-list for the credits table.
var CreditColumns = []string{
	"id", "amount", "type", "description", "used", "expires_at", "created_at",
}
