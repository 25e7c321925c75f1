package models

import (
	"time"

	"github.com/google/uuid"
)

// Keyword represents a tracked SEO keyword
// DB: keywords
type Keyword struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Keyword          string     `gorm:"column:keyword;size:255;not null" json:"keyword"`
	SearchVolume     int        `gorm:"column:search_volume;default:0" json:"search_volume"`
	CPC              float64    `gorm:"column:cpc;type:numeric(10,2);default:0" json:"cpc"`
	Competition      string     `gorm:"column:competition;size:20;default:'medium'" json:"competition"`
	Difficulty       string     `gorm:"column:difficulty;size:20;default:'medium'" json:"difficulty"`
	Status           string     `gorm:"column:status;size:20;default:'active';index:idx_keywords_status" json:"status"`
	Category         *string    `gorm:"column:category;size:100" json:"category,omitempty"`
	Notes            *string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	Trend            string     `gorm:"column:trend;size:20;default:'stable'" json:"trend"`
	OpportunityScore *int       `gorm:"column:opportunity_score" json:"opportunity_score,omitempty"`
	LastUpdated      *time.Time `gorm:"column:last_updated" json:"last_updated,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime;index:idx_keywords_created,sort:desc" json:"created_at"`
}

func (Keyword) TableName() string {
	return "keywords"
}

// KeywordColumns is the filter/sort allow-list for the keywords table.
// Column names are fixed here so caller-supplied keys never reach SQL.
var KeywordColumns = []string{
	"id", "keyword", "search_volume", "cpc", "competition", "difficulty",
	"status", "category", "notes", "trend", "opportunity_score", "last_updated",
	"created_at",
}
