package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign represents a paid ad campaign
// DB: campaigns
type Campaign struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"column:name;size:255;not null" json:"name"`
	Source      string     `gorm:"column:source;size:50;not null" json:"source"`
	Budget      float64    `gorm:"column:budget;type:numeric(12,2);not null" json:"budget"`
	Spend       float64    `gorm:"column:spend;type:numeric(12,2);default:0" json:"spend"`
	Impressions int        `gorm:"column:impressions;default:0" json:"impressions"`
	Clicks      int        `gorm:"column:clicks;default:0" json:"clicks"`
	Conversions int        `gorm:"column:conversions;default:0" json:"conversions"`
	Status      string     `gorm:"column:status;size:20;default:'draft';index:idx_campaigns_status" json:"status"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// CampaignColumns is the filter/sort allow-list for the campaigns table.
var CampaignColumns = []string{
	"id", "name", "source", "budget", "spend", "impressions", "clicks",
	"conversions", "status", "start_date", "end_date", "created_at",
}
