package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Post represents a generated content piece
// DB: posts
type Post struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title           string          `gorm:"column:title;size:500;not null" json:"title"`
	Content         *string         `gorm:"column:content;type:text" json:"content,omitempty"`
	Keyword         string          `gorm:"column:keyword;size:255;not null" json:"keyword"`
	Status          string          `gorm:"column:status;size:20;default:'draft';index:idx_posts_status" json:"status"`
	DestinationID   *uuid.UUID      `gorm:"column:destination_id;type:uuid" json:"destination_id,omitempty"`
	DataSourceID    *uuid.UUID      `gorm:"column:data_source_id;type:uuid" json:"data_source_id,omitempty"`
	CampaignID      *uuid.UUID      `gorm:"column:campaign_id;type:uuid" json:"campaign_id,omitempty"`
	VideoURL        *string         `gorm:"column:video_url;size:500" json:"video_url,omitempty"`
	DocumentURL     *string         `gorm:"column:document_url;size:500" json:"document_url,omitempty"`
	CreditsUsed     int             `gorm:"column:credits_used;default:1" json:"credits_used"`
	PerformanceData json.RawMessage `gorm:"column:performance_data;type:jsonb" json:"performance_data,omitempty"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}

// PostColumns is the filter/sort allow-list for the posts table.
var PostColumns = []string{
	"id", "title", "content", "keyword", "status", "destination_id",
	"data_source_id", "campaign_id", "video_url", "document_url",
	"credits_used", "performance_data", "created_at",
}
