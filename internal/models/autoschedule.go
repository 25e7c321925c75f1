package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AutoSchedule represents a recurring content generation plan.
// Nothing in this service executes schedules; the rows only carry the plan.
// DB: autoschedules
type AutoSchedule struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string         `gorm:"column:name;size:255;not null" json:"name"`
	KeywordIDs      pq.StringArray `gorm:"column:keyword_ids;type:text[]" json:"keyword_ids,omitempty"`
	DestinationID   *uuid.UUID     `gorm:"column:destination_id;type:uuid" json:"destination_id,omitempty"`
	DataSourceID    *uuid.UUID     `gorm:"column:data_source_id;type:uuid" json:"data_source_id,omitempty"`
	Frequency       string         `gorm:"column:frequency;size:20;default:'weekly'" json:"frequency"`
	DayOfWeek       *int           `gorm:"column:day_of_week" json:"day_of_week,omitempty"`
	TimeOfDay       *string        `gorm:"column:time_of_day;size:5" json:"time_of_day,omitempty"`
	IncludeVideo    bool           `gorm:"column:include_video;default:false" json:"include_video"`
	IncludeDocument bool           `gorm:"column:include_document;default:false" json:"include_document"`
	IsActive        bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AutoSchedule) TableName() string {
	return "autoschedules"
}

// AutoScheduleColumns is the filter/sort allow-list for the autoschedules table.
var AutoScheduleColumns = []string{
	"id", "name", "keyword_ids", "destination_id", "data_source_id",
	"frequency", "day_of_week", "time_of_day", "include_video",
	"include_document", "is_active", "created_at",
}
