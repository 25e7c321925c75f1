package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Destination represents a publishing target (website, WordPress, social channel)
// DB: destinations
type Destination struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Type      string    `gorm:"column:type;size:50;default:'website'" json:"type"`
	URL       *string   `gorm:"column:url;size:500" json:"url,omitempty"`
	APIKey    *string   `gorm:"column:api_key;size:500" json:"api_key,omitempty"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Destination) TableName() string {
	return "destinations"
}

// DestinationColumns is the filter/sort allow-list for the destinations table.
var DestinationColumns = []string{
	"id", "name", "type", "url", "api_key", "is_active", "created_at",
}

// DataSource represents an external data feed used for content generation
// DB: datasources
type DataSource struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string          `gorm:"column:name;size:255;not null" json:"name"`
	Type            string          `gorm:"column:type;size:50;default:'api'" json:"type"`
	URL             *string         `gorm:"column:url;size:500" json:"url,omitempty"`
	APIKey          *string         `gorm:"column:api_key;size:500" json:"api_key,omitempty"`
	Data            json.RawMessage `gorm:"column:data;type:jsonb" json:"data,omitempty"`
	Schema          json.RawMessage `gorm:"column:schema;type:jsonb" json:"schema,omitempty"`
	RecordCount     int             `gorm:"column:record_count;default:0" json:"record_count"`
	RefreshInterval *string         `gorm:"column:refresh_interval;size:20" json:"refresh_interval,omitempty"`
	IsActive        bool            `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DataSource) TableName() string {
	return "datasources"
}

// DataSourceColumns is the filter/sort allow-list for the datasources table.
var DataSourceColumns = []string{
	"id", "name", "type", "url", "api_key", "data", "schema", "record_count",
	"refresh_interval", "is_active", "created_at",
}
