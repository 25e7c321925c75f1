package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Lead represents a sales prospect company
// DB: leads
type Lead struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyName     string         `gorm:"column:company_name;size:255;not null" json:"company_name"`
	Website         *string        `gorm:"column:website;size:500" json:"website,omitempty"`
	Industry        *string        `gorm:"column:industry;size:100;index:idx_leads_industry" json:"industry,omitempty"`
	CompanySize     *string        `gorm:"column:company_size;size:20" json:"company_size,omitempty"`
	Location        *string        `gorm:"column:location;size:255" json:"location,omitempty"`
	Revenue         *string        `gorm:"column:revenue;size:100" json:"revenue,omitempty"`
	ContactName     *string        `gorm:"column:contact_name;size:255" json:"contact_name,omitempty"`
	ContactTitle    *string        `gorm:"column:contact_title;size:255" json:"contact_title,omitempty"`
	ContactEmail    *string        `gorm:"column:contact_email;size:255" json:"contact_email,omitempty"`
	ContactLinkedin *string        `gorm:"column:contact_linkedin;size:500" json:"contact_linkedin,omitempty"`
	TechStack       pq.StringArray `gorm:"column:tech_stack;type:text[]" json:"tech_stack,omitempty"`
	SocialIntents   pq.StringArray `gorm:"column:social_intents;type:text[]" json:"social_intents,omitempty"`
	IntentScore     *int           `gorm:"column:intent_score" json:"intent_score,omitempty"`
	Status          string         `gorm:"column:status;size:30;default:'new';index:idx_leads_status" json:"status"`
	Source          *string        `gorm:"column:source;size:100" json:"source,omitempty"`
	Notes           *string        `gorm:"column:notes;type:text" json:"notes,omitempty"`
	LastActivity    *time.Time     `gorm:"column:last_activity" json:"last_activity,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime;index:idx_leads_created,sort:desc" json:"created_at"`
}

func (Lead) TableName() string {
	return "leads"
}

// LeadColumns is the filter/sort allow-list for the leads table.
var LeadColumns = []string{
	"id", "company_name", "website", "industry", "company_size", "location",
	"revenue", "contact_name", "contact_title", "contact_email",
	"contact_linkedin", "tech_stack", "social_intents", "intent_score",
	"status", "source", "notes", "last_activity", "created_at",
}
