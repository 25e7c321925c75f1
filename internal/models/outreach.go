package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Mailbox represents a connected sending mailbox for outreach
// DB: mailboxes
type Mailbox struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmailAddress    string          `gorm:"column:email_address;size:255;not null" json:"email_address"`
	Provider        *string         `gorm:"column:provider;size:50" json:"provider,omitempty"`
	Status          string          `gorm:"column:status;size:20;default:'connecting'" json:"status"`
	EmailsPerDay    int             `gorm:"column:emails_per_day;default:50" json:"emails_per_day"`
	EmailsSentToday int             `gorm:"column:emails_sent_today;default:0" json:"emails_sent_today"`
	WarmupSettings  json.RawMessage `gorm:"column:warmup_settings;type:jsonb" json:"warmup_settings,omitempty"`
	Analytics       json.RawMessage `gorm:"column:analytics;type:jsonb" json:"analytics,omitempty"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Mailbox) TableName() string {
	return "mailboxes"
}

// MailboxColumns is the filter/sort allow-list for the mailboxes table.
var MailboxColumns = []string{
	"id", "email_address", "provider", "status", "emails_per_day",
	"emails_sent_today", "warmup_settings", "analytics", "created_at",
}

// OutreachCampaign represents a multi-step outreach sequence
// DB: outreachcampaigns
type OutreachCampaign struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string          `gorm:"column:name;size:255;not null" json:"name"`
	Platform  *string         `gorm:"column:platform;size:50" json:"platform,omitempty"`
	Status    string          `gorm:"column:status;size:20;default:'draft'" json:"status"`
	Steps     json.RawMessage `gorm:"column:steps;type:jsonb" json:"steps,omitempty"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OutreachCampaign) TableName() string {
	return "outreachcampaigns"
}

// OutreachCampaignColumns is the filter/sort allow-list for the outreachcampaigns table.
var OutreachCampaignColumns = []string{
	"id", "name", "platform", "status", "steps", "created_at",
}

// LeadCampaign represents a lead's enrollment in an outreach sequence.
// Foreign ids are carried unchecked, matching the rest of the entity layer.
// DB: leadcampaigns
type LeadCampaign struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LeadID       uuid.UUID  `gorm:"column:lead_id;type:uuid;not null;index:idx_leadcampaigns_lead" json:"lead_id"`
	CampaignID   uuid.UUID  `gorm:"column:campaign_id;type:uuid;not null;index:idx_leadcampaigns_campaign" json:"campaign_id"`
	Status       string     `gorm:"column:status;size:20;default:'active'" json:"status"`
	SequenceStep int        `gorm:"column:sequence_step;default:0" json:"sequence_step"`
	SentAt       *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	Replied      bool       `gorm:"column:replied;default:false" json:"replied"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LeadCampaign) TableName() string {
	return "leadcampaigns"
}

// LeadCampaignColumns is the filter/sort allow-list for the leadcampaigns table.
var LeadCampaignColumns = []string{
	"id", "lead_id", "campaign_id", "status", "sequence_step", "sent_at",
	"replied", "created_at",
}

// Conversation represents an outreach thread with a lead
// DB: conversations
type Conversation struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LeadID             *uuid.UUID      `gorm:"column:lead_id;type:uuid;index:idx_conversations_lead" json:"lead_id,omitempty"`
	Status             string          `gorm:"column:status;size:20;default:'open'" json:"status"`
	LastMessageAt      *time.Time      `gorm:"column:last_message_at" json:"last_message_at,omitempty"`
	LastMessagePreview *string         `gorm:"column:last_message_preview;size:500" json:"last_message_preview,omitempty"`
	Messages           json.RawMessage `gorm:"column:messages;type:jsonb" json:"messages,omitempty"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// ConversationColumns is the filter/sort allow-list for the conversations table.
var ConversationColumns = []string{
	"id", "lead_id", "status", "last_message_at", "last_message_preview",
	"messages", "created_at",
}
