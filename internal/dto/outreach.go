package dto

import (
	"encoding/json"
	"time"

	"github.com/assaka/aurareach/internal/models"
	"github.com/google/uuid"
)

type CreateMailboxRequest struct {
	EmailAddress   string          `json:"email_address"`
	Provider       *string         `json:"provider"`
	Status         string          `json:"status"`
	EmailsPerDay   int             `json:"emails_per_day"`
	WarmupSettings json.RawMessage `json:"warmup_settings"`
	Analytics      json.RawMessage `json:"analytics"`
}

func (r CreateMailboxRequest) Model() *models.Mailbox {
	return &models.Mailbox{
		EmailAddress:   r.EmailAddress,
		Provider:       r.Provider,
		Status:         r.Status,
		EmailsPerDay:   r.EmailsPerDay,
		WarmupSettings: r.WarmupSettings,
		Analytics:      r.Analytics,
	}
}

type UpdateMailboxRequest struct {
	EmailAddress    *string         `json:"email_address"`
	Provider        *string         `json:"provider"`
	Status          *string         `json:"status"`
	EmailsPerDay    *int            `json:"emails_per_day"`
	EmailsSentToday *int            `json:"emails_sent_today"`
	WarmupSettings  json.RawMessage `json:"warmup_settings"`
	Analytics       json.RawMessage `json:"analytics"`
}

func (r UpdateMailboxRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.EmailAddress != nil {
		u["email_address"] = *r.EmailAddress
	}
	if r.Provider != nil {
		u["provider"] = *r.Provider
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.EmailsPerDay != nil {
		u["emails_per_day"] = *r.EmailsPerDay
	}
	if r.EmailsSentToday != nil {
		u["emails_sent_today"] = *r.EmailsSentToday
	}
	if r.WarmupSettings != nil {
		u["warmup_settings"] = r.WarmupSettings
	}
	if r.Analytics != nil {
		u["analytics"] = r.Analytics
	}
	return u
}

type CreateOutreachCampaignRequest struct {
	Name     string          `json:"name"`
	Platform *string         `json:"platform"`
	Status   string          `json:"status"`
	Steps    json.RawMessage `json:"steps"`
}

func (r CreateOutreachCampaignRequest) Model() *models.OutreachCampaign {
	return &models.OutreachCampaign{
		Name:     r.Name,
		Platform: r.Platform,
		Status:   r.Status,
		Steps:    r.Steps,
	}
}

type UpdateOutreachCampaignRequest struct {
	Name     *string         `json:"name"`
	Platform *string         `json:"platform"`
	Status   *string         `json:"status"`
	Steps    json.RawMessage `json:"steps"`
}

func (r UpdateOutreachCampaignRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Platform != nil {
		u["platform"] = *r.Platform
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.Steps != nil {
		u["steps"] = r.Steps
	}
	return u
}

type CreateLeadCampaignRequest struct {
	LeadID       uuid.UUID  `json:"lead_id"`
	CampaignID   uuid.UUID  `json:"campaign_id"`
	Status       string     `json:"status"`
	SequenceStep int        `json:"sequence_step"`
	SentAt       *time.Time `json:"sent_at"`
	Replied      bool       `json:"replied"`
}

func (r CreateLeadCampaignRequest) Model() *models.LeadCampaign {
	return &models.LeadCampaign{
		LeadID:       r.LeadID,
		CampaignID:   r.CampaignID,
		Status:       r.Status,
		SequenceStep: r.SequenceStep,
		SentAt:       r.SentAt,
		Replied:      r.Replied,
	}
}

type UpdateLeadCampaignRequest struct {
	Status       *string    `json:"status"`
	SequenceStep *int       `json:"sequence_step"`
	SentAt       *time.Time `json:"sent_at"`
	Replied      *bool      `json:"replied"`
}

func (r UpdateLeadCampaignRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.SequenceStep != nil {
		u["sequence_step"] = *r.SequenceStep
	}
	if r.SentAt != nil {
		u["sent_at"] = *r.SentAt
	}
	if r.Replied != nil {
		u["replied"] = *r.Replied
	}
	return u
}

type CreateConversationRequest struct {
	LeadID             *uuid.UUID      `json:"lead_id"`
	Status             string          `json:"status"`
	LastMessageAt      *time.Time      `json:"last_message_at"`
	LastMessagePreview *string         `json:"last_message_preview"`
	Messages           json.RawMessage `json:"messages"`
}

func (r CreateConversationRequest) Model() *models.Conversation {
	return &models.Conversation{
		LeadID:             r.LeadID,
		Status:             r.Status,
		LastMessageAt:      r.LastMessageAt,
		LastMessagePreview: r.LastMessagePreview,
		Messages:           r.Messages,
	}
}

type UpdateConversationRequest struct {
	LeadID             *uuid.UUID      `json:"lead_id"`
	Status             *string         `json:"status"`
	LastMessageAt      *time.Time      `json:"last_message_at"`
	LastMessagePreview *string         `json:"last_message_preview"`
	Messages           json.RawMessage `json:"messages"`
}

func (r UpdateConversationRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.LeadID != nil {
		u["lead_id"] = *r.LeadID
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.LastMessageAt != nil {
		u["last_message_at"] = *r.LastMessageAt
	}
	if r.LastMessagePreview != nil {
		u["last_message_preview"] = *r.LastMessagePreview
	}
	if r.Messages != nil {
		u["messages"] = r.Messages
	}
	return u
}
