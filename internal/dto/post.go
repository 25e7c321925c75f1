package dto

import (
	"encoding/json"

	"github.com/assaka/aurareach/internal/models"
	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title           string          `json:"title" validate:"required"`
	Content         *string         `json:"content"`
	Keyword         string          `json:"keyword" validate:"required"`
	Status          string          `json:"status" validate:"omitempty,oneof=draft generating ready published failed"`
	DestinationID   *uuid.UUID      `json:"destination_id"`
	DataSourceID    *uuid.UUID      `json:"data_source_id"`
	CampaignID      *uuid.UUID      `json:"campaign_id"`
	VideoURL        *string         `json:"video_url" validate:"omitempty,url"`
	DocumentURL     *string         `json:"document_url" validate:"omitempty,url"`
	CreditsUsed     int             `json:"credits_used" validate:"min=0"`
	PerformanceData json.RawMessage `json:"performance_data"`
}

func (r CreatePostRequest) Model() *models.Post {
	return &models.Post{
		Title:           r.Title,
		Content:         r.Content,
		Keyword:         r.Keyword,
		Status:          r.Status,
		DestinationID:   r.DestinationID,
		DataSourceID:    r.DataSourceID,
		CampaignID:      r.CampaignID,
		VideoURL:        r.VideoURL,
		DocumentURL:     r.DocumentURL,
		CreditsUsed:     r.CreditsUsed,
		PerformanceData: r.PerformanceData,
	}
}

type UpdatePostRequest struct {
	Title           *string         `json:"title"`
	Content         *string         `json:"content"`
	Keyword         *string         `json:"keyword"`
	Status          *string         `json:"status" validate:"omitempty,oneof=draft generating ready published failed"`
	DestinationID   *uuid.UUID      `json:"destination_id"`
	DataSourceID    *uuid.UUID      `json:"data_source_id"`
	CampaignID      *uuid.UUID      `json:"campaign_id"`
	VideoURL        *string         `json:"video_url" validate:"omitempty,url"`
	DocumentURL     *string         `json:"document_url" validate:"omitempty,url"`
	CreditsUsed     *int            `json:"credits_used" validate:"omitempty,min=0"`
	PerformanceData json.RawMessage `json:"performance_data"`
}

func (r UpdatePostRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.Content != nil {
		u["content"] = *r.Content
	}
	if r.Keyword != nil {
		u["keyword"] = *r.Keyword
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.DestinationID != nil {
		u["destination_id"] = *r.DestinationID
	}
	if r.DataSourceID != nil {
		u["data_source_id"] = *r.DataSourceID
	}
	if r.CampaignID != nil {
		u["campaign_id"] = *r.CampaignID
	}
	if r.VideoURL != nil {
		u["video_url"] = *r.VideoURL
	}
	if r.DocumentURL != nil {
		u["document_url"] = *r.DocumentURL
	}
	if r.CreditsUsed != nil {
		u["credits_used"] = *r.CreditsUsed
	}
	if r.PerformanceData != nil {
		u["performance_data"] = r.PerformanceData
	}
	return u
}
