package dto

import (
	"github.com/assaka/aurareach/internal/models"
	"github.com/google/uuid"
)

type CreateAutoScheduleRequest struct {
	Name            string     `json:"name" validate:"required"`
	KeywordIDs      []string   `json:"keyword_ids"`
	DestinationID   *uuid.UUID `json:"destination_id"`
	DataSourceID    *uuid.UUID `json:"data_source_id"`
	Frequency       string     `json:"frequency" validate:"omitempty,oneof=daily weekly bi-weekly monthly"`
	DayOfWeek       *int       `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	TimeOfDay       *string    `json:"time_of_day" validate:"omitempty,datetime=15:04"`
	IncludeVideo    bool       `json:"include_video"`
	IncludeDocument bool       `json:"include_document"`
	IsActive        *bool      `json:"is_active"`
}

func (r CreateAutoScheduleRequest) Model() *models.AutoSchedule {
	m := &models.AutoSchedule{
		Name:            r.Name,
		KeywordIDs:      r.KeywordIDs,
		DestinationID:   r.DestinationID,
		DataSourceID:    r.DataSourceID,
		Frequency:       r.Frequency,
		DayOfWeek:       r.DayOfWeek,
		TimeOfDay:       r.TimeOfDay,
		IncludeVideo:    r.IncludeVideo,
		IncludeDocument: r.IncludeDocument,
		IsActive:        true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

type UpdateAutoScheduleRequest struct {
	Name            *string    `json:"name"`
	KeywordIDs      []string   `json:"keyword_ids"`
	DestinationID   *uuid.UUID `json:"destination_id"`
	DataSourceID    *uuid.UUID `json:"data_source_id"`
	Frequency       *string    `json:"frequency" validate:"omitempty,oneof=daily weekly bi-weekly monthly"`
	DayOfWeek       *int       `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	TimeOfDay       *string    `json:"time_of_day" validate:"omitempty,datetime=15:04"`
	IncludeVideo    *bool      `json:"include_video"`
	IncludeDocument *bool      `json:"include_document"`
	IsActive        *bool      `json:"is_active"`
}

func (r UpdateAutoScheduleRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.KeywordIDs != nil {
		u["keyword_ids"] = pqArray(r.KeywordIDs)
	}
	if r.DestinationID != nil {
		u["destination_id"] = *r.DestinationID
	}
	if r.DataSourceID != nil {
		u["data_source_id"] = *r.DataSourceID
	}
	if r.Frequency != nil {
		u["frequency"] = *r.Frequency
	}
	if r.DayOfWeek != nil {
		u["day_of_week"] = *r.DayOfWeek
	}
	if r.TimeOfDay != nil {
		u["time_of_day"] = *r.TimeOfDay
	}
	if r.IncludeVideo != nil {
		u["include_video"] = *r.IncludeVideo
	}
	if r.IncludeDocument != nil {
		u["include_document"] = *r.IncludeDocument
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	return u
}
