package dto

import (
	"time"

	"github.com/assaka/aurareach/internal/models"
)

type CreateCampaignRequest struct {
	Name      string     `json:"name" validate:"required"`
	Source    string     `json:"source" validate:"required,oneof='Google Ads' 'Facebook Ads' 'LinkedIn Ads' 'Twitter Ads' 'Other'"`
	Budget    float64    `json:"budget" validate:"required,gt=0"`
	Status    string     `json:"status" validate:"omitempty,oneof=active paused completed draft"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// validateCrossFields enforces end_date after start_date; like the rest of
// the schema this only runs at create time.
func (r CreateCampaignRequest) validateCrossFields() error {
	if r.StartDate != nil && r.EndDate != nil && !r.EndDate.After(*r.StartDate) {
		return &ValidationError{Message: `field "end_date" must be after "start_date"`}
	}
	return nil
}

func (r CreateCampaignRequest) Model() *models.Campaign {
	return &models.Campaign{
		Name:      r.Name,
		Source:    r.Source,
		Budget:    r.Budget,
		Status:    r.Status,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

type UpdateCampaignRequest struct {
	Name        *string    `json:"name"`
	Source      *string    `json:"source" validate:"omitempty,oneof='Google Ads' 'Facebook Ads' 'LinkedIn Ads' 'Twitter Ads' 'Other'"`
	Budget      *float64   `json:"budget" validate:"omitempty,gt=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=active paused completed draft"`
	Spend       *float64   `json:"spend" validate:"omitempty,min=0"`
	Impressions *int       `json:"impressions" validate:"omitempty,min=0"`
	Clicks      *int       `json:"clicks" validate:"omitempty,min=0"`
	Conversions *int       `json:"conversions" validate:"omitempty,min=0"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

func (r UpdateCampaignRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Source != nil {
		u["source"] = *r.Source
	}
	if r.Budget != nil {
		u["budget"] = *r.Budget
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.Spend != nil {
		u["spend"] = *r.Spend
	}
	if r.Impressions != nil {
		u["impressions"] = *r.Impressions
	}
	if r.Clicks != nil {
		u["clicks"] = *r.Clicks
	}
	if r.Conversions != nil {
		u["conversions"] = *r.Conversions
	}
	if r.StartDate != nil {
		u["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		u["end_date"] = *r.EndDate
	}
	return u
}
