package dto

import "github.com/assaka/aurareach/internal/models"

type CreateKeywordRequest struct {
	Keyword          string  `json:"keyword" validate:"required"`
	SearchVolume     int     `json:"search_volume" validate:"min=0"`
	CPC              float64 `json:"cpc" validate:"min=0"`
	Competition      string  `json:"competition" validate:"omitempty,oneof=low medium high"`
	Difficulty       string  `json:"difficulty" validate:"omitempty,oneof=low medium high"`
	Status           string  `json:"status" validate:"omitempty,oneof=active paused archived"`
	Category         *string `json:"category"`
	Notes            *string `json:"notes"`
	Trend            string  `json:"trend" validate:"omitempty,oneof=rising stable declining"`
	OpportunityScore *int    `json:"opportunity_score" validate:"omitempty,min=0,max=100"`
}

func (r CreateKeywordRequest) Model() *models.Keyword {
	return &models.Keyword{
		Keyword:          r.Keyword,
		SearchVolume:     r.SearchVolume,
		CPC:              r.CPC,
		Competition:      r.Competition,
		Difficulty:       r.Difficulty,
		Status:           r.Status,
		Category:         r.Category,
		Notes:            r.Notes,
		Trend:            r.Trend,
		OpportunityScore: r.OpportunityScore,
	}
}

type UpdateKeywordRequest struct {
	Keyword          *string  `json:"keyword"`
	SearchVolume     *int     `json:"search_volume" validate:"omitempty,min=0"`
	CPC              *float64 `json:"cpc" validate:"omitempty,min=0"`
	Competition      *string  `json:"competition" validate:"omitempty,oneof=low medium high"`
	Difficulty       *string  `json:"difficulty" validate:"omitempty,oneof=low medium high"`
	Status           *string  `json:"status" validate:"omitempty,oneof=active paused archived"`
	Category         *string  `json:"category"`
	Notes            *string  `json:"notes"`
	Trend            *string  `json:"trend" validate:"omitempty,oneof=rising stable declining"`
	OpportunityScore *int     `json:"opportunity_score" validate:"omitempty,min=0,max=100"`
}

func (r UpdateKeywordRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Keyword != nil {
		u["keyword"] = *r.Keyword
	}
	if r.SearchVolume != nil {
		u["search_volume"] = *r.SearchVolume
	}
	if r.CPC != nil {
		u["cpc"] = *r.CPC
	}
	if r.Competition != nil {
		u["competition"] = *r.Competition
	}
	if r.Difficulty != nil {
		u["difficulty"] = *r.Difficulty
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.Category != nil {
		u["category"] = *r.Category
	}
	if r.Notes != nil {
		u["notes"] = *r.Notes
	}
	if r.Trend != nil {
		u["trend"] = *r.Trend
	}
	if r.OpportunityScore != nil {
		u["opportunity_score"] = *r.OpportunityScore
	}
	return u
}
