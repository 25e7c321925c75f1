package dto

import (
	"time"

	"github.com/assaka/aurareach/internal/models"
)

// Credits never had a validation schema upstream; the typed payloads below
// act only as a column allow-list.

type CreateCreditRequest struct {
	Amount      int        `json:"amount"`
	Type        string     `json:"type"`
	Description *string    `json:"description"`
	Used        bool       `json:"used"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

func (r CreateCreditRequest) Model() *models.Credit {
	return &models.Credit{
		Amount:      r.Amount,
		Type:        r.Type,
		Description: r.Description,
		Used:        r.Used,
		ExpiresAt:   r.ExpiresAt,
	}
}

type UpdateCreditRequest struct {
	Amount      *int       `json:"amount"`
	Type        *string    `json:"type"`
	Description *string    `json:"description"`
	Used        *bool      `json:"used"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

func (r UpdateCreditRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Amount != nil {
		u["amount"] = *r.Amount
	}
	if r.Type != nil {
		u["type"] = *r.Type
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Used != nil {
		u["used"] = *r.Used
	}
	if r.ExpiresAt != nil {
		u["expires_at"] = *r.ExpiresAt
	}
	return u
}
