package dto

import "github.com/assaka/aurareach/internal/models"

type CreateLeadRequest struct {
	CompanyName     string   `json:"company_name" validate:"required"`
	Website         *string  `json:"website" validate:"omitempty,url"`
	Industry        *string  `json:"industry"`
	CompanySize     *string  `json:"company_size" validate:"omitempty,oneof=1-10 11-50 51-200 201-1000 1000+"`
	Location        *string  `json:"location"`
	Revenue         *string  `json:"revenue"`
	ContactName     *string  `json:"contact_name"`
	ContactTitle    *string  `json:"contact_title"`
	ContactEmail    *string  `json:"contact_email" validate:"omitempty,email"`
	ContactLinkedin *string  `json:"contact_linkedin" validate:"omitempty,url"`
	TechStack       []string `json:"tech_stack"`
	SocialIntents   []string `json:"social_intents"`
	IntentScore     *int     `json:"intent_score" validate:"omitempty,min=0,max=100"`
	Status          string   `json:"status" validate:"omitempty,oneof=new contacted interested meeting_booked not_interested unqualified converted"`
	Source          *string  `json:"source"`
	Notes           *string  `json:"notes"`
}

func (r CreateLeadRequest) Model() *models.Lead {
	return &models.Lead{
		CompanyName:     r.CompanyName,
		Website:         r.Website,
		Industry:        r.Industry,
		CompanySize:     r.CompanySize,
		Location:        r.Location,
		Revenue:         r.Revenue,
		ContactName:     r.ContactName,
		ContactTitle:    r.ContactTitle,
		ContactEmail:    r.ContactEmail,
		ContactLinkedin: r.ContactLinkedin,
		TechStack:       r.TechStack,
		SocialIntents:   r.SocialIntents,
		IntentScore:     r.IntentScore,
		Status:          r.Status,
		Source:          r.Source,
		Notes:           r.Notes,
	}
}

type UpdateLeadRequest struct {
	CompanyName     *string  `json:"company_name"`
	Website         *string  `json:"website" validate:"omitempty,url"`
	Industry        *string  `json:"industry"`
	CompanySize     *string  `json:"company_size" validate:"omitempty,oneof=1-10 11-50 51-200 201-1000 1000+"`
	Location        *string  `json:"location"`
	Revenue         *string  `json:"revenue"`
	ContactName     *string  `json:"contact_name"`
	ContactTitle    *string  `json:"contact_title"`
	ContactEmail    *string  `json:"contact_email" validate:"omitempty,email"`
	ContactLinkedin *string  `json:"contact_linkedin" validate:"omitempty,url"`
	TechStack       []string `json:"tech_stack"`
	SocialIntents   []string `json:"social_intents"`
	IntentScore     *int     `json:"intent_score" validate:"omitempty,min=0,max=100"`
	Status          *string  `json:"status" validate:"omitempty,oneof=new contacted interested meeting_booked not_interested unqualified converted"`
	Source          *string  `json:"source"`
	Notes           *string  `json:"notes"`
}

func (r UpdateLeadRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.CompanyName != nil {
		u["company_name"] = *r.CompanyName
	}
	if r.Website != nil {
		u["website"] = *r.Website
	}
	if r.Industry != nil {
		u["industry"] = *r.Industry
	}
	if r.CompanySize != nil {
		u["company_size"] = *r.CompanySize
	}
	if r.Location != nil {
		u["location"] = *r.Location
	}
	if r.Revenue != nil {
		u["revenue"] = *r.Revenue
	}
	if r.ContactName != nil {
		u["contact_name"] = *r.ContactName
	}
	if r.ContactTitle != nil {
		u["contact_title"] = *r.ContactTitle
	}
	if r.ContactEmail != nil {
		u["contact_email"] = *r.ContactEmail
	}
	if r.ContactLinkedin != nil {
		u["contact_linkedin"] = *r.ContactLinkedin
	}
	if r.TechStack != nil {
		u["tech_stack"] = pqArray(r.TechStack)
	}
	if r.SocialIntents != nil {
		u["social_intents"] = pqArray(r.SocialIntents)
	}
	if r.IntentScore != nil {
		u["intent_score"] = *r.IntentScore
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.Source != nil {
		u["source"] = *r.Source
	}
	if r.Notes != nil {
		u["notes"] = *r.Notes
	}
	return u
}
