package dto

import (
	"encoding/json"

	"github.com/assaka/aurareach/internal/models"
)

type CreateDestinationRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	URL      *string `json:"url"`
	APIKey   *string `json:"api_key"`
	IsActive *bool   `json:"is_active"`
}

func (r CreateDestinationRequest) Model() *models.Destination {
	m := &models.Destination{
		Name:     r.Name,
		Type:     r.Type,
		URL:      r.URL,
		APIKey:   r.APIKey,
		IsActive: true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

type UpdateDestinationRequest struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	URL      *string `json:"url"`
	APIKey   *string `json:"api_key"`
	IsActive *bool   `json:"is_active"`
}

func (r UpdateDestinationRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Type != nil {
		u["type"] = *r.Type
	}
	if r.URL != nil {
		u["url"] = *r.URL
	}
	if r.APIKey != nil {
		u["api_key"] = *r.APIKey
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	return u
}

type CreateDataSourceRequest struct {
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	URL             *string         `json:"url"`
	APIKey          *string         `json:"api_key"`
	Data            json.RawMessage `json:"data"`
	Schema          json.RawMessage `json:"schema"`
	RecordCount     int             `json:"record_count"`
	RefreshInterval *string         `json:"refresh_interval"`
	IsActive        *bool           `json:"is_active"`
}

func (r CreateDataSourceRequest) Model() *models.DataSource {
	m := &models.DataSource{
		Name:            r.Name,
		Type:            r.Type,
		URL:             r.URL,
		APIKey:          r.APIKey,
		Data:            r.Data,
		Schema:          r.Schema,
		RecordCount:     r.RecordCount,
		RefreshInterval: r.RefreshInterval,
		IsActive:        true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

type UpdateDataSourceRequest struct {
	Name            *string         `json:"name"`
	Type            *string         `json:"type"`
	URL             *string         `json:"url"`
	APIKey          *string         `json:"api_key"`
	Data            json.RawMessage `json:"data"`
	Schema          json.RawMessage `json:"schema"`
	RecordCount     *int            `json:"record_count"`
	RefreshInterval *string         `json:"refresh_interval"`
	IsActive        *bool           `json:"is_active"`
}

func (r UpdateDataSourceRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Type != nil {
		u["type"] = *r.Type
	}
	if r.URL != nil {
		u["url"] = *r.URL
	}
	if r.APIKey != nil {
		u["api_key"] = *r.APIKey
	}
	if r.Data != nil {
		u["data"] = r.Data
	}
	if r.Schema != nil {
		u["schema"] = r.Schema
	}
	if r.RecordCount != nil {
		u["record_count"] = *r.RecordCount
	}
	if r.RefreshInterval != nil {
		u["refresh_interval"] = *r.RefreshInterval
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	return u
}
