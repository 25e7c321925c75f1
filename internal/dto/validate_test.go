package dto

import (
	"errors"
	"testing"
	"time"
)

func TestCreateKeywordRequiresKeyword(t *testing.T) {
	err := Validate(CreateKeywordRequest{SearchVolume: 100})
	if err == nil {
		t.Fatal("expected validation error for missing keyword")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestCreateKeywordRejectsBadEnum(t *testing.T) {
	err := Validate(CreateKeywordRequest{Keyword: "seo tools", Competition: "extreme"})
	if err == nil {
		t.Fatal("expected validation error for bad competition value")
	}
}

func TestCreateKeywordAcceptsMinimal(t *testing.T) {
	if err := Validate(CreateKeywordRequest{Keyword: "seo tools"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateKeywordOpportunityScoreBounds(t *testing.T) {
	score := 101
	err := Validate(CreateKeywordRequest{Keyword: "seo", OpportunityScore: &score})
	if err == nil {
		t.Fatal("expected validation error for score above 100")
	}
}

func TestCreateCampaignEndBeforeStart(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)

	err := Validate(CreateCampaignRequest{
		Name:      "Summer push",
		Source:    "Google Ads",
		Budget:    1000,
		StartDate: &start,
		EndDate:   &end,
	})
	if err == nil {
		t.Fatal("expected validation error for end before start")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestCreateCampaignValidDates(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	err := Validate(CreateCampaignRequest{
		Name:      "Summer push",
		Source:    "Google Ads",
		Budget:    1000,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateCampaignQuotedSourceEnum(t *testing.T) {
	err := Validate(CreateCampaignRequest{Name: "x", Source: "Billboard", Budget: 10})
	if err == nil {
		t.Fatal("expected validation error for unknown source")
	}

	if err := Validate(CreateCampaignRequest{Name: "x", Source: "LinkedIn Ads", Budget: 10}); err != nil {
		t.Fatalf("unexpected error for valid source: %v", err)
	}
}

func TestCreateLeadEmailFormat(t *testing.T) {
	bad := "not-an-email"
	err := Validate(CreateLeadRequest{CompanyName: "Acme", ContactEmail: &bad})
	if err == nil {
		t.Fatal("expected validation error for malformed email")
	}

	good := "jo@acme.io"
	if err := Validate(CreateLeadRequest{CompanyName: "Acme", ContactEmail: &good}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateKeywordUpdatesOnlySetFields(t *testing.T) {
	status := "paused"
	volume := 250

	u := UpdateKeywordRequest{Status: &status, SearchVolume: &volume}.Updates()
	if len(u) != 2 {
		t.Fatalf("expected 2 update columns, got %d", len(u))
	}
	if u["status"] != "paused" {
		t.Errorf("expected status paused, got %v", u["status"])
	}
	if u["search_volume"] != 250 {
		t.Errorf("expected search_volume 250, got %v", u["search_volume"])
	}
}

func TestUpdateKeywordEmptyBody(t *testing.T) {
	if u := (UpdateKeywordRequest{}).Updates(); len(u) != 0 {
		t.Fatalf("expected empty update map, got %v", u)
	}
}

func TestCreateAutoScheduleTimeOfDay(t *testing.T) {
	bad := "25:99"
	err := Validate(CreateAutoScheduleRequest{Name: "weekly run", TimeOfDay: &bad})
	if err == nil {
		t.Fatal("expected validation error for bad time of day")
	}

	good := "09:30"
	if err := Validate(CreateAutoScheduleRequest{Name: "weekly run", TimeOfDay: &good}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
