package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/assaka/aurareach/internal/dto"
	"github.com/assaka/aurareach/internal/models"
	"github.com/assaka/aurareach/internal/repository"
	"github.com/assaka/aurareach/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type mockKeywordService struct {
	searchFn           func(term string, opts repository.ListOptions) (*repository.Page[models.Keyword], error)
	byStatusFn         func(status string, opts repository.ListOptions) (*repository.Page[models.Keyword], error)
	byCategoryFn       func(category string, opts repository.ListOptions) (*repository.Page[models.Keyword], error)
	statsFn            func() ([]services.KeywordStats, error)
	topOpportunitiesFn func(limit int) ([]models.Keyword, error)
	updateTimestampFn  func(id uuid.UUID) (*models.Keyword, error)
}

func (m *mockKeywordService) Search(term string, opts repository.ListOptions) (*repository.Page[models.Keyword], error) {
	return m.searchFn(term, opts)
}
func (m *mockKeywordService) FindByStatus(status string, opts repository.ListOptions) (*repository.Page[models.Keyword], error) {
	return m.byStatusFn(status, opts)
}
func (m *mockKeywordService) FindByCategory(category string, opts repository.ListOptions) (*repository.Page[models.Keyword], error) {
	return m.byCategoryFn(category, opts)
}
func (m *mockKeywordService) Stats() ([]services.KeywordStats, error) { return m.statsFn() }
func (m *mockKeywordService) TopOpportunities(limit int) ([]models.Keyword, error) {
	return m.topOpportunitiesFn(limit)
}
func (m *mockKeywordService) UpdateLastUpdated(id uuid.UUID) (*models.Keyword, error) {
	return m.updateTimestampFn(id)
}

var _ KeywordService = (*mockKeywordService)(nil)

func newKeywordApp(svc KeywordService, store Store[models.Keyword]) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler("test")})
	if store == nil {
		store = &mockKeywordStore{}
	}
	res := NewResource[models.Keyword, dto.CreateKeywordRequest, dto.UpdateKeywordRequest](store)
	RegisterKeywordRoutes(app.Group("/keywords"), NewKeywordHandler(svc), res)
	return app
}

func TestKeywordSearchRequiresTerm(t *testing.T) {
	svc := &mockKeywordService{
		searchFn: func(term string, opts repository.ListOptions) (*repository.Page[models.Keyword], error) {
			t.Fatal("service should not be called without a search term")
			return nil, nil
		},
	}
	app := newKeywordApp(svc, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/keywords/search", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body map[string]any
	decodeBody(t, resp, &body)
	if body["error"] != "Search term is required" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestKeywordSearchPassesTerm(t *testing.T) {
	svc := &mockKeywordService{
		searchFn: func(term string, opts repository.ListOptions) (*repository.Page[models.Keyword], error) {
			if term != "seo" {
				t.Errorf("expected term seo, got %q", term)
			}
			return &repository.Page[models.Keyword]{
				Data:       []models.Keyword{{Keyword: "seo tools"}},
				Pagination: repository.NewPagination(opts.Page, opts.Limit, 1),
			}, nil
		},
	}
	app := newKeywordApp(svc, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/keywords/search?q=seo", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestKeywordStats(t *testing.T) {
	avg := 420.5
	svc := &mockKeywordService{
		statsFn: func() ([]services.KeywordStats, error) {
			return []services.KeywordStats{{Status: "active", Count: 3, AvgSearchVolume: &avg}}, nil
		},
	}
	app := newKeywordApp(svc, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/keywords/stats", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body []services.KeywordStats
	decodeBody(t, resp, &body)
	if len(body) != 1 || body[0].Status != "active" || body[0].Count != 3 {
		t.Errorf("unexpected stats payload: %+v", body)
	}
}

func TestKeywordTopOpportunitiesLimit(t *testing.T) {
	svc := &mockKeywordService{
		topOpportunitiesFn: func(limit int) ([]models.Keyword, error) {
			if limit != 5 {
				t.Errorf("expected limit 5, got %d", limit)
			}
			return []models.Keyword{}, nil
		},
	}
	app := newKeywordApp(svc, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/keywords/opportunities?limit=5", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestKeywordByStatusRoute(t *testing.T) {
	svc := &mockKeywordService{
		byStatusFn: func(status string, opts repository.ListOptions) (*repository.Page[models.Keyword], error) {
			if status != "paused" {
				t.Errorf("expected status paused, got %q", status)
			}
			return &repository.Page[models.Keyword]{Data: []models.Keyword{}}, nil
		},
	}
	app := newKeywordApp(svc, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/keywords/status/paused", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestKeywordUpdateTimestampNotFound(t *testing.T) {
	svc := &mockKeywordService{
		updateTimestampFn: func(id uuid.UUID) (*models.Keyword, error) { return nil, nil },
	}
	app := newKeywordApp(svc, nil)

	req := httptest.NewRequest(http.MethodPut, "/keywords/"+uuid.NewString()+"/update-timestamp", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var body map[string]any
	decodeBody(t, resp, &body)
	if body["error"] != "Keyword not found" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}
