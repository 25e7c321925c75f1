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

type mockLeadService struct {
	searchFn         func(term string, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	byStatusFn       func(status string, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	byIndustryFn     func(industry string, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	byCompanySizeFn  func(size string, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	byTechStackFn    func(techs []string, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	statsFn          func() ([]services.LeadStats, error)
	highIntentFn     func(minScore int, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	distributionsFn  func() ([]services.IndustryDistribution, error)
	updateActivityFn func(id uuid.UUID) (*models.Lead, error)
}

func (m *mockLeadService) Search(term string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	return m.searchFn(term, opts)
}
func (m *mockLeadService) FindByStatus(status string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	return m.byStatusFn(status, opts)
}
func (m *mockLeadService) FindByIndustry(industry string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	return m.byIndustryFn(industry, opts)
}
func (m *mockLeadService) FindByCompanySize(size string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	return m.byCompanySizeFn(size, opts)
}
func (m *mockLeadService) FindByTechStack(techs []string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	return m.byTechStackFn(techs, opts)
}
func (m *mockLeadService) Stats() ([]services.LeadStats, error) { return m.statsFn() }
func (m *mockLeadService) HighIntent(minScore int, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	return m.highIntentFn(minScore, opts)
}
func (m *mockLeadService) IndustryDistributions() ([]services.IndustryDistribution, error) {
	return m.distributionsFn()
}
func (m *mockLeadService) UpdateLastActivity(id uuid.UUID) (*models.Lead, error) {
	return m.updateActivityFn(id)
}

var _ LeadService = (*mockLeadService)(nil)

type mockLeadStore struct{}

func (m *mockLeadStore) List(opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	return &repository.Page[models.Lead]{Data: []models.Lead{}}, nil
}
func (m *mockLeadStore) GetByID(id uuid.UUID) (*models.Lead, error) { return nil, nil }
func (m *mockLeadStore) Create(row *models.Lead) error              { return nil }
func (m *mockLeadStore) Update(id uuid.UUID, updates map[string]any) (*models.Lead, error) {
	return nil, nil
}
func (m *mockLeadStore) Delete(id uuid.UUID) (*models.Lead, error) { return nil, nil }
func (m *mockLeadStore) Count(where map[string]any) (int64, error) { return 0, nil }

func newLeadApp(svc LeadService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler("test")})
	res := NewResource[models.Lead, dto.CreateLeadRequest, dto.UpdateLeadRequest](&mockLeadStore{})
	RegisterLeadRoutes(app.Group("/leads"), NewLeadHandler(svc), res)
	return app
}

func TestLeadTechStackRequiresFilter(t *testing.T) {
	svc := &mockLeadService{
		byTechStackFn: func(techs []string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
			t.Fatal("service should not be called without a tech filter")
			return nil, nil
		},
	}
	app := newLeadApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/leads/tech-stack", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body map[string]any
	decodeBody(t, resp, &body)
	if body["error"] != "Tech stack filter is required" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestLeadTechStackRepeatedParams(t *testing.T) {
	svc := &mockLeadService{
		byTechStackFn: func(techs []string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
			if len(techs) != 2 || techs[0] != "React" || techs[1] != "AWS" {
				t.Errorf("expected [React AWS], got %v", techs)
			}
			return &repository.Page[models.Lead]{Data: []models.Lead{}}, nil
		},
	}
	app := newLeadApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/leads/tech-stack?tech=React&tech=AWS", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestLeadHighIntentDefaultScore(t *testing.T) {
	svc := &mockLeadService{
		highIntentFn: func(minScore int, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
			if minScore != 70 {
				t.Errorf("expected default minScore 70, got %d", minScore)
			}
			return &repository.Page[models.Lead]{Data: []models.Lead{}}, nil
		},
	}
	app := newLeadApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/leads/high-intent", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestLeadHighIntentCustomScore(t *testing.T) {
	svc := &mockLeadService{
		highIntentFn: func(minScore int, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
			if minScore != 85 {
				t.Errorf("expected minScore 85, got %d", minScore)
			}
			return &repository.Page[models.Lead]{Data: []models.Lead{}}, nil
		},
	}
	app := newLeadApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/leads/high-intent?minScore=85", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestLeadIndustryDistribution(t *testing.T) {
	avg := 64.2
	svc := &mockLeadService{
		distributionsFn: func() ([]services.IndustryDistribution, error) {
			return []services.IndustryDistribution{{Industry: "SaaS", Count: 9, AvgIntentScore: &avg}}, nil
		},
	}
	app := newLeadApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/leads/industry-distribution", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body []services.IndustryDistribution
	decodeBody(t, resp, &body)
	if len(body) != 1 || body[0].Industry != "SaaS" {
		t.Errorf("unexpected distribution payload: %+v", body)
	}
}

func TestLeadUpdateActivityNotFound(t *testing.T) {
	svc := &mockLeadService{
		updateActivityFn: func(id uuid.UUID) (*models.Lead, error) { return nil, nil },
	}
	app := newLeadApp(svc)

	req := httptest.NewRequest(http.MethodPut, "/leads/"+uuid.NewString()+"/update-activity", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
