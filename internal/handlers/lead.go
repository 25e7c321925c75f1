package handlers

import (
	"strconv"

	"github.com/assaka/aurareach/internal/database"
	"github.com/assaka/aurareach/internal/dto"
	"github.com/assaka/aurareach/internal/models"
	"github.com/assaka/aurareach/internal/repository"
	"github.com/assaka/aurareach/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultMinIntentScore = 70

// LeadService mirrors the lead service surface for mocking in tests.
type LeadService interface {
	Search(term string, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	FindByStatus(status string, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	FindByIndustry(industry string, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	FindByCompanySize(size string, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	FindByTechStack(techs []string, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	Stats() ([]services.LeadStats, error)
	HighIntent(minScore int, opts repository.ListOptions) (*repository.Page[models.Lead], error)
	IndustryDistributions() ([]services.IndustryDistribution, error)
	UpdateLastActivity(id uuid.UUID) (*models.Lead, error)
}

var _ LeadService = (*services.LeadService)(nil)

type LeadHandler struct {
	service LeadService
}

func NewLeadHandler(service LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

func SetupLeadRoutes(router fiber.Router, db *database.DB) {
	svc := services.NewLeadService(db)
	h := NewLeadHandler(svc)
	res := NewResource[models.Lead, dto.CreateLeadRequest, dto.UpdateLeadRequest](svc.Repo())

	RegisterLeadRoutes(router, h, res)
}

func RegisterLeadRoutes(router fiber.Router, h *LeadHandler, res *Resource[models.Lead, dto.CreateLeadRequest, dto.UpdateLeadRequest]) {
	router.Get("/search", h.Search)
	router.Get("/stats", h.Stats)
	router.Get("/high-intent", h.HighIntent)
	router.Get("/industry-distribution", h.IndustryDistribution)
	router.Get("/tech-stack", h.ByTechStack)
	router.Get("/status/:status", h.ByStatus)
	router.Get("/industry/:industry", h.ByIndustry)
	router.Get("/company-size/:size", h.ByCompanySize)
	router.Put("/:id/update-activity", h.UpdateActivity)

	res.Register(router)
}

func (h *LeadHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Search term is required")
	}

	page, err := h.service.Search(term, ParseListOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *LeadHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *LeadHandler) HighIntent(c *fiber.Ctx) error {
	minScore, err := strconv.Atoi(c.Query("minScore", strconv.Itoa(defaultMinIntentScore)))
	if err != nil {
		minScore = defaultMinIntentScore
	}

	page, err := h.service.HighIntent(minScore, ParseListOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *LeadHandler) IndustryDistribution(c *fiber.Ctx) error {
	dist, err := h.service.IndustryDistributions()
	if err != nil {
		return err
	}
	return c.JSON(dist)
}

// ByTechStack filters on array overlap; tech is repeatable
// (?tech=React&tech=AWS).
func (h *LeadHandler) ByTechStack(c *fiber.Ctx) error {
	var techs []string
	if args := c.Context().QueryArgs().PeekMulti("tech"); len(args) > 0 {
		for _, a := range args {
			if len(a) > 0 {
				techs = append(techs, string(a))
			}
		}
	}
	if len(techs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tech stack filter is required")
	}

	page, err := h.service.FindByTechStack(techs, ParseListOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *LeadHandler) ByStatus(c *fiber.Ctx) error {
	page, err := h.service.FindByStatus(c.Params("status"), ParseListOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *LeadHandler) ByIndustry(c *fiber.Ctx) error {
	page, err := h.service.FindByIndustry(c.Params("industry"), ParseListOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *LeadHandler) ByCompanySize(c *fiber.Ctx) error {
	page, err := h.service.FindByCompanySize(c.Params("size"), ParseListOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *LeadHandler) UpdateActivity(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid resource ID")
	}

	row, err := h.service.UpdateLastActivity(id)
	if err != nil {
		return err
	}
	if row == nil {
		return fiber.NewError(fiber.StatusNotFound, "Lead not found")
	}
	return c.JSON(row)
}
