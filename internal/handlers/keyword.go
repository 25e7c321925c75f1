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

// KeywordService is the slice of the service the handler calls, split out so
// tests can substitute a mock.
type KeywordService interface {
	Search(term string, opts repository.ListOptions) (*repository.Page[models.Keyword], error)
	FindByStatus(status string, opts repository.ListOptions) (*repository.Page[models.Keyword], error)
	FindByCategory(category string, opts repository.ListOptions) (*repository.Page[models.Keyword], error)
	Stats() ([]services.KeywordStats, error)
	TopOpportunities(limit int) ([]models.Keyword, error)
	UpdateLastUpdated(id uuid.UUID) (*models.Keyword, error)
}

var _ KeywordService = (*services.KeywordService)(nil)

type KeywordHandler struct {
	service KeywordService
}

func NewKeywordHandler(service KeywordService) *KeywordHandler {
	return &KeywordHandler{service: service}
}

func SetupKeywordRoutes(router fiber.Router, db *database.DB) {
	svc := services.NewKeywordService(db)
	h := NewKeywordHandler(svc)
	res := NewResource[models.Keyword, dto.CreateKeywordRequest, dto.UpdateKeywordRequest](svc.Repo())

	RegisterKeywordRoutes(router, h, res)
}

// RegisterKeywordRoutes mounts keyword-specific routes ahead of the generic
// CRUD set so literal segments beat the :id parameter.
func RegisterKeywordRoutes(router fiber.Router, h *KeywordHandler, res *Resource[models.Keyword, dto.CreateKeywordRequest, dto.UpdateKeywordRequest]) {
	router.Get("/search", h.Search)
	router.Get("/stats", h.Stats)
	router.Get("/opportunities", h.TopOpportunities)
	router.Get("/status/:status", h.ByStatus)
	router.Get("/category/:category", h.ByCategory)
	router.Put("/:id/update-timestamp", h.UpdateTimestamp)

	res.Register(router)
}

func (h *KeywordHandler) Search(c *fiber.Ctx) error {
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

func (h *KeywordHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *KeywordHandler) TopOpportunities(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(repository.DefaultLimit)))
	if err != nil || limit < 1 {
		limit = repository.DefaultLimit
	}

	rows, err := h.service.TopOpportunities(limit)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

func (h *KeywordHandler) ByStatus(c *fiber.Ctx) error {
	page, err := h.service.FindByStatus(c.Params("status"), ParseListOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *KeywordHandler) ByCategory(c *fiber.Ctx) error {
	page, err := h.service.FindByCategory(c.Params("category"), ParseListOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *KeywordHandler) UpdateTimestamp(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid resource ID")
	}

	row, err := h.service.UpdateLastUpdated(id)
	if err != nil {
		return err
	}
	if row == nil {
		return fiber.NewError(fiber.StatusNotFound, "Keyword not found")
	}
	return c.JSON(row)
}
