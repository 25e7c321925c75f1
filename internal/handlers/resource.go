package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/assaka/aurareach/internal/dto"
	"github.com/assaka/aurareach/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreatePayload is a validated request body that can build a new row.
type CreatePayload[T any] interface {
	Model() *T
}

// UpdatePayload is a validated partial body flattened into a column map.
type UpdatePayload interface {
	Updates() map[string]any
}

// Store is the persistence surface a Resource needs. Satisfied by
// repository.Repository and by mocks in tests.
type Store[T any] interface {
	List(opts repository.ListOptions) (*repository.Page[T], error)
	GetByID(id uuid.UUID) (*T, error)
	Create(row *T) error
	Update(id uuid.UUID, updates map[string]any) (*T, error)
	Delete(id uuid.UUID) (*T, error)
	Count(where map[string]any) (int64, error)
}

// Resource serves the uniform CRUD surface for one entity. T is the model,
// C and U the create and update bodies.
type Resource[T any, C CreatePayload[T], U UpdatePayload] struct {
	store Store[T]
}

func NewResource[T any, C CreatePayload[T], U UpdatePayload](store Store[T]) *Resource[T, C, U] {
	return &Resource[T, C, U]{store: store}
}

// Register mounts the CRUD routes. /count is registered before /:id so the
// literal segment wins over the parameter.
func (r *Resource[T, C, U]) Register(router fiber.Router) {
	router.Get("/", r.List)
	router.Get("/count", r.Count)
	router.Get("/:id", r.Get)
	router.Post("/", r.Create)
	router.Put("/:id", r.Update)
	router.Delete("/:id", r.Delete)
}

// ParseListOptions reads pagination and sorting from the query string.
// Malformed values fall back to defaults rather than erroring.
func ParseListOptions(c *fiber.Ctx) repository.ListOptions {
	page, err := strconv.Atoi(c.Query("page", strconv.Itoa(repository.DefaultPage)))
	if err != nil {
		page = repository.DefaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(repository.DefaultLimit)))
	if err != nil {
		limit = repository.DefaultLimit
	}

	opts := repository.ListOptions{
		Page:   page,
		Limit:  limit,
		Sort:   c.Query("sort", repository.DefaultSort),
		SortBy: c.Query("sortBy", repository.DefaultSortBy),
	}

	if raw := c.Query("where"); raw != "" {
		var where map[string]any
		if err := json.Unmarshal([]byte(raw), &where); err == nil {
			opts.Where = where
		}
	}

	return opts.Normalized()
}

func (r *Resource[T, C, U]) List(c *fiber.Ctx) error {
	page, err := r.store.List(ParseListOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (r *Resource[T, C, U]) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid resource ID")
	}

	row, err := r.store.GetByID(id)
	if err != nil {
		return err
	}
	if row == nil {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	}
	return c.JSON(row)
}

func (r *Resource[T, C, U]) Create(c *fiber.Ctx) error {
	var payload C
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(payload); err != nil {
		return err
	}

	row := payload.Model()
	if err := r.store.Create(row); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (r *Resource[T, C, U]) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid resource ID")
	}

	var payload U
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := dto.Validate(payload); err != nil {
		return err
	}

	updates := payload.Updates()
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	row, err := r.store.Update(id, updates)
	if err != nil {
		return err
	}
	if row == nil {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	}
	return c.JSON(row)
}

func (r *Resource[T, C, U]) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid resource ID")
	}

	row, err := r.store.Delete(id)
	if err != nil {
		return err
	}
	if row == nil {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (r *Resource[T, C, U]) Count(c *fiber.Ctx) error {
	// Malformed where filters are ignored, matching list behavior.
	var where map[string]any
	if raw := c.Query("where"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &where); err != nil {
			where = nil
		}
	}

	total, err := r.store.Count(where)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"count": total})
}
