package handlers

import (
	"errors"

	"github.com/assaka/aurareach/internal/dto"
	"github.com/assaka/aurareach/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes surfaced to clients.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// NewErrorHandler builds the app-wide fiber error handler. Every error that
// escapes a handler funnels through here and becomes a JSON envelope. Outside
// production the response carries the error detail in a stack field.
func NewErrorHandler(env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var (
			validationErr *dto.ValidationError
			columnErr     *repository.ErrUnknownColumn
			pgErr         *pgconn.PgError
			fiberErr      *fiber.Error
		)

		switch {
		case errors.As(err, &validationErr):
			code = fiber.StatusBadRequest
			message = validationErr.Message
		case errors.As(err, &columnErr):
			code = fiber.StatusBadRequest
			message = columnErr.Error()
		// gorm with TranslateError wraps driver errors; the raw pgconn
		// branch covers queries that bypass the ORM callbacks.
		case errors.Is(err, gorm.ErrDuplicatedKey):
			code = fiber.StatusConflict
			message = "Resource already exists"
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			code = fiber.StatusBadRequest
			message = "Referenced resource does not exist"
		case errors.As(err, &pgErr):
			switch pgErr.Code {
			case pgUniqueViolation:
				code = fiber.StatusConflict
				message = "Resource already exists"
			case pgForeignKeyViolation:
				code = fiber.StatusBadRequest
				message = "Referenced resource does not exist"
			}
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		}

		body := fiber.Map{"error": message}
		if env != "production" {
			body["stack"] = err.Error()
		}

		return c.Status(code).JSON(body)
	}
}
