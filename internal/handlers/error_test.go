package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func newErrorApp(env string, err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(env)})
	app.Get("/boom", func(c *fiber.Ctx) error { return err })
	return app
}

func TestErrorHandlerDuplicateKey(t *testing.T) {
	app := newErrorApp("test", gorm.ErrDuplicatedKey)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}

	var body map[string]any
	decodeBody(t, resp, &body)
	if body["error"] != "Resource already exists" {
		t.Errorf("unexpected message: %v", body["error"])
	}
}

func TestErrorHandlerForeignKey(t *testing.T) {
	app := newErrorApp("test", gorm.ErrForeignKeyViolated)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestErrorHandlerRawPgError(t *testing.T) {
	app := newErrorApp("test", &pgconn.PgError{Code: "23505"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestErrorHandlerStackOutsideProduction(t *testing.T) {
	app := newErrorApp("development", gorm.ErrInvalidTransaction)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var body map[string]any
	decodeBody(t, resp, &body)
	if _, ok := body["stack"]; !ok {
		t.Error("expected stack field in non-production response")
	}
}

func TestErrorHandlerNoStackInProduction(t *testing.T) {
	app := newErrorApp("production", gorm.ErrInvalidTransaction)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body map[string]any
	decodeBody(t, resp, &body)
	if _, ok := body["stack"]; ok {
		t.Error("expected no stack field in production response")
	}
	if body["error"] != "Internal server error" {
		t.Errorf("expected opaque message in production, got %v", body["error"])
	}
}
