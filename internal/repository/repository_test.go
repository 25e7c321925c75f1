package repository

import (
	"errors"
	"testing"
)

func TestFilterAllowsKnownColumns(t *testing.T) {
	repo := NewRepository[struct{}](nil, []string{"status", "category"})

	out, err := repo.filter(map[string]any{"status": "active", "category": "seo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 filter keys, got %d", len(out))
	}
}

func TestFilterRejectsUnknownColumn(t *testing.T) {
	repo := NewRepository[struct{}](nil, []string{"status"})

	_, err := repo.filter(map[string]any{"status = 'x'; DROP TABLE keywords; --": "y"})
	if err == nil {
		t.Fatal("expected error for unknown column")
	}

	var colErr *ErrUnknownColumn
	if !errors.As(err, &colErr) {
		t.Fatalf("expected *ErrUnknownColumn, got %T", err)
	}
}

func TestFilterEmptyMap(t *testing.T) {
	repo := NewRepository[struct{}](nil, []string{"status"})

	out, err := repo.filter(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil filter, got %v", out)
	}
}
