package ports

import (
	"context"

	"github.com/campus-compass/campus-api/internal/core/domain"
)

// DrawingKey identifies one annotation overlay: a user's drawing on one page
// of one PDF.
type DrawingKey struct {
	UserID     string
	PdfURL     string
	PageNumber int
}

// DrawingRepository defines persistence operations on the drawings collection.
type DrawingRepository interface {
	Insert(ctx context.Context, d *domain.Drawing) (*domain.Drawing, error)
	// Find returns all drawings for a user and PDF, across pages.
	Find(ctx context.Context, userID, pdfURL string) ([]domain.Drawing, error)
	// Upsert replaces the drawing payload at key, inserting when absent.
	Upsert(ctx context.Context, key DrawingKey, payload string) (*domain.Drawing, error)
}
