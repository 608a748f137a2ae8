package ports

import (
	"context"

	"github.com/campus-compass/campus-api/internal/core/domain"
)

// DrawingInput carries the validated fields for a drawing write.
type DrawingInput struct {
	UserID     string
	PdfURL     string
	PageNumber int
	Drawing    string
}

// DrawingService defines use-case operations for PDF annotations.
type DrawingService interface {
	Create(ctx context.Context, input DrawingInput) (*domain.Drawing, error)
	List(ctx context.Context, userID, pdfURL string) ([]domain.Drawing, error)
	// Save upserts the drawing for (userID, pdfURL, pageNumber).
	Save(ctx context.Context, input DrawingInput) (*domain.Drawing, error)
}
