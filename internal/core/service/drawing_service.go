package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campus-compass/campus-api/internal/core/domain"
	"github.com/campus-compass/campus-api/internal/core/ports"
)

// DrawingService implements the PDF annotation use-cases.
type DrawingService struct {
	repo   ports.DrawingRepository
	logger zerolog.Logger
}

func NewDrawingService(repo ports.DrawingRepository, logger zerolog.Logger) *DrawingService {
	return &DrawingService{repo: repo, logger: logger}
}

func (s *DrawingService) Create(ctx context.Context, input ports.DrawingInput) (*domain.Drawing, error) {
	now := time.Now().UTC()
	drawing := &domain.Drawing{
		UserID:     input.UserID,
		PdfURL:     input.PdfURL,
		PageNumber: input.PageNumber,
		Drawing:    input.Drawing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Insert(ctx, drawing)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert drawing")
		return nil, err
	}
	return created, nil
}

func (s *DrawingService) List(ctx context.Context, userID, pdfURL string) ([]domain.Drawing, error) {
	return s.repo.Find(ctx, userID, pdfURL)
}

// Save upserts the drawing payload for one page: the latest save wins, a
// missing document is created.
func (s *DrawingService) Save(ctx context.Context, input ports.DrawingInput) (*domain.Drawing, error) {
	key := ports.DrawingKey{
		UserID:     input.UserID,
		PdfURL:     input.PdfURL,
		PageNumber: input.PageNumber,
	}
	return s.repo.Upsert(ctx, key, input.Drawing)
}
