package port

import (
	"context"

	"github.com/google/uuid"

	"taxdoc/internal/domain"
)

// ProcessingHistoryRepository persists processed documents for later review.
type ProcessingHistoryRepository interface {
	Create(ctx context.Context, doc *domain.ProcessedDocument) error
	List(ctx context.Context, limit, offset int) ([]domain.ProcessedDocument, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProcessedDocument, error)
}
