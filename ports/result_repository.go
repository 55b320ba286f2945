package ports

import (
	"context"

	"normtest/domain/core"
	"normtest/models"
)

// ResultRepository is the append-only ledger of decision results
type ResultRepository interface {
	Save(ctx context.Context, record *models.ResultRecord) error
	GetByID(ctx context.Context, id core.ResultID) (*models.ResultRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*models.ResultRecord, error)
}
