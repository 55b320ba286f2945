package memory

import (
	"context"
	"sort"
	"sync"

	"normtest/domain/core"
	"normtest/models"
	"normtest/ports"
)

// ResultRepository keeps results in process memory. It backs the service
// when no DATABASE_URL is configured.
type ResultRepository struct {
	mu      sync.RWMutex
	records map[core.ResultID]models.ResultRecord
}

// NewResultRepository creates an empty in-memory ledger
func NewResultRepository() *ResultRepository {
	return &ResultRepository{records: make(map[core.ResultID]models.ResultRecord)}
}

var _ ports.ResultRepository = (*ResultRepository)(nil)

// Save stores a copy of record
func (r *ResultRepository) Save(ctx context.Context, record *models.ResultRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = *record
	return nil
}

// GetByID returns a copy of the stored record
func (r *ResultRepository) GetByID(ctx context.Context, id core.ResultID) (*models.ResultRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, core.NewNotFoundError("result", id.String())
	}
	return &rec, nil
}

// ListRecent returns the newest results first; limit <= 0 returns all
func (r *ResultRepository) ListRecent(ctx context.Context, limit int) ([]*models.ResultRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]*models.ResultRecord, 0, len(r.records))
	for _, rec := range r.records {
		rec := rec
		out = append(out, &rec)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
