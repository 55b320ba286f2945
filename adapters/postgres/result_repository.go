package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"normtest/domain/core"
	"normtest/models"
	"normtest/ports"

	"github.com/jmoiron/sqlx"
)

// ResultRepositoryImpl implements ResultRepository for PostgreSQL
type ResultRepositoryImpl struct {
	db *sqlx.DB
}

// NewResultRepository creates a new PostgreSQL result repository
func NewResultRepository(db *sqlx.DB) ports.ResultRepository {
	return &ResultRepositoryImpl{db: db}
}

const resultColumns = `id, battery_id, test_id, n, statistic, critical, p_value, alpha, mode, detail,
	conclusion_code, normal, language, digits, sample_hash, summary, decision, created_at`

// Save appends a result to the ledger
func (r *ResultRepositoryImpl) Save(ctx context.Context, record *models.ResultRecord) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO normality_results (`+resultColumns+`)
		VALUES (:id, :battery_id, :test_id, :n, :statistic, :critical, :p_value, :alpha, :mode, :detail,
			:conclusion_code, :normal, :language, :digits, :sample_hash, :summary, :decision, :created_at)
	`, record)
	if err != nil {
		return fmt.Errorf("failed to save result %s: %w", record.ID, err)
	}
	return nil
}

// GetByID retrieves a result by its identifier
func (r *ResultRepositoryImpl) GetByID(ctx context.Context, id core.ResultID) (*models.ResultRecord, error) {
	var record models.ResultRecord
	err := r.db.GetContext(ctx, &record, `
		SELECT `+resultColumns+`
		FROM normality_results
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("result", id.String())
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListRecent returns the newest results first
func (r *ResultRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*models.ResultRecord, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM normality_results
		ORDER BY created_at DESC, id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var records []*models.ResultRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}
