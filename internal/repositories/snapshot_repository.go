package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tunereport/internal/models"
)

type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func (r *SnapshotRepository) Create(snapshot *models.ReportSnapshot) error {
	ctx := context.Background()

	snapshot.Prepare()

	query := `
		INSERT INTO report_snapshots (id, format, content, checksum, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		snapshot.ID,
		snapshot.Format,
		snapshot.Content,
		snapshot.Checksum,
		now,
	)
	if err == nil {
		snapshot.CreatedAt = now
	}

	return err
}

func (r *SnapshotRepository) GetByID(id uuid.UUID) (*models.ReportSnapshot, error) {
	ctx := context.Background()

	query := `
		SELECT id, format, content, checksum, created_at
		FROM report_snapshots WHERE id = $1
	`

	var snapshot models.ReportSnapshot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.Format,
		&snapshot.Content,
		&snapshot.Checksum,
		&snapshot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &snapshot, nil
}

// GetLatestByFormat returns the most recent snapshot in the given format,
// or nil when no report has been rendered yet.
func (r *SnapshotRepository) GetLatestByFormat(format string) (*models.ReportSnapshot, error) {
	ctx := context.Background()

	query := `
		SELECT id, format, content, checksum, created_at
		FROM report_snapshots WHERE format = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var snapshot models.ReportSnapshot
	err := r.pool.QueryRow(ctx, query, format).Scan(
		&snapshot.ID,
		&snapshot.Format,
		&snapshot.Content,
		&snapshot.Checksum,
		&snapshot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &snapshot, nil
}

func (r *SnapshotRepository) List(limit int) ([]models.ReportSnapshot, error) {
	ctx := context.Background()

	query := `
		SELECT id, format, checksum, created_at
		FROM report_snapshots
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []models.ReportSnapshot
	for rows.Next() {
		var snapshot models.ReportSnapshot
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.Format,
			&snapshot.Checksum,
			&snapshot.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, rows.Err()
}
