package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tunereport/internal/models"
)

type RunRepository struct {
	pool *pgxpool.Pool
}

func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

func (r *RunRepository) Create(run *models.TuningRun) error {
	ctx := context.Background()

	run.Prepare()

	params, err := json.Marshal(run.Params)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tuning_runs (id, model, f1, auc, precision_score, recall_score, training_time_s, inference_time_s, params, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()
	_, err = r.pool.Exec(ctx, query,
		run.ID,
		run.Model,
		run.F1,
		run.AUC,
		run.Precision,
		run.Recall,
		run.TrainingTimeS,
		run.InferenceTimeS,
		params,
		now,
	)
	if err == nil {
		run.CreatedAt = now
	}

	return err
}

func (r *RunRepository) GetByID(id uuid.UUID) (*models.TuningRun, error) {
	ctx := context.Background()

	query := `
		SELECT id, model, f1, auc, precision_score, recall_score, training_time_s, COALESCE(inference_time_s, 0), params, created_at
		FROM tuning_runs WHERE id = $1
	`

	run, err := scanRun(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return run, nil
}

func (r *RunRepository) GetByModel(model string) ([]models.TuningRun, error) {
	ctx := context.Background()

	query := `
		SELECT id, model, f1, auc, precision_score, recall_score, training_time_s, COALESCE(inference_time_s, 0), params, created_at
		FROM tuning_runs WHERE model = $1
		ORDER BY f1 DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, model)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRuns(rows)
}

func (r *RunRepository) GetAll() ([]models.TuningRun, error) {
	ctx := context.Background()

	query := `
		SELECT id, model, f1, auc, precision_score, recall_score, training_time_s, COALESCE(inference_time_s, 0), params, created_at
		FROM tuning_runs
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRuns(rows)
}

// GetBestPerModel returns each model's strongest run. Ties on F1 fall to the
// higher AUC, then the lower training time.
func (r *RunRepository) GetBestPerModel() ([]models.TuningRun, error) {
	ctx := context.Background()

	query := `
		SELECT DISTINCT ON (model)
			id, model, f1, auc, precision_score, recall_score, training_time_s, COALESCE(inference_time_s, 0), params, created_at
		FROM tuning_runs
		ORDER BY model, f1 DESC, auc DESC, training_time_s ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRuns(rows)
}

func (r *RunRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM tuning_runs WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("tuning run not found")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*models.TuningRun, error) {
	var run models.TuningRun
	var params []byte

	err := row.Scan(
		&run.ID,
		&run.Model,
		&run.F1,
		&run.AUC,
		&run.Precision,
		&run.Recall,
		&run.TrainingTimeS,
		&run.InferenceTimeS,
		&params,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(params, &run.Params); err != nil {
		return nil, err
	}

	return &run, nil
}

func collectRuns(rows pgx.Rows) ([]models.TuningRun, error) {
	var runs []models.TuningRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}
