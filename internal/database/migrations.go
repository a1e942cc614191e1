package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createEnumTypes,
		createDetectorsTable,
		seedDetectors,
		createTuningRunsTable,
		createReportSnapshotsTable,
		addInferenceTimeToRuns,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createEnumTypes = `
-- Create ENUM types if they don't exist
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'detector_kind_t') THEN
    CREATE TYPE detector_kind_t AS ENUM ('neural', 'classical');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'report_format_t') THEN
    CREATE TYPE report_format_t AS ENUM ('markdown', 'latex', 'csv');
  END IF;
END$$;
`

const createDetectorsTable = `
CREATE TABLE IF NOT EXISTS detectors (
  name TEXT PRIMARY KEY,
  kind detector_kind_t NOT NULL,
  param_names TEXT[] NOT NULL
);
`

const seedDetectors = `
INSERT INTO detectors (name, kind, param_names) VALUES
  ('Autoencoder', 'neural', ARRAY['epochs', 'latent_dim', 'dropout_rate']),
  ('LOF', 'classical', ARRAY['n_neighbors', 'contamination']),
  ('EllipticEnvelope', 'classical', ARRAY['support_fraction', 'contamination']),
  ('IsolationForest', 'classical', ARRAY['n_estimators', 'max_samples', 'contamination']),
  ('OneClassSVM', 'classical', ARRAY['nu', 'kernel', 'gamma'])
ON CONFLICT (name) DO NOTHING;
`

const createTuningRunsTable = `
CREATE TABLE IF NOT EXISTS tuning_runs (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  model TEXT NOT NULL REFERENCES detectors(name),
  f1 DOUBLE PRECISION NOT NULL CHECK (f1 >= 0 AND f1 <= 1),
  auc DOUBLE PRECISION NOT NULL CHECK (auc >= 0 AND auc <= 1),
  precision_score DOUBLE PRECISION NOT NULL CHECK (precision_score >= 0 AND precision_score <= 1),
  recall_score DOUBLE PRECISION NOT NULL CHECK (recall_score >= 0 AND recall_score <= 1),
  training_time_s DOUBLE PRECISION NOT NULL CHECK (training_time_s > 0),
  inference_time_s DOUBLE PRECISION,
  params JSONB NOT NULL DEFAULT '[]',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_tuning_runs_model ON tuning_runs(model);
CREATE INDEX IF NOT EXISTS idx_tuning_runs_f1 ON tuning_runs(f1 DESC);
CREATE INDEX IF NOT EXISTS idx_tuning_runs_created_at ON tuning_runs(created_at);
`

const createReportSnapshotsTable = `
CREATE TABLE IF NOT EXISTS report_snapshots (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  format report_format_t NOT NULL,
  content TEXT NOT NULL,
  checksum TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_report_snapshots_format ON report_snapshots(format);
CREATE INDEX IF NOT EXISTS idx_report_snapshots_created_at ON report_snapshots(created_at);
`

const addInferenceTimeToRuns = `
-- Backfill guard for rows ingested before inference time was recorded
DO $$
BEGIN
  IF NOT EXISTS (
    SELECT 1 FROM information_schema.columns
    WHERE table_name = 'tuning_runs' AND column_name = 'inference_time_s'
  ) THEN
    ALTER TABLE tuning_runs ADD COLUMN inference_time_s DOUBLE PRECISION;
  END IF;
END$$;
`
