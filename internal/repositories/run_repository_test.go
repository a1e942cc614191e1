package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"tunereport/internal/database"
	"tunereport/internal/models"
)

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("tunereport"),
		postgres.WithUsername("tunereport"),
		postgres.WithPassword("tunereport"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.RunMigrations(pool); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return pool
}

func sampleRun(model string, f1, auc, trainingTime float64) *models.TuningRun {
	return &models.TuningRun{
		Model:          model,
		F1:             f1,
		AUC:            auc,
		Precision:      f1,
		Recall:         f1,
		TrainingTimeS:  trainingTime,
		InferenceTimeS: 0.1,
		Params: []models.Param{
			{Name: "contamination", Value: "0.1"},
		},
	}
}

func TestRunRepositoryRoundtrip(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewRunRepository(pool)

	run := &models.TuningRun{
		Model:          "IsolationForest",
		F1:             0.8475,
		AUC:            0.9182,
		Precision:      0.8621,
		Recall:         0.8333,
		TrainingTimeS:  1.42,
		InferenceTimeS: 0.1352,
		Params: []models.Param{
			{Name: "n_estimators", Value: "100"},
			{Name: "max_samples", Value: "0.8"},
			{Name: "contamination", Value: "0.1"},
		},
	}

	if err := repo.Create(run); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if run.ID == uuid.Nil {
		t.Fatal("Create() left ID unset")
	}

	got, err := repo.GetByID(run.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID() returned nil for existing run")
	}

	if got.Model != run.Model || got.F1 != run.F1 || got.TrainingTimeS != run.TrainingTimeS {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, run)
	}

	// Parameter order must survive the JSONB roundtrip
	if len(got.Params) != 3 {
		t.Fatalf("got %d params, want 3", len(got.Params))
	}
	for i, want := range []string{"n_estimators", "max_samples", "contamination"} {
		if got.Params[i].Name != want {
			t.Errorf("param %d = %s, want %s", i, got.Params[i].Name, want)
		}
	}
}

func TestRunRepositoryGetByIDMissing(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewRunRepository(pool)

	got, err := repo.GetByID(uuid.New())
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got != nil {
		t.Errorf("GetByID() = %+v, want nil for missing run", got)
	}
}

func TestRunRepositoryGetBestPerModel(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewRunRepository(pool)

	// Three LOF trials, one OneClassSVM trial
	for _, run := range []*models.TuningRun{
		sampleRun("LOF", 0.90, 0.95, 2.0),
		sampleRun("LOF", 0.9488, 0.9757, 1.939),
		sampleRun("LOF", 0.85, 0.92, 1.5),
		sampleRun("OneClassSVM", 0.9201, 0.9608, 2.804),
	} {
		if err := repo.Create(run); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	best, err := repo.GetBestPerModel()
	if err != nil {
		t.Fatalf("GetBestPerModel() error: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("got %d best runs, want 2", len(best))
	}

	byModel := make(map[string]models.TuningRun)
	for _, run := range best {
		byModel[run.Model] = run
	}
	if byModel["LOF"].F1 != 0.9488 {
		t.Errorf("best LOF F1 = %v, want 0.9488", byModel["LOF"].F1)
	}
	if byModel["OneClassSVM"].F1 != 0.9201 {
		t.Errorf("best OneClassSVM F1 = %v, want 0.9201", byModel["OneClassSVM"].F1)
	}
}

func TestRunRepositoryGetBestPerModelTieBreak(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewRunRepository(pool)

	tied := sampleRun("LOF", 0.9, 0.97, 2.0)
	winner := sampleRun("LOF", 0.9, 0.99, 2.0)
	for _, run := range []*models.TuningRun{tied, winner} {
		if err := repo.Create(run); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	best, err := repo.GetBestPerModel()
	if err != nil {
		t.Fatalf("GetBestPerModel() error: %v", err)
	}
	if len(best) != 1 {
		t.Fatalf("got %d best runs, want 1", len(best))
	}
	if best[0].ID != winner.ID {
		t.Errorf("tie should fall to higher AUC: got run %s, want %s", best[0].ID, winner.ID)
	}
}

func TestRunRepositoryConstraints(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewRunRepository(pool)

	t.Run("rejects unknown model", func(t *testing.T) {
		run := sampleRun("KMeans", 0.9, 0.9, 1.0)
		if err := repo.Create(run); err == nil {
			t.Error("expected foreign key violation for unknown model")
		}
	})

	t.Run("rejects out-of-range metric", func(t *testing.T) {
		run := sampleRun("LOF", 1.5, 0.9, 1.0)
		if err := repo.Create(run); err == nil {
			t.Error("expected check violation for f1 > 1")
		}
	})

	t.Run("rejects non-positive training time", func(t *testing.T) {
		run := sampleRun("LOF", 0.9, 0.9, 0)
		if err := repo.Create(run); err == nil {
			t.Error("expected check violation for training_time_s = 0")
		}
	})
}

func TestRunRepositoryDelete(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewRunRepository(pool)

	run := sampleRun("LOF", 0.9, 0.95, 1.0)
	if err := repo.Create(run); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := repo.Delete(run.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	got, err := repo.GetByID(run.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got != nil {
		t.Error("run still present after delete")
	}

	if err := repo.Delete(run.ID); err == nil {
		t.Error("expected error deleting a missing run")
	}
}

func TestSnapshotRepositoryLatestByFormat(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewSnapshotRepository(pool)

	got, err := repo.GetLatestByFormat("markdown")
	if err != nil {
		t.Fatalf("GetLatestByFormat() error: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil before any snapshot exists")
	}

	first := &models.ReportSnapshot{Format: "markdown", Content: "# v1", Checksum: "aaa"}
	if err := repo.Create(first); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	second := &models.ReportSnapshot{Format: "markdown", Content: "# v2", Checksum: "bbb"}
	if err := repo.Create(second); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err = repo.GetLatestByFormat("markdown")
	if err != nil {
		t.Fatalf("GetLatestByFormat() error: %v", err)
	}
	if got == nil || got.Content != "# v2" {
		t.Errorf("latest snapshot = %+v, want content %q", got, "# v2")
	}
}
