package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"tunereport/internal/models"
)

func newReportStack(t *testing.T) (*fakeCache, *fakeSnapshotStore, *RunService, *ReportService) {
	t.Helper()

	store := &fakeRunStore{}
	cache := newFakeCache()
	snapshots := &fakeSnapshotStore{}

	runService := NewRunService(store, cache)
	reportService := NewReportService(NewLeaderboardService(store), snapshots, cache, 5*time.Minute)

	return cache, snapshots, runService, reportService
}

func lofRequest() CreateRunRequest {
	return CreateRunRequest{
		Model:          "LOF",
		F1:             0.9488,
		AUC:            0.9757,
		Precision:      0.9636,
		Recall:         0.9344,
		TrainingTimeS:  1.939,
		InferenceTimeS: 0.2484,
		Params: []models.Param{
			{Name: "n_neighbors", Value: "20"},
			{Name: "contamination", Value: "0.1"},
		},
	}
}

func TestRenderCachesWithConfiguredTTL(t *testing.T) {
	cache, snapshots, runService, reportService := newReportStack(t)

	if _, err := runService.CreateRun(lofRequest()); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	content, err := reportService.Render(FormatMarkdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if cached := cache.entries[FormatMarkdown]; cached != content {
		t.Errorf("cached content = %q, want the rendered report", cached)
	}
	if ttl := cache.ttls[FormatMarkdown]; ttl != 5*time.Minute {
		t.Errorf("cache TTL = %v, want the configured 5m", ttl)
	}
	if len(snapshots.snapshots) != 1 {
		t.Errorf("snapshot count = %d, want 1 for a fresh render", len(snapshots.snapshots))
	}
}

func TestRenderServesCachedReport(t *testing.T) {
	cache, snapshots, _, reportService := newReportStack(t)

	// Even with no runs stored, a cached rendering short-circuits the pipeline.
	sentinel := "# previously rendered\n"
	if err := cache.StoreReport(context.Background(), FormatMarkdown, sentinel, time.Minute); err != nil {
		t.Fatalf("StoreReport failed: %v", err)
	}

	content, err := reportService.Render(FormatMarkdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if content != sentinel {
		t.Errorf("Render = %q, want the cached report", content)
	}
	if len(snapshots.snapshots) != 0 {
		t.Errorf("snapshot count = %d, want 0 on a cache hit", len(snapshots.snapshots))
	}
}

func TestCreateRunInvalidatesReportCache(t *testing.T) {
	cache, snapshots, runService, reportService := newReportStack(t)

	if _, err := runService.CreateRun(lofRequest()); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	first, err := reportService.Render(FormatMarkdown)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(first, "IsolationForest") {
		t.Fatalf("report mentions IsolationForest before its run was ingested:\n%s", first)
	}

	// A second render comes from the cache and persists nothing new.
	if _, err := reportService.Render(FormatMarkdown); err != nil {
		t.Fatalf("cached Render failed: %v", err)
	}
	if len(snapshots.snapshots) != 1 {
		t.Fatalf("snapshot count = %d after cached render, want 1", len(snapshots.snapshots))
	}

	if _, err := runService.CreateRun(validRequest()); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}
	if len(cache.entries) != 0 {
		t.Errorf("cache still holds %d reports after ingest, want 0", len(cache.entries))
	}

	second, err := reportService.Render(FormatMarkdown)
	if err != nil {
		t.Fatalf("Render after ingest failed: %v", err)
	}
	if !strings.Contains(second, "IsolationForest") {
		t.Errorf("re-rendered report does not include the new run:\n%s", second)
	}
	if len(snapshots.snapshots) != 2 {
		t.Errorf("snapshot count = %d after re-render, want 2", len(snapshots.snapshots))
	}
}

func TestDeleteRunInvalidatesReportCache(t *testing.T) {
	cache, _, runService, reportService := newReportStack(t)

	run, err := runService.CreateRun(lofRequest())
	if err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	if _, err := reportService.Render(FormatMarkdown); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(cache.entries) == 0 {
		t.Fatal("expected the render to be cached")
	}

	if err := runService.DeleteRun(run.ID.String()); err != nil {
		t.Fatalf("DeleteRun failed: %v", err)
	}
	if len(cache.entries) != 0 {
		t.Errorf("cache still holds %d reports after delete, want 0", len(cache.entries))
	}
}

func TestRenderWithoutRuns(t *testing.T) {
	_, _, _, reportService := newReportStack(t)

	if _, err := reportService.Render(FormatMarkdown); err == nil {
		t.Error("expected an error when no runs are recorded")
	}
}
