package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"tunereport/internal/metrics"
	"tunereport/internal/models"
	"tunereport/internal/reports"
)

const (
	FormatMarkdown = "markdown"
	FormatLaTeX    = "latex"
	FormatCSV      = "csv"
)

var (
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrInvalidSnapshotID = errors.New("invalid snapshot ID")
)

// ReportCache is the slice of the redis repository the report pipeline needs.
type ReportCache interface {
	StoreReport(ctx context.Context, format string, content string, ttl time.Duration) error
	GetReport(ctx context.Context, format string) (string, bool, error)
	InvalidateReports(ctx context.Context) error
}

// SnapshotStore persists rendered reports.
type SnapshotStore interface {
	Create(snapshot *models.ReportSnapshot) error
	GetByID(id uuid.UUID) (*models.ReportSnapshot, error)
	GetLatestByFormat(format string) (*models.ReportSnapshot, error)
	List(limit int) ([]models.ReportSnapshot, error)
}

type ReportService struct {
	leaderboard *LeaderboardService
	snapshots   SnapshotStore
	cache       ReportCache
	cacheTTL    time.Duration
}

func NewReportService(
	leaderboard *LeaderboardService,
	snapshots SnapshotStore,
	cache ReportCache,
	cacheTTL time.Duration,
) *ReportService {
	return &ReportService{
		leaderboard: leaderboard,
		snapshots:   snapshots,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// Render returns the current report in the requested format, serving from
// the Redis cache when the ranking has not changed since the last render.
// Every fresh render is persisted as a snapshot.
func (s *ReportService) Render(format string) (string, error) {
	if format != FormatMarkdown && format != FormatLaTeX && format != FormatCSV {
		return "", fmt.Errorf("unsupported report format: %s", format)
	}

	ctx := context.Background()

	cached, ok, err := s.cache.GetReport(ctx, format)
	if err != nil {
		log.Printf("Warning: report cache lookup failed: %v", err)
	}
	if ok {
		metrics.ReportCacheHits.Inc()
		return cached, nil
	}

	start := time.Now()

	report, err := s.leaderboard.Leaderboard()
	if err != nil {
		return "", err
	}
	if len(report.Performance) == 0 {
		return "", fmt.Errorf("no tuning runs recorded yet")
	}

	content, err := renderFormat(report, format)
	if err != nil {
		return "", fmt.Errorf("failed to render %s report: %w", format, err)
	}

	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	metrics.ReportsRendered.WithLabelValues(format).Inc()

	if err := s.cache.StoreReport(ctx, format, content, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache %s report: %v", format, err)
	}

	sum := sha256.Sum256([]byte(content))
	snapshot := &models.ReportSnapshot{
		Format:   format,
		Content:  content,
		Checksum: hex.EncodeToString(sum[:]),
	}
	if err := s.snapshots.Create(snapshot); err != nil {
		log.Printf("Warning: failed to persist %s report snapshot: %v", format, err)
	}

	return content, nil
}

// Check validates the current leaderboard against the report's consistency
// rules without rendering anything.
func (s *ReportService) Check() ([]string, error) {
	report, err := s.leaderboard.Leaderboard()
	if err != nil {
		return nil, err
	}

	var problems []string
	for _, err := range reports.Validate(report) {
		problems = append(problems, err.Error())
	}
	return problems, nil
}

// LatestSnapshot returns the most recently persisted rendering in the given
// format, which may be older than the current leaderboard.
func (s *ReportService) LatestSnapshot(format string) (*models.ReportSnapshot, error) {
	if format != FormatMarkdown && format != FormatLaTeX && format != FormatCSV {
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}

	snapshot, err := s.snapshots.GetLatestByFormat(format)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("%w: no %s report rendered yet", ErrSnapshotNotFound, format)
	}

	return snapshot, nil
}

func (s *ReportService) ListSnapshots(limit int) ([]models.ReportSnapshot, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.snapshots.List(limit)
}

func (s *ReportService) GetSnapshot(id string) (*models.ReportSnapshot, error) {
	snapshotUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshotID, err)
	}

	snapshot, err := s.snapshots.GetByID(snapshotUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}

	return snapshot, nil
}

func renderFormat(report *models.Report, format string) (string, error) {
	switch format {
	case FormatMarkdown:
		return reports.RenderMarkdown(report), nil
	case FormatLaTeX:
		return reports.RenderLaTeX(report), nil
	case FormatCSV:
		return reports.RenderCSV(report)
	}
	return "", fmt.Errorf("unsupported report format: %s", format)
}
