package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/google/uuid"

	"tunereport/internal/metrics"
	"tunereport/internal/models"
)

var (
	ErrRunNotFound  = errors.New("tuning run not found")
	ErrInvalidRunID = errors.New("invalid run ID")
)

// RunStore is the slice of the run repository the ingest path needs.
type RunStore interface {
	Create(run *models.TuningRun) error
	GetByID(id uuid.UUID) (*models.TuningRun, error)
	GetByModel(model string) ([]models.TuningRun, error)
	GetAll() ([]models.TuningRun, error)
	Delete(id uuid.UUID) error
}

type RunService struct {
	runs  RunStore
	cache ReportCache
}

func NewRunService(runs RunStore, cache ReportCache) *RunService {
	return &RunService{
		runs:  runs,
		cache: cache,
	}
}

type CreateRunRequest struct {
	Model          string         `json:"model" binding:"required"`
	F1             float64        `json:"f1"`
	AUC            float64        `json:"auc"`
	Precision      float64        `json:"precision"`
	Recall         float64        `json:"recall"`
	TrainingTimeS  float64        `json:"training_time_s"`
	InferenceTimeS float64        `json:"inference_time_s"`
	Params         []models.Param `json:"params" binding:"required"`
}

func (s *RunService) CreateRun(req CreateRunRequest) (*models.TuningRun, error) {
	if err := validateRunRequest(req); err != nil {
		metrics.RunsRejected.Inc()
		return nil, err
	}

	run := &models.TuningRun{
		Model:          req.Model,
		F1:             req.F1,
		AUC:            req.AUC,
		Precision:      req.Precision,
		Recall:         req.Recall,
		TrainingTimeS:  req.TrainingTimeS,
		InferenceTimeS: req.InferenceTimeS,
		Params:         req.Params,
	}

	if err := s.runs.Create(run); err != nil {
		return nil, fmt.Errorf("failed to save tuning run: %w", err)
	}
	metrics.RunsIngested.Inc()

	// A new run can change the ranking, so cached renderings are stale.
	if err := s.cache.InvalidateReports(context.Background()); err != nil {
		log.Printf("Warning: failed to invalidate report cache: %v", err)
	}

	return run, nil
}

func (s *RunService) GetRun(id string) (*models.TuningRun, error) {
	runUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRunID, err)
	}

	run, err := s.runs.GetByID(runUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tuning run: %w", err)
	}
	if run == nil {
		return nil, ErrRunNotFound
	}

	return run, nil
}

func (s *RunService) ListRuns(model string) ([]models.TuningRun, error) {
	if model == "" {
		return s.runs.GetAll()
	}

	if models.DetectorByName(model) == nil {
		return nil, fmt.Errorf("unknown model: %s", model)
	}
	return s.runs.GetByModel(model)
}

func (s *RunService) DeleteRun(id string) error {
	runUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRunID, err)
	}

	// Verify the run exists so a missing row and a failed delete stay distinct
	run, err := s.runs.GetByID(runUUID)
	if err != nil {
		return fmt.Errorf("failed to get tuning run: %w", err)
	}
	if run == nil {
		return ErrRunNotFound
	}

	if err := s.runs.Delete(runUUID); err != nil {
		return fmt.Errorf("failed to delete tuning run: %w", err)
	}

	if err := s.cache.InvalidateReports(context.Background()); err != nil {
		log.Printf("Warning: failed to invalidate report cache: %v", err)
	}

	return nil
}

func validateRunRequest(req CreateRunRequest) error {
	detector := models.DetectorByName(req.Model)
	if detector == nil {
		return fmt.Errorf("unknown model: %s (supported: %v)", req.Model, models.DetectorNames())
	}

	for _, m := range []struct {
		name  string
		value float64
	}{
		{"f1", req.F1},
		{"auc", req.AUC},
		{"precision", req.Precision},
		{"recall", req.Recall},
	} {
		if m.value < 0 || m.value > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", m.name, m.value)
		}
	}

	if req.TrainingTimeS <= 0 {
		return fmt.Errorf("training_time_s must be positive, got %v", req.TrainingTimeS)
	}
	if req.InferenceTimeS < 0 {
		return fmt.Errorf("inference_time_s cannot be negative, got %v", req.InferenceTimeS)
	}

	if len(req.Params) == 0 {
		return fmt.Errorf("params cannot be empty")
	}
	for _, p := range req.Params {
		if p.Name == "" || p.Value == "" {
			return fmt.Errorf("params entries need both name and value")
		}
		if !slices.Contains(detector.ParamNames, p.Name) {
			return fmt.Errorf("model %s does not take parameter %q (known: %v)",
				req.Model, p.Name, detector.ParamNames)
		}
	}

	return nil
}
