package services

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"tunereport/internal/models"
)

// BestRunSource is the slice of the run repository the ranking needs.
type BestRunSource interface {
	GetBestPerModel() ([]models.TuningRun, error)
	GetByModel(model string) ([]models.TuningRun, error)
}

type LeaderboardService struct {
	runs BestRunSource
}

func NewLeaderboardService(runs BestRunSource) *LeaderboardService {
	return &LeaderboardService{runs: runs}
}

// Leaderboard builds the report rows from each model's best run, ranked by
// F1 descending. Ties fall to the higher AUC, then the lower training time.
// Models with no runs yet are simply absent.
func (s *LeaderboardService) Leaderboard() (*models.Report, error) {
	best, err := s.runs.GetBestPerModel()
	if err != nil {
		return nil, fmt.Errorf("failed to load best runs: %w", err)
	}

	return RankRuns(best), nil
}

// RankRuns orders one best-run-per-model slice into a ranked report.
// Exported so the offline generator can share the ranking rule.
func RankRuns(best []models.TuningRun) *models.Report {
	sorted := make([]models.TuningRun, len(best))
	copy(sorted, best)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].F1 != sorted[j].F1 {
			return sorted[i].F1 > sorted[j].F1
		}
		if sorted[i].AUC != sorted[j].AUC {
			return sorted[i].AUC > sorted[j].AUC
		}
		return sorted[i].TrainingTimeS < sorted[j].TrainingTimeS
	})

	report := &models.Report{}
	for i, run := range sorted {
		report.Performance = append(report.Performance, models.PerformanceRow{
			Rank:           i + 1,
			Model:          run.Model,
			F1:             run.F1,
			AUC:            run.AUC,
			Precision:      run.Precision,
			Recall:         run.Recall,
			TrainingTimeS:  run.TrainingTimeS,
			InferenceTimeS: run.InferenceTimeS,
		})
		report.Parameters = append(report.Parameters, models.ParameterRow{
			Model:  run.Model,
			Params: run.Params,
		})
	}

	return report
}

// Summaries aggregates every trial of each model across the tuning grid.
func (s *LeaderboardService) Summaries() ([]models.ModelSummary, error) {
	var summaries []models.ModelSummary

	for _, d := range models.Detectors {
		runs, err := s.runs.GetByModel(d.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to load runs for %s: %w", d.Name, err)
		}
		if len(runs) == 0 {
			continue
		}

		f1s := make([]float64, len(runs))
		aucs := make([]float64, len(runs))
		for i, run := range runs {
			f1s[i] = run.F1
			aucs[i] = run.AUC
		}

		// GetByModel orders by F1 descending, so the best run leads.
		best := runs[0]

		stddev := 0.0
		if len(f1s) > 1 {
			stddev = stat.StdDev(f1s, nil)
		}

		summaries = append(summaries, models.ModelSummary{
			Model:     d.Name,
			Trials:    len(runs),
			BestF1:    best.F1,
			MeanF1:    stat.Mean(f1s, nil),
			StdDevF1:  stddev,
			MeanAUC:   stat.Mean(aucs, nil),
			BestRunID: best.ID.String(),
		})
	}

	return summaries, nil
}
