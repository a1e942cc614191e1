package reports

import (
	"fmt"

	"tunereport/internal/models"
)

// Validate checks a report's internal consistency before it is rendered:
// every detector appears exactly once in each table, metrics stay inside
// their ranges, training times are positive, and the rank column follows the
// F1-descending ordering. It returns every violation found, not just the
// first.
func Validate(report *models.Report) []error {
	var errs []error

	seen := make(map[string]int)
	for _, row := range report.Performance {
		seen[row.Model]++
	}
	for _, d := range models.Detectors {
		switch n := seen[d.Name]; {
		case n == 0:
			errs = append(errs, fmt.Errorf("model %s missing from performance table", d.Name))
		case n > 1:
			errs = append(errs, fmt.Errorf("model %s appears %d times in performance table", d.Name, n))
		}
	}
	for name := range seen {
		if models.DetectorByName(name) == nil {
			errs = append(errs, fmt.Errorf("unknown model %s in performance table", name))
		}
	}

	seenParams := make(map[string]int)
	for _, row := range report.Parameters {
		seenParams[row.Model]++
		if len(row.Params) == 0 {
			errs = append(errs, fmt.Errorf("model %s has no hyperparameters", row.Model))
		}
	}
	for _, d := range models.Detectors {
		switch n := seenParams[d.Name]; {
		case n == 0:
			errs = append(errs, fmt.Errorf("model %s missing from parameter table", d.Name))
		case n > 1:
			errs = append(errs, fmt.Errorf("model %s appears %d times in parameter table", d.Name, n))
		}
	}

	for _, row := range report.Performance {
		for _, m := range []struct {
			name  string
			value float64
		}{
			{"f1", row.F1},
			{"auc", row.AUC},
			{"precision", row.Precision},
			{"recall", row.Recall},
		} {
			if m.value < 0 || m.value > 1 {
				errs = append(errs, fmt.Errorf("model %s: %s=%v out of [0,1]", row.Model, m.name, m.value))
			}
		}
		if row.TrainingTimeS <= 0 {
			errs = append(errs, fmt.Errorf("model %s: training time %vs must be positive", row.Model, row.TrainingTimeS))
		}
	}

	for i, row := range report.Performance {
		if row.Rank != i+1 {
			errs = append(errs, fmt.Errorf("rank %d at position %d breaks the 1..N sequence", row.Rank, i+1))
		}
		if i > 0 && row.F1 > report.Performance[i-1].F1 {
			errs = append(errs, fmt.Errorf("model %s ranked below %s despite higher F1",
				row.Model, report.Performance[i-1].Model))
		}
	}

	return errs
}
