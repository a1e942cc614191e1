// Package reports renders the tuning results report in its three supported
// formats and checks a rendered ranking for internal consistency.
package reports

import (
	"fmt"
	"strings"

	"tunereport/internal/models"
)

// Metric formats a score in [0,1] the way the report prints it.
func Metric(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// TrainingTime formats seconds with the report's unit suffix.
func TrainingTime(v float64) string {
	return fmt.Sprintf("%.3fs", v)
}

// InferenceTime keeps the extra digit the summary CSV carries.
func InferenceTime(v float64) string {
	return fmt.Sprintf("%.4fs", v)
}

// Params renders an ordered hyperparameter list as "a=1, b=2".
func Params(params []models.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+"="+p.Value)
	}
	return strings.Join(parts, ", ")
}
