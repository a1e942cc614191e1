package reports

import (
	"encoding/csv"
	"strconv"
	"strings"

	"tunereport/internal/models"
)

var csvHeader = []string{
	"Rank",
	"Model",
	"Best_F1",
	"Best_AUC",
	"Best_Precision",
	"Best_Recall",
	"Optimal_Parameters",
	"Training_Time",
	"Inference_Time",
}

// RenderCSV produces the flat summary-table rendering with the same column
// layout the tuning pipeline's summary files use.
func RenderCSV(report *models.Report) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	params := make(map[string][]models.Param, len(report.Parameters))
	for _, row := range report.Parameters {
		params[row.Model] = row.Params
	}

	for _, row := range report.Performance {
		record := []string{
			strconv.Itoa(row.Rank),
			row.Model,
			Metric(row.F1),
			Metric(row.AUC),
			Metric(row.Precision),
			Metric(row.Recall),
			Params(params[row.Model]),
			TrainingTime(row.TrainingTimeS),
			InferenceTime(row.InferenceTimeS),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return b.String(), nil
}
