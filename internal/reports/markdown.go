package reports

import (
	"fmt"
	"strings"

	"tunereport/internal/models"
)

// RenderMarkdown produces the two-table markdown report.
func RenderMarkdown(report *models.Report) string {
	var b strings.Builder

	b.WriteString("# Hyperparameter Tuning Results\n")
	b.WriteString("\n")
	b.WriteString("## Table 1: Model Performance Comparison\n")
	b.WriteString("\n")
	b.WriteString("| Rank | Model | F1-Score | AUC | Precision | Recall | Training Time |\n")
	b.WriteString("|------|-------|----------|-----|-----------|---------|---------------|\n")

	for _, row := range report.Performance {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			row.Rank,
			row.Model,
			Metric(row.F1),
			Metric(row.AUC),
			Metric(row.Precision),
			Metric(row.Recall),
			TrainingTime(row.TrainingTimeS),
		)
	}

	b.WriteString("\n## Table 2: Optimal Hyperparameters\n\n")
	b.WriteString("| Model | Optimal Parameters |\n")
	b.WriteString("|-------|--------------------|\n")

	for _, row := range report.Parameters {
		fmt.Fprintf(&b, "| %s | %s |\n", row.Model, Params(row.Params))
	}

	return b.String()
}
