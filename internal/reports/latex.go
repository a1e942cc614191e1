package reports

import (
	"fmt"
	"strings"

	"tunereport/internal/models"
)

// RenderLaTeX produces both tables as LaTeX table environments, suitable for
// pasting into a writeup.
func RenderLaTeX(report *models.Report) string {
	var b strings.Builder

	b.WriteString(`\begin{table}[htbp]
\centering
\caption{Hyperparameter Tuning Results for All Models}
\label{tab:hyperparameter-results}
\begin{tabular}{|l|l|c|c|c|c|c|}
\hline
\textbf{Rank} & \textbf{Model} & \textbf{F1-Score} & \textbf{AUC} & \textbf{Precision} & \textbf{Recall} & \textbf{Training Time} \\
\hline
`)

	for _, row := range report.Performance {
		fmt.Fprintf(&b, "%d & %s & %s & %s & %s & %s & %s \\\\\n",
			row.Rank,
			row.Model,
			Metric(row.F1),
			Metric(row.AUC),
			Metric(row.Precision),
			Metric(row.Recall),
			TrainingTime(row.TrainingTimeS),
		)
		b.WriteString("\\hline\n")
	}

	b.WriteString(`\end{tabular}
\end{table}

% Optimal Parameters Table
\begin{table}[htbp]
\centering
\caption{Optimal Hyperparameters for Each Model}
\label{tab:optimal-parameters}
\begin{tabular}{|l|p{8cm}|}
\hline
\textbf{Model} & \textbf{Optimal Parameters} \\
\hline
`)

	for _, row := range report.Parameters {
		fmt.Fprintf(&b, "%s & %s \\\\\n", row.Model, escapeLaTeX(Params(row.Params)))
		b.WriteString("\\hline\n")
	}

	b.WriteString(`\end{tabular}
\end{table}`)

	return b.String()
}

// Parameter names use underscores (n_neighbors, support_fraction), which
// LaTeX treats as subscript markers outside math mode.
func escapeLaTeX(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}
