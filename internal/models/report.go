package models

// PerformanceRow is one ranked line of the performance comparison table:
// the best run of a model, ranked against the other models' best runs.
type PerformanceRow struct {
	Rank           int     `json:"rank"`
	Model          string  `json:"model"`
	F1             float64 `json:"f1"`
	AUC            float64 `json:"auc"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	TrainingTimeS  float64 `json:"training_time_s"`
	InferenceTimeS float64 `json:"inference_time_s"`
}

// ParameterRow is one line of the optimal-hyperparameters table.
type ParameterRow struct {
	Model  string  `json:"model"`
	Params []Param `json:"params"`
}

// Report holds both tables of the tuning results report. The two slices are
// index-aligned: row i of Parameters belongs to the model ranked i+1 in
// Performance.
type Report struct {
	Performance []PerformanceRow `json:"performance"`
	Parameters  []ParameterRow   `json:"parameters"`
}

// ModelSummary aggregates every trial of one model across the tuning grid.
type ModelSummary struct {
	Model     string  `json:"model"`
	Trials    int     `json:"trials"`
	BestF1    float64 `json:"best_f1"`
	MeanF1    float64 `json:"mean_f1"`
	StdDevF1  float64 `json:"stddev_f1"`
	MeanAUC   float64 `json:"mean_auc"`
	BestRunID string  `json:"best_run_id"`
}
