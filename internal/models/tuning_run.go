package models

import (
	"time"

	"github.com/google/uuid"
)

// Param is a single hyperparameter setting. Order matters: runs keep their
// parameters in the order the tuning grid defines them, and reports print
// them in that order.
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TuningRun is one completed trial of a model on the tuning grid.
type TuningRun struct {
	ID             uuid.UUID `json:"id"`
	Model          string    `json:"model"`
	F1             float64   `json:"f1"`
	AUC            float64   `json:"auc"`
	Precision      float64   `json:"precision"`
	Recall         float64   `json:"recall"`
	TrainingTimeS  float64   `json:"training_time_s"`
	InferenceTimeS float64   `json:"inference_time_s"`
	Params         []Param   `json:"params"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *TuningRun) Prepare() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
}
