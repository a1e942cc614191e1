// Package summary loads tuning summary CSV files, the flat per-model export
// the tuning pipeline writes after a grid search.
package summary

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tunereport/internal/models"
)

// Expected header of a tuning summary file.
var expectedColumns = []string{
	"Model",
	"Best_F1",
	"Best_AUC",
	"Best_Precision",
	"Best_Recall",
	"Best_Parameters",
	"Training_Time",
	"Inference_Time",
}

// Load reads a tuning summary CSV into one best run per model. Column order
// is taken from the header, so extra columns are tolerated.
func Load(r io.Reader) ([]models.TuningRun, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range expectedColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("summary file missing column %q", name)
		}
	}

	var runs []models.TuningRun
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		line++

		run, err := parseRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		runs = append(runs, *run)
	}

	if len(runs) == 0 {
		return nil, fmt.Errorf("summary file has no data rows")
	}

	return runs, nil
}

func parseRecord(record []string, cols map[string]int) (*models.TuningRun, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[cols[name]])
	}

	run := &models.TuningRun{Model: field("Model")}
	if run.Model == "" {
		return nil, fmt.Errorf("empty model name")
	}

	for _, f := range []struct {
		column string
		dest   *float64
	}{
		{"Best_F1", &run.F1},
		{"Best_AUC", &run.AUC},
		{"Best_Precision", &run.Precision},
		{"Best_Recall", &run.Recall},
		{"Training_Time", &run.TrainingTimeS},
		{"Inference_Time", &run.InferenceTimeS},
	} {
		v, err := parseSeconds(field(f.column))
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", f.column, err)
		}
		*f.dest = v
	}

	params, err := ParseParams(field("Best_Parameters"))
	if err != nil {
		return nil, fmt.Errorf("column Best_Parameters: %w", err)
	}
	run.Params = params

	return run, nil
}

// parseSeconds accepts plain floats and already-formatted values with a
// trailing unit suffix ("1.939s").
func parseSeconds(s string) (float64, error) {
	s = strings.TrimSuffix(s, "s")
	return strconv.ParseFloat(s, 64)
}

// ParseParams parses a parameter string in either the cleaned report form
// ("n_neighbors=20, contamination=0.1") or the raw python-dict export the
// pipeline sometimes writes ("{'n_neighbors': 20, 'contamination': 0.1}"),
// preserving order.
func ParseParams(s string) ([]models.Param, error) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "{}")
	s = strings.ReplaceAll(s, "'", "")
	if s == "" {
		return nil, fmt.Errorf("empty parameter list")
	}

	var params []models.Param
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var name, value string
		if i := strings.Index(part, "="); i >= 0 {
			name, value = part[:i], part[i+1:]
		} else if i := strings.Index(part, ":"); i >= 0 {
			name, value = part[:i], part[i+1:]
		} else {
			return nil, fmt.Errorf("cannot parse parameter %q", part)
		}

		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			return nil, fmt.Errorf("cannot parse parameter %q", part)
		}

		params = append(params, models.Param{Name: name, Value: value})
	}

	return params, nil
}
