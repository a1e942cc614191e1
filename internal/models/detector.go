package models

// Detector is one of the supported anomaly-detection model families.
type Detector struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"` // 'neural' or 'classical'
	ParamNames []string `json:"param_names"`
}

// Detectors lists every model family a tuning run may report against,
// with the hyperparameters the tuning grid explores for each.
var Detectors = []Detector{
	{Name: "Autoencoder", Kind: "neural", ParamNames: []string{"epochs", "latent_dim", "dropout_rate"}},
	{Name: "LOF", Kind: "classical", ParamNames: []string{"n_neighbors", "contamination"}},
	{Name: "EllipticEnvelope", Kind: "classical", ParamNames: []string{"support_fraction", "contamination"}},
	{Name: "IsolationForest", Kind: "classical", ParamNames: []string{"n_estimators", "max_samples", "contamination"}},
	{Name: "OneClassSVM", Kind: "classical", ParamNames: []string{"nu", "kernel", "gamma"}},
}

func DetectorByName(name string) *Detector {
	for i := range Detectors {
		if Detectors[i].Name == name {
			return &Detectors[i]
		}
	}
	return nil
}

func DetectorNames() []string {
	names := make([]string, 0, len(Detectors))
	for _, d := range Detectors {
		names = append(names, d.Name)
	}
	return names
}
