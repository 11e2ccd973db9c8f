package provider

import "context"

// Status is a point-in-time availability snapshot, recomputed per call.
type Status struct {
	Available bool   `json:"available"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
}

// CheckStatus re-runs detection and reports the outcome. Unavailability is
// a valid answer here, not an error.
func (d *Detector) CheckStatus(ctx context.Context) Status {
	desc, err := d.Detect(ctx)
	if err != nil {
		return Status{Available: false, Provider: "none", Model: ""}
	}
	return Status{Available: true, Provider: desc.Name, Model: desc.DefaultModel}
}
