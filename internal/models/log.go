package models

// RunLogEntry represents metadata for a locally saved training-run log.
type RunLogEntry struct {
	RunID        string `yaml:"run_id"`
	ExperimentID string `yaml:"experiment_id"`
	RunName      string `yaml:"run_name"`
	Status       string `yaml:"status"`
	Size         int    `yaml:"size"`
	SavedAt      string `yaml:"saved_at"`
}
