package api

// Status enums mirror the backend exactly. Values arrive as plain strings;
// the client never enforces transitions, it only displays them.

// JobStatus is the lifecycle state of a generation job.
type JobStatus string

const (
	JobQueued     JobStatus = "queued"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
	JobCancelled  JobStatus = "cancelled"
)

// Terminal reports whether the job can no longer change state.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed || s == JobCancelled
}

// RunStatus is the lifecycle state of a training run.
type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
	RunCancelled RunStatus = "cancelled"
)

// Live reports whether the run may still emit log output.
func (s RunStatus) Live() bool {
	return s == RunPending || s == RunRunning
}

// ExperimentStatus is the lifecycle state of an experiment.
type ExperimentStatus string

const (
	ExperimentDraft     ExperimentStatus = "DRAFT"
	ExperimentRunning   ExperimentStatus = "RUNNING"
	ExperimentCompleted ExperimentStatus = "COMPLETED"
	ExperimentFailed    ExperimentStatus = "FAILED"
	ExperimentArchived  ExperimentStatus = "ARCHIVED"
)

// DatasetType distinguishes supervised fine-tuning data from preference data.
type DatasetType string

const (
	DatasetSupervised DatasetType = "supervised"
	DatasetPreference DatasetType = "preference"
)

// TargetType names the entity kinds that can be favorited.
type TargetType string

const (
	TargetPrompt TargetType = "prompt"
	TargetAudio  TargetType = "audio"
)
