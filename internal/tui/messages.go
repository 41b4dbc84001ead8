package tui

import (
	"github.com/text2song/studio/internal/api"
	"github.com/text2song/studio/internal/models"
)

// PromptsLoadedMsg carries the recent prompts page.
type PromptsLoadedMsg struct {
	Prompts []api.Prompt
	Total   int
}

// PromptFavoritesMsg carries the set of favorited prompt IDs.
type PromptFavoritesMsg struct {
	IDs map[string]bool
}

// FavoriteToggledMsg signals a favorite was added or removed.
// Favorite is nil when the toggle removed it.
type FavoriteToggledMsg struct {
	TargetID string
	Favorite *api.Favorite
}

// ExperimentsLoadedMsg carries the experiment listing.
type ExperimentsLoadedMsg struct {
	Experiments []api.Experiment
}

// RunsLoadedMsg carries the runs of one experiment.
type RunsLoadedMsg struct {
	ExperimentID string
	Runs         []api.ExperimentRun
}

// AdaptersLoadedMsg carries the adapter listing.
type AdaptersLoadedMsg struct {
	Adapters []api.Adapter
}

// DatasetsLoadedMsg carries the dataset listing.
type DatasetsLoadedMsg struct {
	Datasets []api.Dataset
}

// GenerationStartedMsg signals a generation job was accepted.
type GenerationStartedMsg struct {
	Job *api.GenerationJob
}

// JobUpdatedMsg carries a fresh snapshot of the active generation job.
type JobUpdatedMsg struct {
	Job *api.GenerationJob
}

// JobFeedbackLoadedMsg carries the per-sample feedback of a job.
type JobFeedbackLoadedMsg struct {
	Feedback *api.JobFeedback
}

// FeedbackSavedMsg signals a feedback record was created.
type FeedbackSavedMsg struct {
	Feedback *api.Feedback
}

// PromptTextMsg carries resolved prompt text for display.
type PromptTextMsg struct {
	ID   string
	Text string
}

// ExperimentSavedMsg signals an experiment was created or updated.
type ExperimentSavedMsg struct {
	Experiment *api.Experiment
}

// AdapterSavedMsg signals an adapter was created or updated.
type AdapterSavedMsg struct {
	Adapter *api.Adapter
}

// AdapterDeletedMsg signals an adapter was deleted.
type AdapterDeletedMsg struct {
	ID string
}

// AdapterVersionActivatedMsg signals a version activation completed.
type AdapterVersionActivatedMsg struct {
	AdapterID string
}

// DatasetSavedMsg signals a dataset was created.
type DatasetSavedMsg struct {
	Dataset *api.Dataset
}

// DatasetDeletedMsg signals a dataset was deleted.
type DatasetDeletedMsg struct {
	ID string
}

// DatasetExportedMsg carries the result of a dataset export.
type DatasetExportedMsg struct {
	Export *api.DatasetExport
}

// LogSavedMsg signals the log buffer was written to disk.
type LogSavedMsg struct {
	Entry *models.RunLogEntry
}

// SettingsSavedMsg signals settings were persisted.
type SettingsSavedMsg struct{}

// SettingsChangedMsg signals the settings file changed on disk.
type SettingsChangedMsg struct {
	Settings *models.Settings
}

// LogSessionMsg signals the log session has new data or a state change.
type LogSessionMsg struct{}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearSavedMsg clears the "Saved" indicator.
type ClearSavedMsg struct{}

// jobPollTickMsg drives generation job polling.
type jobPollTickMsg struct{}

// runPollTickMsg drives run refresh while a run is live.
type runPollTickMsg struct{}

// spinnerTickMsg advances the animated spinner for live runs.
type spinnerTickMsg struct{}
