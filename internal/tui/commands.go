package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/text2song/studio/internal/api"
	"github.com/text2song/studio/internal/config"
	"github.com/text2song/studio/internal/models"
)

const requestTimeout = 5 * time.Second

func loadPromptsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := client.ListPrompts(ctx, 1, 50)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load prompts: %w", err)}
		}
		return PromptsLoadedMsg{Prompts: list.Items, Total: list.Total}
	}
}

func loadPromptFavoritesCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := client.ListFavorites(ctx, api.FavoriteListOptions{
			TargetType: api.TargetPrompt,
			Limit:      100,
		})
		if err != nil {
			// Favorites are decoration on the prompt list; keep the list usable.
			return PromptFavoritesMsg{IDs: map[string]bool{}}
		}
		ids := make(map[string]bool, len(list.Items))
		for _, f := range list.Items {
			ids[f.TargetID] = true
		}
		return PromptFavoritesMsg{IDs: ids}
	}
}

func toggleFavoriteCmd(client *api.Client, targetType api.TargetType, targetID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		fav, err := client.ToggleFavorite(ctx, targetType, targetID, "")
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to toggle favorite: %w", err)}
		}
		return FavoriteToggledMsg{TargetID: targetID, Favorite: fav}
	}
}

func loadExperimentsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := client.ListExperiments(ctx, api.ExperimentListOptions{Limit: 50})
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load experiments: %w", err)}
		}
		return ExperimentsLoadedMsg{Experiments: list.Items}
	}
}

func loadRunsCmd(client *api.Client, experimentID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		runs, err := client.ListRuns(ctx, experimentID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load runs: %w", err)}
		}
		return RunsLoadedMsg{ExperimentID: experimentID, Runs: runs}
	}
}

func loadAdaptersCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := client.ListAdapters(ctx, api.AdapterListOptions{Limit: 100})
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load adapters: %w", err)}
		}
		return AdaptersLoadedMsg{Adapters: list.Items}
	}
}

func loadDatasetsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := client.ListDatasets(ctx, 1, 100)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load datasets: %w", err)}
		}
		return DatasetsLoadedMsg{Datasets: list.Items}
	}
}

// submitGenerationCmd creates a prompt and starts a generation job from it.
func submitGenerationCmd(client *api.Client, req api.PromptCreate, defaults models.GenerationDefaults) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		prompt, err := client.CreatePrompt(ctx, req)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to create prompt: %w", err)}
		}
		job, err := client.Generate(ctx, generationRequest(prompt.ID, defaults))
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to start generation: %w", err)}
		}
		return GenerationStartedMsg{Job: job}
	}
}

// generateFromPromptCmd starts a generation job for an existing prompt.
func generateFromPromptCmd(client *api.Client, promptID string, defaults models.GenerationDefaults) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		job, err := client.Generate(ctx, generationRequest(promptID, defaults))
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to start generation: %w", err)}
		}
		return GenerationStartedMsg{Job: job}
	}
}

func generationRequest(promptID string, defaults models.GenerationDefaults) api.GenerationRequest {
	req := api.GenerationRequest{PromptID: promptID, NumSamples: defaults.NumSamples}
	if defaults.Temperature > 0 {
		t := defaults.Temperature
		req.Temperature = &t
	}
	if defaults.TopK > 0 {
		k := defaults.TopK
		req.TopK = &k
	}
	if defaults.Duration > 0 {
		d := defaults.Duration
		req.Duration = &d
	}
	return req
}

func pollJobCmd(client *api.Client, jobID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		job, err := client.GetJob(ctx, jobID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to poll job: %w", err)}
		}
		return JobUpdatedMsg{Job: job}
	}
}

func cancelJobCmd(client *api.Client, jobID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.CancelJob(ctx, jobID); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to cancel job: %w", err)}
		}
		return pollJobCmd(client, jobID)()
	}
}

func loadJobFeedbackCmd(client *api.Client, jobID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		fb, err := client.GetJobFeedback(ctx, jobID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load job feedback: %w", err)}
		}
		return JobFeedbackLoadedMsg{Feedback: fb}
	}
}

func submitFeedbackCmd(client *api.Client, in api.FeedbackInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		fb, err := client.CreateFeedback(ctx, in)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to submit feedback: %w", err)}
		}
		return FeedbackSavedMsg{Feedback: fb}
	}
}

// loadPromptTextCmd resolves prompt text for display, consulting the cache
// first so repeated selections don't refetch.
func loadPromptTextCmd(client *api.Client, cache *lru.Cache[string, string], promptID string) tea.Cmd {
	return func() tea.Msg {
		if text, ok := cache.Get(promptID); ok {
			return PromptTextMsg{ID: promptID, Text: text}
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		prompt, err := client.GetPrompt(ctx, promptID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load prompt: %w", err)}
		}
		cache.Add(promptID, prompt.Text)
		return PromptTextMsg{ID: promptID, Text: prompt.Text}
	}
}

func createExperimentCmd(client *api.Client, req api.ExperimentCreate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		exp, err := client.CreateExperiment(ctx, req)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to create experiment: %w", err)}
		}
		return ExperimentSavedMsg{Experiment: exp}
	}
}

func createAdapterCmd(client *api.Client, req api.AdapterCreate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		adapter, err := client.CreateAdapter(ctx, req)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to create adapter: %w", err)}
		}
		return AdapterSavedMsg{Adapter: adapter}
	}
}

func deleteAdapterCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.DeleteAdapter(ctx, id); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to delete adapter: %w", err)}
		}
		return AdapterDeletedMsg{ID: id}
	}
}

// activateLatestVersionCmd activates the newest version of an adapter.
func activateLatestVersionCmd(client *api.Client, adapterID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		detail, err := client.GetAdapter(ctx, adapterID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load adapter: %w", err)}
		}
		if len(detail.Versions) == 0 {
			return ErrorMsg{Err: fmt.Errorf("adapter %s has no versions", detail.Name)}
		}
		latest := detail.Versions[len(detail.Versions)-1]
		if err := client.ActivateAdapterVersion(ctx, adapterID, latest.ID); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to activate version: %w", err)}
		}
		return AdapterVersionActivatedMsg{AdapterID: adapterID}
	}
}

func createDatasetCmd(client *api.Client, req api.DatasetCreate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		ds, err := client.CreateDataset(ctx, req)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to create dataset: %w", err)}
		}
		return DatasetSavedMsg{Dataset: ds}
	}
}

func exportDatasetCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		export, err := client.ExportDataset(ctx, id, "jsonl")
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to export dataset: %w", err)}
		}
		return DatasetExportedMsg{Export: export}
	}
}

func deleteDatasetCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.DeleteDataset(ctx, id); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to delete dataset: %w", err)}
		}
		return DatasetDeletedMsg{ID: id}
	}
}

// saveRunLogCmd persists the current log buffer under the local logs dir.
func saveRunLogCmd(runID, experimentID, runName, status string, content []byte) tea.Cmd {
	return func() tea.Msg {
		entry, err := config.WriteRunLog(runID, experimentID, runName, status, content)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to save log: %w", err)}
		}
		return LogSavedMsg{Entry: entry}
	}
}

func saveSettingsCmd(settings *models.Settings) tea.Cmd {
	return func() tea.Msg {
		if err := config.SaveSettings(settings); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to save settings: %w", err)}
		}
		return SettingsSavedMsg{}
	}
}

// watchSettingsCmd forwards settings-file change events to the program.
// The goroutine exits when the watcher is stopped.
func watchSettingsCmd(watcher *config.Watcher, program *programRef) tea.Cmd {
	return func() tea.Msg {
		go func() {
			for range watcher.Events() {
				settings, err := config.LoadSettings()
				if err != nil {
					continue
				}
				program.Send(SettingsChangedMsg{Settings: settings})
			}
		}()
		return nil
	}
}

func jobPollTick() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return jobPollTickMsg{}
	})
}

func runPollTick() tea.Cmd {
	return tea.Tick(2*time.Second, func(_ time.Time) tea.Msg {
		return runPollTickMsg{}
	})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(_ time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearSavedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearSavedMsg{}
	})
}
