package api

import "context"

// ModelConfig describes one loadable base model.
type ModelConfig struct {
	ID                  string  `json:"id"`
	DisplayName         string  `json:"display_name"`
	HFModelID           string  `json:"hf_model_id"`
	MaxDurationSeconds  int     `json:"max_duration_seconds"`
	RecommendedDuration int     `json:"recommended_duration_seconds"`
	VRAMRequirementGB   float64 `json:"vram_requirement_gb"`
	SampleRate          int     `json:"sample_rate"`
	Description         string  `json:"description"`
	IsActive            bool    `json:"is_active"`
}

// ModelsList is the catalog of base models plus the active one.
type ModelsList struct {
	Models       []ModelConfig `json:"models"`
	CurrentModel string        `json:"current_model"`
}

// ModelSwitchResult reports a model switch.
type ModelSwitchResult struct {
	Success       bool   `json:"success"`
	PreviousModel string `json:"previous_model"`
	CurrentModel  string `json:"current_model"`
	Message       string `json:"message"`
}

// ListModels fetches the base-model catalog.
func (c *Client) ListModels(ctx context.Context) (*ModelsList, error) {
	var list ModelsList
	if err := c.get(ctx, "/models", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetCurrentModel fetches the currently loaded model.
func (c *Client) GetCurrentModel(ctx context.Context) (*ModelConfig, error) {
	var model ModelConfig
	if err := c.get(ctx, "/models/current", nil, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// SwitchModel loads a different base model. This can take minutes when the
// model needs downloading.
func (c *Client) SwitchModel(ctx context.Context, modelID string) (*ModelSwitchResult, error) {
	req := struct {
		ModelID string `json:"model_id"`
	}{ModelID: modelID}
	var result ModelSwitchResult
	if err := c.post(ctx, "/models/switch", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
