package api

import (
	"context"
	"net/url"
	"time"
)

// ABTest is a blind comparison between two adapters (nil adapter = base
// model).
type ABTest struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    *string        `json:"description"`
	AdapterAID     *string        `json:"adapter_a_id"`
	AdapterBID     *string        `json:"adapter_b_id"`
	AdapterAName   *string        `json:"adapter_a_name"`
	AdapterBName   *string        `json:"adapter_b_name"`
	Status         string         `json:"status"`
	TotalPairs     int            `json:"total_pairs"`
	CompletedPairs int            `json:"completed_pairs"`
	Results        map[string]any `json:"results"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ABTestPair is one prompt's A/B sample pair.
type ABTestPair struct {
	ID         string     `json:"id"`
	PromptID   string     `json:"prompt_id"`
	AudioAID   *string    `json:"audio_a_id"`
	AudioBID   *string    `json:"audio_b_id"`
	Preference *string    `json:"preference"`
	VotedAt    *time.Time `json:"voted_at"`
	IsReady    bool       `json:"is_ready"`
}

// ABTestDetail is a test with its pairs.
type ABTestDetail struct {
	ABTest
	Pairs []ABTestPair `json:"pairs"`
}

// ABTestList is a page of A/B tests.
type ABTestList struct {
	Items  []ABTest `json:"items"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}

// ABTestCreate is the body for creating a test.
type ABTestCreate struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	AdapterAID  *string  `json:"adapter_a_id,omitempty"`
	AdapterBID  *string  `json:"adapter_b_id,omitempty"`
	PromptIDs   []string `json:"prompt_ids"`
}

// ABTestResults summarizes votes with win rates and a p-value when enough
// votes exist.
type ABTestResults struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	AdapterAName            *string  `json:"adapter_a_name"`
	AdapterBName            *string  `json:"adapter_b_name"`
	TotalVotes              int      `json:"total_votes"`
	APreferred              int      `json:"a_preferred"`
	BPreferred              int      `json:"b_preferred"`
	Equal                   int      `json:"equal"`
	AWinRate                float64  `json:"a_win_rate"`
	BWinRate                float64  `json:"b_win_rate"`
	StatisticalSignificance *float64 `json:"statistical_significance"`
}

// ListABTests returns a filtered page of tests.
func (c *Client) ListABTests(ctx context.Context, status string, limit, offset int) (*ABTestList, error) {
	q := url.Values{}
	setString(q, "status", status)
	setInt(q, "limit", limit)
	setInt(q, "offset", offset)
	var list ABTestList
	if err := c.get(ctx, "/ab-tests", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateABTest creates a test with pairs for each prompt.
func (c *Client) CreateABTest(ctx context.Context, req ABTestCreate) (*ABTest, error) {
	var test ABTest
	if err := c.post(ctx, "/ab-tests", req, &test); err != nil {
		return nil, err
	}
	return &test, nil
}

// GetABTest fetches a test with its pairs.
func (c *Client) GetABTest(ctx context.Context, id string) (*ABTestDetail, error) {
	var test ABTestDetail
	if err := c.get(ctx, "/ab-tests/"+id, nil, &test); err != nil {
		return nil, err
	}
	return &test, nil
}

// GenerateABTestSamples queues sample generation for pending pairs.
func (c *Client) GenerateABTestSamples(ctx context.Context, id string, promptIDs []string, samplesPerPrompt int) (*ABTest, error) {
	req := struct {
		PromptIDs        []string `json:"prompt_ids,omitempty"`
		SamplesPerPrompt int      `json:"samples_per_prompt,omitempty"`
	}{PromptIDs: promptIDs, SamplesPerPrompt: samplesPerPrompt}
	var test ABTest
	if err := c.post(ctx, "/ab-tests/"+id+"/generate", req, &test); err != nil {
		return nil, err
	}
	return &test, nil
}

// VoteABTest records a blind vote: "a", "b", or "equal".
func (c *Client) VoteABTest(ctx context.Context, testID, pairID, preference string) (*ABTestPair, error) {
	req := struct {
		PairID     string `json:"pair_id"`
		Preference string `json:"preference"`
	}{PairID: pairID, Preference: preference}
	var pair ABTestPair
	if err := c.post(ctx, "/ab-tests/"+testID+"/vote", req, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// GetABTestResults fetches vote tallies and win rates.
func (c *Client) GetABTestResults(ctx context.Context, id string) (*ABTestResults, error) {
	var results ABTestResults
	if err := c.get(ctx, "/ab-tests/"+id+"/results", nil, &results); err != nil {
		return nil, err
	}
	return &results, nil
}
