package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackInputBody(t *testing.T) {
	tests := []struct {
		name    string
		in      FeedbackInput
		want    map[string]any
		wantErr bool
	}{
		{
			name: "rating variant",
			in: FeedbackInput{
				AudioID: "a1",
				Rating:  &RatingFeedback{Value: 4, Criterion: "melody"},
			},
			want: map[string]any{"audio_id": "a1", "rating": 4.0, "rating_criterion": "melody"},
		},
		{
			name: "rating defaults to overall",
			in: FeedbackInput{
				AudioID: "a1",
				Rating:  &RatingFeedback{Value: 5},
			},
			want: map[string]any{"audio_id": "a1", "rating": 5.0, "rating_criterion": "overall"},
		},
		{
			name: "preference variant",
			in: FeedbackInput{
				AudioID:    "a1",
				Preference: &PreferenceFeedback{PreferredOver: "a2"},
			},
			want: map[string]any{"audio_id": "a1", "preferred_over": "a2"},
		},
		{
			name: "tags variant with notes",
			in: FeedbackInput{
				AudioID: "a1",
				Tags:    []string{"good_melody", "noisy"},
				Notes:   "strong start",
			},
			want: map[string]any{"audio_id": "a1", "tags": []string{"good_melody", "noisy"}, "notes": "strong start"},
		},
		{
			name:    "no variant rejected",
			in:      FeedbackInput{AudioID: "a1", Notes: "just a note"},
			wantErr: true,
		},
		{
			name: "two variants rejected",
			in: FeedbackInput{
				AudioID: "a1",
				Rating:  &RatingFeedback{Value: 3},
				Tags:    []string{"noisy"},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.body()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrFeedbackVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateFeedbackRejectsEmptyUnionLocally(t *testing.T) {
	// No request must reach the server for an invalid union.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected request")
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.CreateFeedback(context.Background(), FeedbackInput{AudioID: "a1"})
	assert.ErrorIs(t, err, ErrFeedbackVariant)
}

func TestCreateFeedbackWire(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "fb1", "audio_id": "a1", "user_id": null, "rating": 4,
			"rating_criterion": "overall", "preferred_over": null, "tags": null,
			"notes": null, "created_at": "2026-01-02T03:04:05Z"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	fb, err := client.CreateFeedback(context.Background(), FeedbackInput{
		AudioID: "a1",
		Rating:  &RatingFeedback{Value: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, "fb1", fb.ID)
	assert.Equal(t, 4.0, gotBody["rating"])
	assert.NotContains(t, gotBody, "tags")
	assert.NotContains(t, gotBody, "preferred_over")
}
