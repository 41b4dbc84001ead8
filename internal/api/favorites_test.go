package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFavorites serves the favorites endpoints over an in-memory map keyed
// by target type + ID.
type fakeFavorites struct {
	mu    sync.Mutex
	byKey map[string]Favorite
	next  int
}

func (f *fakeFavorites) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /favorites/check/{type}/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		fav, ok := f.byKey[r.PathValue("type")+"/"+r.PathValue("id")]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.Write([]byte("null"))
			return
		}
		json.NewEncoder(w).Encode(fav)
	})
	mux.HandleFunc("POST /favorites", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TargetType string `json:"target_type"`
			TargetID   string `json:"target_id"`
			Note       string `json:"note"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.next++
		fav := Favorite{
			ID:         "fav-" + string(rune('0'+f.next)),
			TargetType: TargetType(req.TargetType),
			TargetID:   req.TargetID,
		}
		f.byKey[req.TargetType+"/"+req.TargetID] = fav
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(fav)
	})
	mux.HandleFunc("DELETE /favorites/by-target/{type}/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		key := r.PathValue("type") + "/" + r.PathValue("id")
		if _, ok := f.byKey[key]; !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail": "Favorite not found"}`))
			return
		}
		delete(f.byKey, key)
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	fake := &fakeFavorites{byKey: map[string]Favorite{}}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	ctx := context.Background()

	// First toggle favorites the target.
	fav, err := client.ToggleFavorite(ctx, TargetAudio, "audio-1", "")
	require.NoError(t, err)
	require.NotNil(t, fav)
	assert.Equal(t, "audio-1", fav.TargetID)
	assert.Equal(t, TargetAudio, fav.TargetType)

	// Second toggle removes it.
	fav, err = client.ToggleFavorite(ctx, TargetAudio, "audio-1", "")
	require.NoError(t, err)
	assert.Nil(t, fav)

	// Third favorites it again.
	fav, err = client.ToggleFavorite(ctx, TargetAudio, "audio-1", "")
	require.NoError(t, err)
	assert.NotNil(t, fav)
}

func TestCheckFavoriteNullBody(t *testing.T) {
	fake := &fakeFavorites{byKey: map[string]Favorite{}}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	fav, err := client.CheckFavorite(context.Background(), TargetPrompt, "p1")
	require.NoError(t, err)
	assert.Nil(t, fav)
}
