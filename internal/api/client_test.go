package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIErrorStringDetail(t *testing.T) {
	err := parseAPIError(404, []byte(`{"detail": "Prompt not found"}`))
	assert.Equal(t, 404, err.Status)
	assert.Equal(t, "Prompt not found", err.Error())
}

func TestParseAPIErrorValidationDetail(t *testing.T) {
	body := `{"detail": [{"msg": "field required", "loc": ["body", "text"], "type": "missing"},
		{"msg": "ensure this value is less than or equal to 200", "loc": ["body", "tempo"], "type": "value_error"}]}`
	err := parseAPIError(422, []byte(body))
	assert.Equal(t, 422, err.Status)
	assert.Equal(t, "field required, ensure this value is less than or equal to 200", err.Error())
	require.Len(t, err.Detail, 2)
	assert.Equal(t, "missing", err.Detail[0].Type)
}

func TestParseAPIErrorUnparseableBody(t *testing.T) {
	err := parseAPIError(500, []byte("Internal Server Error"))
	assert.Equal(t, "HTTP 500", err.Error())

	err = parseAPIError(502, nil)
	assert.Equal(t, "HTTP 502", err.Error())
}

func TestNoContentResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	err := client.DeleteRating(context.Background(), "abc")
	assert.NoError(t, err)
}

func TestErrorResponseSurfacesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "Already favorited"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.CreateFavorite(context.Background(), TargetAudio, "abc", "")
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Already favorited", apiErr.Message)
}

func TestRequestSetsJSONContentType(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"items": [], "total": 0, "page": 1, "limit": 20}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.ListPrompts(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
}

func TestQueryOmitsUnsetFields(t *testing.T) {
	q := url.Values{}
	setString(q, "target_type", "audio")
	setInt(q, "limit", 100)
	setInt(q, "page", 0)
	setString(q, "status", "")
	setIntPtr(q, "tempo_min", nil)
	assert.Equal(t, "limit=100&target_type=audio", q.Encode())
}

func TestListQueryEncoding(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"items": [{"id": "f1", "target_type": "audio", "target_id": "a1",
			"user_id": null, "note": null, "created_at": "2026-01-02T03:04:05Z"}],
			"total": 1, "page": 1, "limit": 100}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	list, err := client.ListFavorites(context.Background(), FavoriteListOptions{
		TargetType: TargetAudio,
		Limit:      100,
	})
	require.NoError(t, err)
	assert.Equal(t, "audio", gotQuery.Get("target_type"))
	assert.Equal(t, "100", gotQuery.Get("limit"))
	assert.False(t, gotQuery.Has("page"))
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "a1", list.Items[0].TargetID)
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:8000/"})
	assert.Equal(t, "http://localhost:8000", client.BaseURL())
}
