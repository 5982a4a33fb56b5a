package botapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestSetsAPIKey(t *testing.T) {
	var gotKey, gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sekrit", time.Second)
	result := client.Request(context.Background(), http.MethodGet, "/api/users", nil)

	assert.Equal(t, "sekrit", gotKey)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/users", gotPath)
	assert.Equal(t, true, result["success"])
}

func TestRequestEncodesPayload(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	client.Request(context.Background(), http.MethodPut, "/api/users/42/role", map[string]any{"role": "admin"})

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "admin", gotBody["role"])
}

func TestRequestRawKeepsContentType(t *testing.T) {
	var gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	client.RequestRaw(context.Background(), http.MethodPost, "/api/broadcast",
		"multipart/form-data; boundary=xyz", strings.NewReader("--xyz--"))

	assert.Equal(t, "multipart/form-data; boundary=xyz", gotContentType)
	assert.Equal(t, "--xyz--", gotBody)
}

func TestRequestTransportFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", 100*time.Millisecond)

	result := client.Request(context.Background(), http.MethodGet, "/api/users", nil)

	assert.Equal(t, false, result["success"])
	assert.NotEmpty(t, result["error"])
}

func TestRequestDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	result := client.Request(context.Background(), http.MethodGet, "/api/users", nil)

	assert.Equal(t, false, result["success"])
}

func TestUserFacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/42", r.URL.Path)
		assert.Equal(t, "sekrit", r.Header.Get("X-API-Key"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"user": map[string]any{
				"role":          "admin",
				"is_blocked":    false,
				"last_activity": "2026-08-20T10:00:00Z",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sekrit", time.Second)
	facts, err := client.UserFacts(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, facts.Found)
	assert.Equal(t, "admin", facts.Role)
	assert.False(t, facts.IsBlocked)
	assert.Equal(t, "2026-08-20T10:00:00Z", facts.LastActivity)
}

func TestUserFactsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "user not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	facts, err := client.UserFacts(context.Background(), 999)

	require.NoError(t, err, "a missing user is a fact, not a failure")
	assert.False(t, facts.Found)
}

func TestUserFactsTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", 100*time.Millisecond)

	_, err := client.UserFacts(context.Background(), 42)
	assert.Error(t, err)
}
