package ai

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuggingFaceArrayResponseShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[{"generated_text": "  Apply mulch early.  "}]`))
	}))
	defer srv.Close()

	c := NewHuggingFace(srv.URL, "", 5*time.Second)
	got, err := c.GenerateSolution(SolutionRequest{IssueType: "drought", CropName: "Wheat", Week: 4})
	require.NoError(t, err)
	assert.Equal(t, "Apply mulch early.", got)
}

func TestHuggingFaceObjectResponseShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer k-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"generated_text": "Check drainage."}`))
	}))
	defer srv.Close()

	c := NewHuggingFace(srv.URL, "k-123", 5*time.Second)
	got, err := c.GenerateSolution(SolutionRequest{IssueType: "heavy rain"})
	require.NoError(t, err)
	assert.Equal(t, "Check drainage.", got)
}

func TestHuggingFaceNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model loading"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewHuggingFace(srv.URL, "", 5*time.Second)
	_, err := c.GenerateSolution(SolutionRequest{IssueType: "pest"})
	assert.Error(t, err)
}

func TestHuggingFaceMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer srv.Close()

	c := NewHuggingFace(srv.URL, "", 5*time.Second)
	_, err := c.GenerateSolution(SolutionRequest{IssueType: "pest"})
	assert.Error(t, err)
}

func TestHuggingFaceTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`[{"generated_text": "too late"}]`))
	}))
	defer srv.Close()

	c := NewHuggingFace(srv.URL, "", 50*time.Millisecond)
	_, err := c.GenerateSolution(SolutionRequest{IssueType: "pest"})
	assert.Error(t, err)
}
