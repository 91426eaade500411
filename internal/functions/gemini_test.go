// ABOUTME: Tests for the Gemini client against a stub endpoint.
// ABOUTME: Covers the happy path, empty candidates, and API errors.
package functions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func stubGemini(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g := NewGeminiClient("test-key")
	g.baseURL = srv.URL
	return g
}

func TestGeminiAnswer(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest
	g := stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "Swim easy today."}}}},
			},
		})
	})

	answer, err := g.Answer(context.Background(), "what should I do today?")
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if answer != "Swim easy today." {
		t.Errorf("answer = %q", answer)
	}
	if !strings.Contains(gotPath, "gemini-1.5-flash:generateContent") {
		t.Errorf("path = %q", gotPath)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "what should I do today?" {
		t.Errorf("request body = %+v", gotBody)
	}
}

func TestGeminiNoCandidates(t *testing.T) {
	g := stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	if _, err := g.Answer(context.Background(), "hi"); err == nil {
		t.Error("expected error for empty candidates")
	}
}

func TestGeminiAPIError(t *testing.T) {
	g := stubGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := g.Answer(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("err = %v", err)
	}
}
