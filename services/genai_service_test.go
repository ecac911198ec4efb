package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func geminiBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(b)
}

func newGenAITestService(t *testing.T, handler http.HandlerFunc) *GenAIService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("GENAI_BASE_URL", srv.URL)
	t.Setenv("GENAI_API_KEY", "test-key")
	t.Setenv("GENAI_MODEL", "gemini-1.5-flash")
	return NewGenAIService()
}

func TestGenerateTipReturnsText(t *testing.T) {
	var gotPath, gotKey string
	var gotReq geminiRequest
	svc := newGenAITestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(geminiBody("  Eat two serves of fruit a day.\n")))
	})

	tip, err := svc.GenerateTip(context.Background(), "Give me a short fruit tip.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tip != "Eat two serves of fruit a day." {
		t.Fatalf("expected trimmed text, got %q", tip)
	}
	if gotPath != "/v1beta/models/gemini-1.5-flash:generateContent" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key not passed, got %q", gotKey)
	}
	if len(gotReq.Contents) != 1 || gotReq.Contents[0].Parts[0].Text != "Give me a short fruit tip." {
		t.Fatalf("prompt not forwarded: %+v", gotReq)
	}
}

func TestGenerateTipRequiresAPIKey(t *testing.T) {
	t.Setenv("GENAI_API_KEY", "")
	svc := NewGenAIService()

	if _, err := svc.GenerateTip(context.Background(), "hello"); err == nil {
		t.Fatalf("expected an error without an api key")
	}
}

func TestGenerateTipAPIError(t *testing.T) {
	svc := newGenAITestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := svc.GenerateTip(context.Background(), "hello")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected a status error, got %v", err)
	}
}

func TestGenerateTipEmptyCandidates(t *testing.T) {
	svc := newGenAITestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})

	if _, err := svc.GenerateTip(context.Background(), "hello"); err == nil {
		t.Fatalf("expected an error for a response with no candidates")
	}
}

func TestGeneratePatternsParsesStructuredResponse(t *testing.T) {
	svc := newGenAITestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiBody("```json\n[{\"patternName\": \"High Sugar\", \"description\": \"Sugar scores trail targets.\"}]\n```")))
	})

	patterns, err := svc.GeneratePatterns(context.Background(), "Generate three key data patterns")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patterns) != 1 || patterns[0].PatternName != "High Sugar" {
		t.Fatalf("unexpected patterns: %+v", patterns)
	}
}

func TestParsePatternsStrictJSON(t *testing.T) {
	patterns := ParsePatterns(`[
		{"patternName": "Hydration Gap", "description": "Water scores are low across the cohort."},
		{"patternName": "Fruit Strength", "description": "Fruit scores are consistently high."}
	]`)

	if len(patterns) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(patterns))
	}
	if patterns[0].PatternName != "Hydration Gap" || patterns[1].Description != "Fruit scores are consistently high." {
		t.Fatalf("unexpected patterns: %+v", patterns)
	}
}

func TestParsePatternsStripsCodeFences(t *testing.T) {
	patterns := ParsePatterns("```json\n[{\"patternName\": \"Fenced\", \"description\": \"still parses\"}]\n```")

	if len(patterns) != 1 || patterns[0].PatternName != "Fenced" {
		t.Fatalf("fenced JSON not parsed: %+v", patterns)
	}
}

func TestParsePatternsNumberedFallback(t *testing.T) {
	patterns := ParsePatterns("1. High Sugar Intake\nMost patients exceed sugar targets.\n2. Low Water Scores\nHydration sits below the guideline.")

	if len(patterns) != 2 {
		t.Fatalf("expected 2 patterns, got %+v", patterns)
	}
	if patterns[0].PatternName != "High Sugar Intake" {
		t.Fatalf("unexpected first pattern: %+v", patterns[0])
	}
	if patterns[0].Description != "Most patients exceed sugar targets." {
		t.Fatalf("description not taken from the following line: %+v", patterns[0])
	}
	if patterns[1].PatternName != "Low Water Scores" {
		t.Fatalf("unexpected second pattern: %+v", patterns[1])
	}
}

func TestParsePatternsParagraphFallback(t *testing.T) {
	patterns := ParsePatterns("Discretionary intake dominates the cohort.\n\nWater scores trail every other category.")

	if len(patterns) != 2 {
		t.Fatalf("expected 2 patterns, got %+v", patterns)
	}
	if patterns[0].PatternName != "Pattern 1" || patterns[1].PatternName != "Pattern 2" {
		t.Fatalf("fallback names missing: %+v", patterns)
	}
	if patterns[0].Description != "Discretionary intake dominates the cohort." {
		t.Fatalf("unexpected description: %+v", patterns[0])
	}
}

func TestParsePatternsRawFallback(t *testing.T) {
	patterns := ParsePatterns("   \n  ")

	if len(patterns) != 1 || patterns[0].PatternName != "Raw Analysis Results" {
		t.Fatalf("expected the raw fallback pattern, got %+v", patterns)
	}
}
