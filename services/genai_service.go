package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"
)

// DataPattern is one structured insight extracted from a generative
// response to a patterns prompt.
type DataPattern struct {
	PatternName string `json:"patternName"`
	Description string `json:"description"`
}

// Gemini generateContent wire format.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type GenAIService struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewGenAIService configures the generative-language client from env:
// GENAI_API_KEY (required for live calls), GENAI_MODEL and GENAI_BASE_URL
// (overridable for tests).
func NewGenAIService() *GenAIService {
	base := os.Getenv("GENAI_BASE_URL")
	if base == "" {
		base = "https://generativelanguage.googleapis.com"
	}
	model := os.Getenv("GENAI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GenAIService{
		baseURL: base,
		apiKey:  os.Getenv("GENAI_API_KEY"),
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateTip sends a free-text prompt and returns the raw generated text.
func (s *GenAIService) GenerateTip(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("GENAI_API_KEY not set")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, _ := json.Marshal(reqBody)

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("genai request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read genai response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("genai api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out geminiResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode genai response error: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty genai response")
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("empty genai response")
	}
	return text, nil
}

// GeneratePatterns asks the model for structured data patterns. The prompt
// is extended with a strict-JSON instruction, but models do not always obey
// it, so parsing tolerates markdown fences and falls back to heuristics
// before giving up.
func (s *GenAIService) GeneratePatterns(ctx context.Context, prompt string) ([]DataPattern, error) {
	structuredPrompt := prompt + `

Please format your response as JSON with the following structure:
[
  {
    "patternName": "Pattern Name",
    "description": "Brief description of the pattern"
  }
]

Ensure the response is valid JSON format only, no additional text.`

	text, err := s.GenerateTip(ctx, structuredPrompt)
	if err != nil {
		return nil, err
	}
	return ParsePatterns(text), nil
}

// ParsePatterns extracts pattern objects from a raw generative response.
// Strict JSON first (after stripping code fences), then numbered-list
// extraction, then paragraph splitting. Always returns at least one pattern
// for non-empty input.
func ParsePatterns(response string) []DataPattern {
	cleaned := strings.TrimSpace(
		strings.ReplaceAll(strings.ReplaceAll(response, "```json", ""), "```", ""),
	)

	var patterns []DataPattern
	if err := json.Unmarshal([]byte(cleaned), &patterns); err == nil && len(patterns) > 0 {
		return patterns
	}

	if numbered := parseNumberedPatterns(response); len(numbered) > 0 {
		return numbered
	}

	patterns = nil
	for _, section := range strings.Split(response, "\n\n") {
		lines := nonBlankLines(section)
		if len(lines) == 0 {
			continue
		}
		patterns = append(patterns, DataPattern{
			PatternName: fmt.Sprintf("Pattern %d", len(patterns)+1),
			Description: lines[0],
		})
	}
	if len(patterns) > 0 {
		return patterns
	}

	return []DataPattern{{
		PatternName: "Raw Analysis Results",
		Description: strings.TrimSpace(response),
	}}
}

var numberedPatternRe = regexp.MustCompile(`(?i)(?:(\d+)\.\s*([^\n]+)|Pattern\s*(\d+):\s*([^\n]+))`)

func parseNumberedPatterns(response string) []DataPattern {
	matches := numberedPatternRe.FindAllStringSubmatchIndex(response, -1)
	var patterns []DataPattern

	for i, m := range matches {
		sub := numberedPatternRe.FindStringSubmatch(response[m[0]:m[1]])
		title := strings.TrimSpace(sub[2])
		if title == "" {
			title = strings.TrimSpace(sub[4])
		}
		if title == "" {
			continue
		}

		start := m[1]
		end := len(response)
		if i < len(matches)-1 {
			end = matches[i+1][0]
		}

		description := "Analysis pattern identified"
		if lines := nonBlankLines(response[start:end]); len(lines) > 0 {
			description = lines[0]
		}
		patterns = append(patterns, DataPattern{PatternName: title, Description: description})
	}

	return patterns
}

func nonBlankLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
