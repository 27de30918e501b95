// Package llm talks to an OpenAI-compatible chat-completions endpoint and
// turns its replies into raw grading payloads. It never interprets grading
// policy; the service layer decides what to do with the payload or with a
// failure.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"storyquest-backend/internal/config"
	"storyquest-backend/internal/model"
	"storyquest-backend/internal/quiz"
	logger "storyquest-backend/pkg/logging"
)

// ChatMessage is one message in a chat-completion exchange.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the request body for the chat-completions endpoint.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is the subset of the chat-completions response we read.
type ChatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client grades answers through a remote model. Safe for concurrent use.
type Client struct {
	cfg     config.LLMConfig
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a Client from config. The rate limiter spans all
// concurrent submissions so a classroom of students cannot exhaust the
// upstream quota.
func NewClient(cfg config.LLMConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)+1),
	}
}

// Configured reports whether the AI path can be used at all. Without an API
// key every grade goes straight to the keyword fallback.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Grade asks the model to grade one answer and returns the parsed JSON
// payload. The payload is raw model output: field names may be aliases and
// values unvalidated. Any failure (transport, HTTP status, unparseable
// reply) is returned as an error with the offending detail logged.
func (c *Client) Grade(ctx context.Context, spec *quiz.QuestionSpec, ans model.Answer) (map[string]interface{}, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("llm: no API key configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("llm: rate limiter: %w", err)
	}

	reqBody := ChatRequest{
		Model: c.cfg.Model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(spec, ans)},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   spec.MaxTokens,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("llm: marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("llm request failed for question %s: %v", spec.ID, err)
		return nil, fmt.Errorf("llm: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("llm: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("llm returned HTTP %d for question %s: %s", resp.StatusCode, spec.ID, truncate(body, 512))
		return nil, fmt.Errorf("llm: unexpected status %d", resp.StatusCode)
	}

	var chat ChatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		logger.Error("llm response is not valid JSON for question %s: %s", spec.ID, truncate(body, 512))
		return nil, fmt.Errorf("llm: decode response: %w", err)
	}
	if chat.Error != nil {
		logger.Error("llm reported error for question %s: %s", spec.ID, chat.Error.Message)
		return nil, fmt.Errorf("llm: upstream error: %s", chat.Error.Message)
	}
	if len(chat.Choices) == 0 {
		logger.Error("llm returned no choices for question %s: %s", spec.ID, truncate(body, 512))
		return nil, fmt.Errorf("llm: empty response")
	}

	content := chat.Choices[0].Message.Content
	raw := extractJSON(content)
	if raw == "" {
		logger.Error("llm reply carries no JSON object for question %s: %s", spec.ID, truncate([]byte(content), 512))
		return nil, fmt.Errorf("llm: no JSON object in reply")
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		logger.Error("llm verdict JSON is malformed for question %s: %s", spec.ID, truncate([]byte(raw), 512))
		return nil, fmt.Errorf("llm: decode verdict: %w", err)
	}
	return result, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
