// Package tts wraps an OpenAI-compatible speech endpoint for the voice
// channel's feedback audio.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"storyquest-backend/internal/config"
	logger "storyquest-backend/pkg/logging"
)

type speechRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
	Voice string `json:"voice"`
}

// Client synthesizes short feedback phrases. Safe for concurrent use.
type Client struct {
	cfg  config.TTSConfig
	http *http.Client
}

func NewClient(cfg config.TTSConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether synthesis is usable at all.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Synthesize renders text to audio bytes. Callers treat any error as
// non-fatal; the voice session continues without audio.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("tts: no API key configured")
	}

	payload, err := json.Marshal(speechRequest{
		Model: c.cfg.Model,
		Input: text,
		Voice: c.cfg.Voice,
	})
	if err != nil {
		return nil, fmt.Errorf("tts: marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/audio/speech"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("tts: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Warn("tts returned HTTP %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("tts: unexpected status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("tts: read audio: %w", err)
	}
	return audio, nil
}
