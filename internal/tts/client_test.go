package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storyquest-backend/internal/config"
)

func TestSynthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/speech" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req speechRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body: %v", err)
		}
		if req.Input != "Great job!" || req.Voice != "nova" {
			t.Errorf("unexpected request %+v", req)
		}
		w.Write([]byte("fake-mp3-bytes"))
	}))
	defer srv.Close()

	c := NewClient(config.TTSConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "tts-1",
		Voice:   "nova",
		Timeout: 2 * time.Second,
	})
	audio, err := c.Synthesize(context.Background(), "Great job!")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !bytes.Equal(audio, []byte("fake-mp3-bytes")) {
		t.Errorf("audio = %q", audio)
	}
}

func TestSynthesizeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad voice", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(config.TTSConfig{BaseURL: srv.URL, APIKey: "k", Timeout: time.Second})
	if _, err := c.Synthesize(context.Background(), "hello"); err == nil {
		t.Error("expected an error on HTTP 400")
	}

	unconfigured := NewClient(config.TTSConfig{Timeout: time.Second})
	if unconfigured.Configured() {
		t.Error("client without key reports configured")
	}
	if _, err := unconfigured.Synthesize(context.Background(), "hello"); err == nil {
		t.Error("expected an error without an API key")
	}
}
