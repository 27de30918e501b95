package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storyquest-backend/internal/config"
	"storyquest-backend/internal/model"
	"storyquest-backend/internal/quiz"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return NewClient(config.LLMConfig{
		BaseURL:           baseURL,
		APIKey:            "test-key",
		Model:             "test-model",
		Temperature:       0.3,
		Timeout:           2 * time.Second,
		RequestsPerSecond: 100,
	})
}

func titleSpec(t *testing.T) *quiz.QuestionSpec {
	t.Helper()
	spec, ok := quiz.Get("peter-title")
	if !ok {
		t.Fatal("peter-title not in catalog")
	}
	return spec
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestGradeParsesProseWrappedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages %+v", req.Messages)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply(`Here you go: {"isCorrect": true, "message": "Great job!", "feedback_type": "excellent", "show_answer": false}`)))
	}))
	defer srv.Close()

	raw, err := testClient(t, srv.URL).Grade(context.Background(), titleSpec(t), model.NewAnswer("The Tale of Peter Rabbit"))
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if raw["isCorrect"] != true || raw["message"] != "Great job!" {
		t.Errorf("unexpected payload %v", raw)
	}
}

func TestGradeErrorPaths(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"http error status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}},
		{"invalid response body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json at all"))
		}},
		{"no choices", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}},
		{"reply without JSON", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(chatReply("I am sorry, I cannot grade this.")))
		}},
		{"upstream error object", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error": {"message": "model overloaded"}}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			if _, err := testClient(t, srv.URL).Grade(context.Background(), titleSpec(t), model.NewAnswer("Peter Rabbit")); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestGradeWithoutAPIKey(t *testing.T) {
	c := NewClient(config.LLMConfig{BaseURL: "http://unused", Timeout: time.Second, RequestsPerSecond: 1})
	if c.Configured() {
		t.Error("client without key reports configured")
	}
	if _, err := c.Grade(context.Background(), titleSpec(t), model.NewAnswer("x")); err == nil {
		t.Error("expected an error without an API key")
	}
}

func TestGradeHonoursContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server's background read notices the client
		// disconnect and cancels r.Context(); otherwise srv.Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := testClient(t, srv.URL).Grade(ctx, titleSpec(t), model.NewAnswer("Peter")); err == nil {
		t.Error("expected an error when the context expires")
	}
}
