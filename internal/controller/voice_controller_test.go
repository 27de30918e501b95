package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

type wsReply struct {
	Type       string `json:"type"`
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Done       bool   `json:"done"`
	Verdict    struct {
		IsCorrect bool   `json:"isCorrect"`
		Message   string `json:"message"`
	} `json:"verdict"`
}

func dialVoice(t *testing.T, srv *httptest.Server, story string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/voice/session?story=" + story
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func TestVoiceSessionOverWebsocket(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	conn := dialVoice(t, srv, "Goldilocks+and+the+Three+Bears")
	defer conn.Close()

	var question wsReply
	if err := conn.ReadJSON(&question); err != nil {
		t.Fatalf("read first question: %v", err)
	}
	if question.Type != "question" || question.QuestionID != "goldilocks-title" {
		t.Fatalf("first frame = %+v, want the title question", question)
	}

	if err := conn.WriteJSON(map[string]string{
		"type": "transcript",
		"text": "goldilocks and the three bears",
	}); err != nil {
		t.Fatalf("send transcript: %v", err)
	}

	var feedback wsReply
	if err := conn.ReadJSON(&feedback); err != nil {
		t.Fatalf("read feedback: %v", err)
	}
	if feedback.Type != "feedback" || feedback.QuestionID != "goldilocks-title" {
		t.Fatalf("feedback frame = %+v", feedback)
	}
	if !feedback.Verdict.IsCorrect || feedback.Verdict.Message == "" {
		t.Errorf("verdict = %+v, want a correct verdict with a message", feedback.Verdict)
	}
	if feedback.Done {
		t.Error("session reported done after the first of eight questions")
	}

	// The next question follows immediately.
	var next wsReply
	if err := conn.ReadJSON(&next); err != nil {
		t.Fatalf("read second question: %v", err)
	}
	if next.Type != "question" || next.QuestionID != "goldilocks-author" {
		t.Errorf("second question frame = %+v", next)
	}
}

func TestVoiceSessionUnknownStoryRejected(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/voice/session?story=Unknown")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
