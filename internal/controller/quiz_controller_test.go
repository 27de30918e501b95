package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"storyquest-backend/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	eval := service.NewEvaluationService(nil, nil)
	voice := service.NewVoiceService(eval, nil, nil)
	r := gin.New()
	RegisterRoutes(r, eval, voice)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckAnswer(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/api/quiz/questions/goldilocks-title/check",
		`{"answer": "Goldilocks and the Three Bears"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var verdict map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &verdict); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if verdict["isCorrect"] != true {
		t.Errorf("isCorrect = %v, want true", verdict["isCorrect"])
	}
	if _, ok := verdict["message"].(string); !ok {
		t.Error("verdict has no message field")
	}
	if verdict["show_answer"] != false {
		t.Errorf("show_answer = %v, want false", verdict["show_answer"])
	}
}

func TestCheckAnswerMultiPart(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/api/quiz/questions/goldilocks-events/check",
		`{"answers": ["Goldilocks went into the house", "She ate the porridge and broke a chair", "The bears found her and she ran away"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var verdict map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &verdict); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if verdict["isCorrect"] != true {
		t.Errorf("isCorrect = %v, want true", verdict["isCorrect"])
	}
}

func TestCheckAnswerRejectsEmptySubmissions(t *testing.T) {
	r := newTestRouter()

	for _, body := range []string{
		`{"answer": ""}`,
		`{"answer": "   "}`,
		`{"answers": ["", "  "]}`,
		`{}`,
		`not json`,
	} {
		w := doRequest(t, r, http.MethodPost, "/api/quiz/questions/goldilocks-title/check", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
			continue
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Errorf("body %q: response is not JSON: %v", body, err)
			continue
		}
		if resp["error"] != "Please enter an answer." {
			t.Errorf("body %q: error = %q", body, resp["error"])
		}
	}
}

func TestCheckAnswerUnknownQuestion(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/api/quiz/questions/nope/check", `{"answer": "hello"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetStoriesAndQuestions(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/quiz/stories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stories: status = %d", w.Code)
	}
	var stories struct {
		Stories []string `json:"stories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stories); err != nil || len(stories.Stories) != 2 {
		t.Fatalf("stories response %s (err %v)", w.Body.String(), err)
	}

	w = doRequest(t, r, http.MethodGet, "/api/quiz/questions?story=The+Tale+of+Peter+Rabbit", "")
	if w.Code != http.StatusOK {
		t.Fatalf("questions: status = %d", w.Code)
	}
	var questions struct {
		Questions []struct {
			ID       string `json:"id"`
			Question string `json:"question"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &questions); err != nil {
		t.Fatalf("questions response: %v", err)
	}
	if len(questions.Questions) != 13 {
		t.Errorf("peter quiz lists %d questions, want 13", len(questions.Questions))
	}
	for _, q := range questions.Questions {
		if q.ID == "" || q.Question == "" {
			t.Errorf("question entry incomplete: %+v", q)
		}
	}

	w = doRequest(t, r, http.MethodGet, "/api/quiz/questions?story=Unknown", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown story: status = %d, want 404", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	if w := doRequest(t, r, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Errorf("health: status = %d", w.Code)
	}
}
