package controller

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"storyquest-backend/internal/service"
	logger "storyquest-backend/pkg/logging"
)

// voiceFrame is an inbound websocket message from the voice client.
type voiceFrame struct {
	Type string `json:"type"` // "transcript" | "end"
	Text string `json:"text,omitempty"`
}

type VoiceController struct {
	VoiceService service.VoiceService
	upgrader     websocket.Upgrader
}

func NewVoiceController(voiceService service.VoiceService) *VoiceController {
	return &VoiceController{
		VoiceService: voiceService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// CORS is enforced at the HTTP layer.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Session upgrades the connection and runs one voice quiz session over it.
// The client sends transcript frames; the server replies with the question
// prompt, then a feedback frame per answer. Messages are handled strictly
// in order.
func (vc *VoiceController) Session(c *gin.Context) {
	story := c.Query("story")
	sess, err := vc.VoiceService.NewSession(story)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	conn, err := vc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("voice session %s: websocket upgrade failed: %v", sess.ID, err)
		return
	}
	defer conn.Close()

	vc.sendQuestion(conn, sess)

	for {
		var frame voiceFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("voice session %s: read failed: %v", sess.ID, err)
			}
			return
		}

		switch frame.Type {
		case "transcript":
			turn, err := sess.HandleTranscript(c.Request.Context(), frame.Text)
			if err != nil {
				vc.writeJSON(conn, sess.ID, gin.H{"type": "error", "error": err.Error()})
				return
			}
			reply := gin.H{
				"type":        "feedback",
				"question_id": turn.QuestionID,
				"verdict":     turn.Verdict,
				"done":        turn.Done,
			}
			if len(turn.Audio) > 0 {
				reply["audio"] = base64.StdEncoding.EncodeToString(turn.Audio)
			}
			vc.writeJSON(conn, sess.ID, reply)
			if turn.Done {
				return
			}
			vc.sendQuestion(conn, sess)
		case "end":
			return
		default:
			vc.writeJSON(conn, sess.ID, gin.H{"type": "error", "error": "unknown frame type"})
		}
	}
}

func (vc *VoiceController) sendQuestion(conn *websocket.Conn, sess *service.VoiceSession) {
	spec, ok := sess.Current()
	if !ok {
		return
	}
	vc.writeJSON(conn, sess.ID, gin.H{
		"type":        "question",
		"question_id": spec.ID,
		"question":    spec.Question,
	})
}

func (vc *VoiceController) writeJSON(conn *websocket.Conn, sessionID string, v interface{}) {
	if err := conn.WriteJSON(v); err != nil {
		logger.Warn("voice session %s: write failed: %v", sessionID, err)
	}
}
