package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"thrust-planner/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	liveReadLimit   = 64 << 10
	liveIdleTimeout = 5 * time.Minute
	liveWriteWait   = 10 * time.Second
)

// Message is the JSON envelope for every live socket frame.
type Message struct {
	Type    string          `json:"type"`         // "calculate" inbound; "result" or "error" outbound
	ID      string          `json:"id,omitempty"` // echoed back so clients can match replies
	Payload json.RawMessage `json:"payload,omitempty"`
}

type outboundMessage struct {
	Type    string      `json:"type"`
	ID      string      `json:"id,omitempty"`
	Payload interface{} `json:"payload"`
}

// LiveHandler recalculates on every configuration a client sends, so a form
// can show results as the user edits.
type LiveHandler struct {
	calc     *CalculateHandler
	upgrader websocket.Upgrader
}

// NewLiveHandler creates a live handler sharing the calculate handler's engine.
func NewLiveHandler(calc *CalculateHandler) *LiveHandler {
	return &LiveHandler{
		calc: calc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Origin policy is enforced by the CORS middleware.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve handles GET /api/v1/live
func (h *LiveHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("LiveHandler: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	h.calc.metrics.LiveSessionOpened()
	defer h.calc.metrics.LiveSessionClosed()

	conn.SetReadLimit(liveReadLimit)
	for {
		conn.SetReadDeadline(time.Now().Add(liveIdleTimeout))
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("LiveHandler: read error: %v", err)
			}
			return
		}

		reply := h.handle(msg)
		conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("LiveHandler: write error: %v", err)
			return
		}
	}
}

func (h *LiveHandler) handle(msg Message) outboundMessage {
	if msg.Type != "calculate" {
		return outboundMessage{Type: "error", ID: msg.ID, Payload: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: "unsupported message type " + msg.Type,
		}}
	}

	var req models.LiveRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		_, detail := errorDetail(err)
		if detail.Code == "CALCULATION_ERROR" {
			detail.Code = "INVALID_REQUEST"
		}
		return outboundMessage{Type: "error", ID: msg.ID, Payload: detail}
	}

	id, ship, result, err := h.calc.compute(req.Ship, "live")
	if err != nil {
		_, detail := errorDetail(err)
		return outboundMessage{Type: "error", ID: msg.ID, Payload: detail}
	}
	return outboundMessage{
		Type:    "result",
		ID:      msg.ID,
		Payload: h.calc.buildResponse(id, ship, result, models.CalculateOptions{IncludeReport: true}),
	}
}
