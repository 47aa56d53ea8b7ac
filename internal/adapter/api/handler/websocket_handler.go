package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"wedding-invite/internal/domain/repository"
	ws "wedding-invite/internal/infrastructure/websocket"
	"wedding-invite/internal/usecase"
	"wedding-invite/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	manager          *ws.Manager
	guestbookUseCase *usecase.GuestbookUseCase
	wishRepo         repository.WishRepository
}

func NewWebSocketHandler(
	manager *ws.Manager,
	guestbookUseCase *usecase.GuestbookUseCase,
	wishRepo repository.WishRepository,
) *WebSocketHandler {
	return &WebSocketHandler{
		manager:          manager,
		guestbookUseCase: guestbookUseCase,
		wishRepo:         wishRepo,
	}
}

type clientMessage struct {
	Type       string `json:"type"`
	UserName   string `json:"user_name"`
	Comment    string `json:"comment"`
	RsvpStatus string `json:"rsvp_status"`
	Direction  int    `json:"direction"`
}

// HandleBoard upgrades the connection and runs one board session over it.
// The session's board is created on connect and closed on disconnect; its
// event stream is the only writer to the client's send channel.
func (h *WebSocketHandler) HandleBoard(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &ws.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 64),
	}

	board := usecase.NewBoard(h.guestbookUseCase, h.wishRepo)
	if err := board.Start(context.Background()); err != nil {
		logger.Error("Failed to start board session %s: %v", client.ID, err)
		conn.Close()
		return nil
	}
	defer board.Close()

	h.manager.Register <- client

	go client.WritePump()
	go func() {
		defer close(client.Send)
		for ev := range board.Events() {
			data, err := json.Marshal(ev)
			if err != nil {
				logger.Error("Failed to encode board event: %v", err)
				continue
			}
			// Never block on a dead connection; the board keeps emitting
			// until Close and a full buffer just sheds stale events.
			select {
			case client.Send <- data:
			default:
			}
		}
	}()

	client.ReadPump(h.manager, func(message []byte) {
		h.handleMessage(board, message)
	})

	return nil
}

func (h *WebSocketHandler) handleMessage(board *usecase.Board, message []byte) {
	var msg clientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		logger.Debug("Ignoring malformed board message: %v", err)
		return
	}

	switch msg.Type {
	case "draft":
		board.SetDraft(usecase.Draft{
			UserName:   msg.UserName,
			Comment:    msg.Comment,
			RsvpStatus: msg.RsvpStatus,
		})
	case "advance":
		direction := 1
		if msg.Direction < 0 {
			direction = -1
		}
		board.Advance(direction)
	case "submit":
		// Appends block on the store; keep the read loop free. The board's
		// in-flight guard makes overlapping submits no-ops.
		go board.Submit(context.Background())
	default:
		logger.Debug("Ignoring unknown board message type %q", msg.Type)
	}
}
