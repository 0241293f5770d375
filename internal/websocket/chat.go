// Package websocket is the live transport for the chat widget: one socket is
// one session. Frames are JSON; the request/reply rhythm of the scripted flow
// means a single read-write loop is enough, there is no server push outside
// of a reply.
package websocket

import (
	"context"
	"errors"

	"github.com/gofiber/websocket/v2"

	"echosee-be/internal/dto"
	"echosee-be/internal/pkg/logger"
	"echosee-be/internal/service"
)

const maxMessageSize = 4096

type inboundFrame struct {
	Text string `json:"text"`
}

type outboundFrame struct {
	Type      string                     `json:"type"` // "session" | "message" | "error"
	Session   *dto.CreateSessionResponse `json:"session,omitempty"`
	Message   *dto.MessageDTO            `json:"message,omitempty"`
	OrderStep string                     `json:"order_step,omitempty"`
	Error     string                     `json:"error,omitempty"`
}

// ServeChat handles one widget connection: opens a session, pushes the
// greeting, then answers each text frame. The session is dropped when the
// socket closes.
func ServeChat(chatService service.IChatService, log logger.ILogger) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		ctx := context.Background()

		sess, err := chatService.CreateSession(ctx)
		if err != nil {
			log.Error("ws", "failed to create chat session", map[string]interface{}{"error": err.Error()})
			c.Close()
			return
		}
		defer chatService.DeleteSession(ctx, sess.Id)

		if err := c.WriteJSON(outboundFrame{Type: "session", Session: sess}); err != nil {
			return
		}

		c.SetReadLimit(maxMessageSize)

		for {
			var in inboundFrame
			if err := c.ReadJSON(&in); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warn("ws", "unexpected close", map[string]interface{}{"error": err.Error()})
				}
				return
			}

			res, err := chatService.SendMessage(ctx, sess.Id, in.Text)
			if err != nil {
				if writeErr := c.WriteJSON(outboundFrame{Type: "error", Error: userFacing(err)}); writeErr != nil {
					return
				}
				continue
			}

			if err := c.WriteJSON(outboundFrame{
				Type:      "message",
				Message:   res.Reply,
				OrderStep: res.OrderStep,
			}); err != nil {
				return
			}
		}
	}
}

func userFacing(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		return "Message text is required"
	case errors.Is(err, service.ErrBusy):
		return "A previous message is still being processed"
	default:
		return "Something went wrong, please try again"
	}
}
