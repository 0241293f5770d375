package dto

import (
	"time"

	"github.com/google/uuid"

	"echosee-be/pkg/order"
	"echosee-be/pkg/store"
)

// ChatMessageDTO is the transcript entry shape of the stateless completion
// contract: sender is "user" or "assistant".
type ChatMessageDTO struct {
	Sender string `json:"sender" validate:"required,oneof=user assistant"`
	Text   string `json:"text" validate:"required"`
}

// CompleteChatRequest is the body of POST /api/chat. The caller owns the
// conversation state and sends all of it on every call.
type CompleteChatRequest struct {
	Messages  []ChatMessageDTO `json:"messages" validate:"required,min=1,dive"`
	UserData  order.State      `json:"userData"`
	OrderStep string           `json:"orderStep"`
}

// CompleteChatResponse deliberately has no envelope: the widget contract is
// a bare {message} or {error} body.
type CompleteChatResponse struct {
	Message string `json:"message"`
}

type CompleteChatError struct {
	Error string `json:"error"`
}

// --- Session API ---

type MessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	IsReceipt bool      `json:"is_receipt"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateSessionResponse struct {
	Id        uuid.UUID    `json:"id"`
	Messages  []MessageDTO `json:"messages"`
	OrderStep string       `json:"order_step"`
}

type GetHistoryResponse struct {
	Id        uuid.UUID    `json:"id"`
	Messages  []MessageDTO `json:"messages"`
	OrderStep string       `json:"order_step"`
	UserData  order.State  `json:"user_data"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type SendMessageResponse struct {
	Id        uuid.UUID   `json:"id"`
	Sent      *MessageDTO `json:"sent"`
	Reply     *MessageDTO `json:"reply"`
	OrderStep string      `json:"order_step"`
	UserData  order.State `json:"user_data"`
}

// ToMessageDTO maps a transcript entry to its wire shape.
func ToMessageDTO(m store.Message) MessageDTO {
	return MessageDTO{
		Id:        m.Id,
		Text:      m.Text,
		Sender:    m.Sender,
		IsReceipt: m.IsReceipt,
		CreatedAt: m.CreatedAt,
	}
}

func ToMessageDTOs(msgs []store.Message) []MessageDTO {
	out := make([]MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ToMessageDTO(m))
	}
	return out
}
