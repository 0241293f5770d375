package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"echosee-be/internal/constant"
	"echosee-be/internal/dto"
	"echosee-be/internal/pkg/logger"
	"echosee-be/internal/repository/memory"
	"echosee-be/pkg/gateway"
	"echosee-be/pkg/order"
	"echosee-be/pkg/store"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrEmptyMessage    = errors.New("message text is empty")
	// ErrBusy is returned when a gateway call for this session is still in
	// flight. Submissions are strictly sequential, never queued.
	ErrBusy = errors.New("a previous message is still being processed")
)

// IChatService drives the scripted pre-order flow on top of free-form chat.
type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.GetHistoryResponse, error)
	SendMessage(ctx context.Context, sessionId uuid.UUID, text string) (*dto.SendMessageResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error

	// Complete is the stateless gateway operation behind POST /api/chat,
	// for widget builds that keep conversation state client-side.
	Complete(ctx context.Context, request *dto.CompleteChatRequest) (string, error)
}

type chatService struct {
	sessionRepo *memory.SessionRepository
	gw          *gateway.CompletionGateway
	publisher   IPublisherService
	log         logger.ILogger
}

func NewChatService(
	sessionRepo *memory.SessionRepository,
	gw *gateway.CompletionGateway,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		gw:          gw,
		publisher:   publisher,
		log:         log,
	}
}

// CreateSession allocates a session seeded with exactly one greeting message.
// No gateway call is made. The widget keeps the returned id; reopening the
// widget goes through GetSession, so the greeting is never duplicated.
func (cs *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	sess := store.NewSession()
	sess.Append(store.NewMessage(store.SenderAssistant, constant.GreetingMessage, false))
	cs.sessionRepo.Save(sess)

	cs.log.Info("chat", "session created", map[string]interface{}{"session_id": sess.Id.String()})

	return &dto.CreateSessionResponse{
		Id:        sess.Id,
		Messages:  dto.ToMessageDTOs(sess.History()),
		OrderStep: string(sess.Step()),
	}, nil
}

func (cs *chatService) GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.GetHistoryResponse, error) {
	sess, found := cs.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	return &dto.GetHistoryResponse{
		Id:        sess.Id,
		Messages:  dto.ToMessageDTOs(sess.History()),
		OrderStep: string(sess.Step()),
		UserData:  sess.Order(),
	}, nil
}

// SendMessage is the single suspension point of a session. It rejects blank
// input and concurrent submissions outright, with no transcript mutation.
func (cs *chatService) SendMessage(ctx context.Context, sessionId uuid.UUID, text string) (*dto.SendMessageResponse, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	sess, found := cs.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	if !sess.TryAcquire() {
		return nil, ErrBusy
	}
	defer sess.Release()

	userMsg := store.NewMessage(store.SenderUser, trimmed, false)
	sess.Append(userMsg)

	// Snapshot so a failed gateway call can leave the captured order data
	// exactly as it was.
	priorOrder := sess.Order()
	priorStep := sess.Step()

	sess.SetOrder(order.Extract(trimmed, priorStep, priorOrder))
	sess.SetStep(order.InferUserStep(trimmed, priorStep))

	// Confirmed order: synthesize the receipt locally, no gateway call.
	if order.IsConfirmed(trimmed, sess.Step()) {
		receipt := order.Receipt(sess.Order(), time.Now())
		receiptMsg := store.NewMessage(store.SenderAssistant, receipt, true)
		sess.Append(receiptMsg)
		sess.SetStep(order.StepComplete)
		cs.sessionRepo.Save(sess)

		cs.publishOrderCompleted(ctx, sess.Order(), receipt)

		return cs.buildResponse(sess, userMsg, receiptMsg), nil
	}

	reply, err := cs.gw.Complete(ctx, sess.History(), sess.Order(), sess.Step())
	if err != nil {
		cs.log.Error("chat", "gateway call failed", map[string]interface{}{
			"session_id": sess.Id.String(),
			"error":      err.Error(),
		})

		// Recover locally: fixed apology, captured data untouched so the
		// visitor can retry with the next message.
		sess.SetOrder(priorOrder)
		sess.SetStep(priorStep)
		apology := store.NewMessage(store.SenderAssistant, constant.ApologyMessage, false)
		sess.Append(apology)
		cs.sessionRepo.Save(sess)

		return cs.buildResponse(sess, userMsg, apology), nil
	}

	replyMsg := store.NewMessage(store.SenderAssistant, reply, false)
	sess.Append(replyMsg)
	sess.SetStep(order.InferAssistantStep(reply, sess.Step()))
	cs.sessionRepo.Save(sess)

	return cs.buildResponse(sess, userMsg, replyMsg), nil
}

func (cs *chatService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	if _, found := cs.sessionRepo.Get(sessionId.String()); !found {
		return ErrSessionNotFound
	}
	cs.sessionRepo.Delete(sessionId.String())
	return nil
}

func (cs *chatService) Complete(ctx context.Context, request *dto.CompleteChatRequest) (string, error) {
	transcript := make([]store.Message, 0, len(request.Messages))
	for _, m := range request.Messages {
		transcript = append(transcript, store.Message{
			Sender: m.Sender,
			Text:   m.Text,
		})
	}

	return cs.gw.Complete(ctx, transcript, request.UserData, order.Step(request.OrderStep))
}

func (cs *chatService) buildResponse(sess *store.Session, sent, reply store.Message) *dto.SendMessageResponse {
	sentDTO := dto.ToMessageDTO(sent)
	replyDTO := dto.ToMessageDTO(reply)
	return &dto.SendMessageResponse{
		Id:        sess.Id,
		Sent:      &sentDTO,
		Reply:     &replyDTO,
		OrderStep: string(sess.Step()),
		UserData:  sess.Order(),
	}
}

func (cs *chatService) publishOrderCompleted(ctx context.Context, state order.State, receipt string) {
	if cs.publisher == nil {
		return
	}
	if err := cs.publisher.PublishOrderCompleted(ctx, state, receipt); err != nil {
		// The visitor already has the receipt on screen; a lost event only
		// delays the confirmation email.
		cs.log.Warn("chat", "failed to publish order completed event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
