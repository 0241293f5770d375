package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echosee-be/internal/constant"
	"echosee-be/internal/dto"
	"echosee-be/internal/repository/memory"
	"echosee-be/pkg/gateway"
	"echosee-be/pkg/llm"
	"echosee-be/pkg/order"
	"echosee-be/pkg/store"
)

// scriptedProvider replies from a queue so a test can play through several
// exchanges, fail one of them, or block until released.
type scriptedProvider struct {
	mu      sync.Mutex
	replies []string
	errs    []error
	calls   int
	entered chan struct{} // buffered; signalled on entry when set
	block   chan struct{} // when set, Chat waits for a close before answering
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if p.entered != nil {
		select {
		case p.entered <- struct{}{}:
		default:
		}
	}
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.calls
	p.calls++
	var err error
	if i < len(p.errs) {
		err = p.errs[i]
	}
	reply := ""
	if i < len(p.replies) {
		reply = p.replies[i]
	}
	return reply, err
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func (p *scriptedProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type capturingPublisher struct {
	mu       sync.Mutex
	states   []order.State
	receipts []string
}

func (p *capturingPublisher) PublishOrderCompleted(ctx context.Context, state order.State, receipt string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, state)
	p.receipts = append(p.receipts, receipt)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestService(provider llm.Provider, publisher IPublisherService) IChatService {
	repo := memory.NewSessionRepository(time.Hour)
	gw := gateway.NewCompletionGateway(provider)
	return NewChatService(repo, gw, publisher, nopLogger{})
}

func TestCreateSession_SeedsGreetingOnce(t *testing.T) {
	svc := newTestService(&scriptedProvider{}, nil)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	require.Len(t, created.Messages, 1)
	assert.Equal(t, store.SenderAssistant, created.Messages[0].Sender)
	assert.Equal(t, constant.GreetingMessage, created.Messages[0].Text)
	assert.Equal(t, "", created.OrderStep)

	// Reopening the widget fetches history; the greeting is not re-added.
	history, err := svc.GetSession(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 1)
}

func TestSendMessage_RejectsBlankInput(t *testing.T) {
	provider := &scriptedProvider{}
	svc := newTestService(provider, nil)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), created.Id, "   \n\t ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	// Neither the transcript nor the provider saw anything.
	history, err := svc.GetSession(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 1)
	assert.Zero(t, provider.callCount())
}

func TestSendMessage_UnknownSession(t *testing.T) {
	svc := newTestService(&scriptedProvider{}, nil)

	_, err := svc.SendMessage(context.Background(), uuid.New(), "hello")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendMessage_RejectsConcurrentSubmission(t *testing.T) {
	block := make(chan struct{})
	entered := make(chan struct{}, 1)
	provider := &scriptedProvider{
		replies: []string{"Certainly.", "Of course."},
		entered: entered,
		block:   block,
	}
	svc := newTestService(provider, nil)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.SendMessage(context.Background(), created.Id, "tell me about EchoSee")
		firstDone <- err
	}()

	// Wait until the first submission is inside the gateway call, then the
	// second must be rejected, not queued.
	<-entered
	_, err = svc.SendMessage(context.Background(), created.Id, "second message")
	assert.ErrorIs(t, err, ErrBusy)

	close(block)
	require.NoError(t, <-firstDone)

	// After the first resolves, the session accepts input again.
	provider.block = nil
	_, err = svc.SendMessage(context.Background(), created.Id, "third message")
	require.NoError(t, err)
}

func TestSendMessage_AdvancesScriptAndCapturesFields(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		"Certainly. Which plan would you prefer, Basic or Premium?",
		"Premium noted. Would you prefer one-time or monthly payment?",
	}}
	svc := newTestService(provider, nil)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	res, err := svc.SendMessage(context.Background(), created.Id, "I want to order")
	require.NoError(t, err)
	assert.Equal(t, string(order.StepAskPlan), res.OrderStep)

	res, err = svc.SendMessage(context.Background(), created.Id, "Premium please")
	require.NoError(t, err)
	assert.Equal(t, string(order.StepAskPayment), res.OrderStep)
	assert.Equal(t, order.PlanPremium, res.UserData.Plan)
}

func TestSendMessage_ConfirmSkipsGateway(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		"Please review your order and type 'confirm' to place it.",
	}}
	publisher := &capturingPublisher{}
	svc := newTestService(provider, publisher)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	// Drive the session to the confirmation step with one gateway exchange.
	res, err := svc.SendMessage(context.Background(), created.Id, "order premium one-time ali@example.com +923001234567")
	require.NoError(t, err)
	require.Equal(t, string(order.StepConfirmOrder), res.OrderStep)

	callsBefore := provider.callCount()

	res, err = svc.SendMessage(context.Background(), created.Id, "confirm")
	require.NoError(t, err)

	// The receipt is synthesized locally.
	assert.Equal(t, callsBefore, provider.callCount())
	assert.Equal(t, string(order.StepComplete), res.OrderStep)
	require.NotNil(t, res.Reply)
	assert.True(t, res.Reply.IsReceipt)
	assert.Contains(t, res.Reply.Text, "ORDER RECEIPT")
	assert.Contains(t, res.Reply.Text, "• Plan: Premium")

	require.Len(t, publisher.receipts, 1)
	assert.Equal(t, order.PlanPremium, publisher.states[0].Plan)
	assert.Equal(t, "ali@example.com", publisher.states[0].Email)
}

func TestSendMessage_GatewayFailureRecoversLocally(t *testing.T) {
	provider := &scriptedProvider{
		replies: []string{"", "Premium noted. May I have your full name?"},
		errs:    []error{errors.New("status 500")},
	}
	svc := newTestService(provider, nil)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	// The failing exchange still answers, with the fixed apology and no error.
	res, err := svc.SendMessage(context.Background(), created.Id, "I want to order the premium plan")
	require.NoError(t, err)
	require.NotNil(t, res.Reply)
	assert.Equal(t, constant.ApologyMessage, res.Reply.Text)

	// Captured data and step are as they were before the failed call.
	assert.Equal(t, order.PlanUnknown, res.UserData.Plan)
	assert.Equal(t, string(order.StepIdle), res.OrderStep)

	// Both the user message and the apology are on the transcript.
	history, err := svc.GetSession(context.Background(), created.Id)
	require.NoError(t, err)
	require.Len(t, history.Messages, 3)
	assert.Equal(t, constant.ApologyMessage, history.Messages[2].Text)

	// The next submission goes through normally and re-extracts.
	res, err = svc.SendMessage(context.Background(), created.Id, "I want to order premium")
	require.NoError(t, err)
	assert.Equal(t, order.PlanPremium, res.UserData.Plan)
	assert.Equal(t, "Premium noted. May I have your full name?", res.Reply.Text)
}

func TestDeleteSession(t *testing.T) {
	svc := newTestService(&scriptedProvider{}, nil)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(context.Background(), created.Id))

	_, err = svc.GetSession(context.Background(), created.Id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.DeleteSession(context.Background(), created.Id), ErrSessionNotFound)
}

func TestComplete_StatelessContract(t *testing.T) {
	provider := &scriptedProvider{replies: []string{"Certainly. Which plan would you prefer?"}}
	svc := newTestService(provider, nil)

	reply, err := svc.Complete(context.Background(), &dto.CompleteChatRequest{
		Messages: []dto.ChatMessageDTO{
			{Sender: "assistant", Text: "How may I help you today?"},
			{Sender: "user", Text: "I want to order"},
		},
		UserData:  order.State{Name: "Ali Hassan"},
		OrderStep: "askEmail",
	})

	require.NoError(t, err)
	assert.Equal(t, "Certainly. Which plan would you prefer?", reply)
	assert.Equal(t, 1, provider.callCount())
}
