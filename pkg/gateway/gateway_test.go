package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echosee-be/internal/constant"
	"echosee-be/pkg/llm"
	"echosee-be/pkg/order"
	"echosee-be/pkg/store"
)

// fakeProvider records what the gateway sends and replies with a canned string.
type fakeProvider struct {
	reply   string
	err     error
	history []llm.Message
	opts    llm.Options
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.history = history
	for _, o := range options {
		o(&f.opts)
	}
	return f.reply, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestComplete_RoleMappingAndSystemMessage(t *testing.T) {
	provider := &fakeProvider{reply: "Certainly. Which plan would you prefer?"}
	gw := NewCompletionGateway(provider)

	transcript := []store.Message{
		{Sender: store.SenderAssistant, Text: "How may I help you today?"},
		{Sender: store.SenderUser, Text: "I want to order"},
	}

	reply, err := gw.Complete(context.Background(), transcript, order.State{}, order.StepStarting)
	require.NoError(t, err)
	assert.Equal(t, "Certainly. Which plan would you prefer?", reply)

	require.Len(t, provider.history, 3)
	assert.Equal(t, constant.ChatMessageRoleSystem, provider.history[0].Role)
	assert.Contains(t, provider.history[0].Content, "You are a professional sales assistant for EchoSee")
	assert.Equal(t, constant.ChatMessageRoleAssistant, provider.history[1].Role)
	assert.Equal(t, constant.ChatMessageRoleUser, provider.history[2].Role)
	assert.Equal(t, "I want to order", provider.history[2].Content)
}

func TestComplete_SystemMessageCarriesOrderSnapshot(t *testing.T) {
	provider := &fakeProvider{reply: "Noted."}
	gw := NewCompletionGateway(provider)

	state := order.State{Name: "Ali Hassan", Plan: order.PlanPremium}
	_, err := gw.Complete(context.Background(), nil, state, order.StepAskEmail)
	require.NoError(t, err)

	system := provider.history[0].Content
	assert.Contains(t, system, "CURRENT ORDER STATUS: askEmail")
	assert.Contains(t, system, `"name":"Ali Hassan"`)
	assert.Contains(t, system, `"plan":"premium"`)
}

func TestComplete_IdleStepOmitsOrderStatus(t *testing.T) {
	provider := &fakeProvider{reply: "Hello."}
	gw := NewCompletionGateway(provider)

	_, err := gw.Complete(context.Background(), nil, order.State{}, order.StepIdle)
	require.NoError(t, err)

	assert.NotContains(t, provider.history[0].Content, "CURRENT ORDER STATUS")
}

func TestComplete_FixedGenerationParameters(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	gw := NewCompletionGateway(provider)

	_, err := gw.Complete(context.Background(), nil, order.State{}, order.StepIdle)
	require.NoError(t, err)

	assert.Equal(t, 300, provider.opts.MaxTokens)
	assert.Equal(t, 0.5, provider.opts.Temperature)
}

func TestComplete_EmptyReplyBecomesFallback(t *testing.T) {
	provider := &fakeProvider{reply: "   \n"}
	gw := NewCompletionGateway(provider)

	reply, err := gw.Complete(context.Background(), nil, order.State{}, order.StepIdle)
	require.NoError(t, err)
	assert.Equal(t, constant.FallbackMessage, reply)
}

func TestComplete_ProviderErrorIsWrapped(t *testing.T) {
	provider := &fakeProvider{err: errors.New("status 429")}
	gw := NewCompletionGateway(provider)

	_, err := gw.Complete(context.Background(), nil, order.State{}, order.StepIdle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completion request failed")
	assert.Contains(t, err.Error(), "status 429")
}
