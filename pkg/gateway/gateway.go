// Package gateway is the stateless boundary between a conversation and the
// remote completion service: one transcript in, one assistant utterance out.
package gateway

import (
	"context"
	"fmt"
	"strings"

	"echosee-be/internal/constant"
	"echosee-be/pkg/llm"
	"echosee-be/pkg/order"
	"echosee-be/pkg/prompt"
	"echosee-be/pkg/store"
)

// Generation parameters are fixed: the assistant answers short scripted
// questions, so a low temperature and a small token ceiling are enough.
const (
	maxTokens   = 300
	temperature = 0.5
)

// CompletionGateway forwards one exchange to the provider. It keeps no state
// between calls; everything the model needs travels in the system message.
type CompletionGateway struct {
	provider llm.Provider
}

func NewCompletionGateway(provider llm.Provider) *CompletionGateway {
	return &CompletionGateway{provider: provider}
}

// Complete maps the transcript to provider roles, prepends the system
// message and returns the first completion's text. An empty completion is
// replaced with the fixed fallback string; transport and status errors are
// returned as-is for the caller to recover from.
func (g *CompletionGateway) Complete(ctx context.Context, transcript []store.Message, state order.State, step order.Step) (string, error) {
	history := make([]llm.Message, 0, len(transcript)+1)
	history = append(history, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: prompt.NewBuilder(state, step).Build(),
	})

	for _, msg := range transcript {
		role := constant.ChatMessageRoleAssistant
		if msg.Sender == store.SenderUser {
			role = constant.ChatMessageRoleUser
		}
		history = append(history, llm.Message{
			Role:    role,
			Content: msg.Text,
		})
	}

	reply, err := g.provider.Chat(ctx, history,
		llm.WithMaxTokens(maxTokens),
		llm.WithTemperature(temperature),
	)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if strings.TrimSpace(reply) == "" {
		return constant.FallbackMessage, nil
	}

	return reply, nil
}
