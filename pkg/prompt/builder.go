// Package prompt assembles the system message sent to the completion
// provider on every gateway call.
package prompt

import (
	"encoding/json"
	"strings"

	"echosee-be/internal/constant"
	"echosee-be/pkg/order"
)

// Builder composes the fixed assistant context with the live order snapshot.
// The remote service keeps no session state, so the snapshot is how the model
// knows what has already been collected.
type Builder struct {
	state order.State
	step  order.Step
}

func NewBuilder(state order.State, step order.Step) *Builder {
	return &Builder{
		state: state,
		step:  step,
	}
}

// Build returns the full system message content.
func (b *Builder) Build() string {
	var prompt strings.Builder

	prompt.WriteString(constant.AssistantContext)
	b.writeOrderStatus(&prompt)

	return prompt.String()
}

func (b *Builder) writeOrderStatus(prompt *strings.Builder) {
	if b.step == order.StepIdle {
		return
	}

	snapshot, err := json.Marshal(b.state)
	if err != nil {
		snapshot = []byte("{}")
	}

	prompt.WriteString("\n\nCURRENT ORDER STATUS: ")
	prompt.WriteString(string(b.step))
	prompt.WriteString("\nCOLLECTED DATA: ")
	prompt.Write(snapshot)
}
