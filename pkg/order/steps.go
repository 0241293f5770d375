package order

import "strings"

// stepRule pairs a keyword predicate with the step it selects. Rules are kept
// in an explicit ordered slice so precedence is auditable and testable on its
// own, instead of being buried in an if/else chain.
type stepRule struct {
	match func(lower string) bool
	step  Step
}

func containsAny(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}

// assistantRules classify the assistant's reply. First match wins.
var assistantRules = []stepRule{
	{containsAny("which plan", "basic or premium"), StepAskPlan},
	{containsAny("payment", "one-time or monthly"), StepAskPayment},
	{containsAny("your name", "full name"), StepAskName},
	{containsAny("email"), StepAskEmail},
	{containsAny("phone"), StepAskPhone},
	{containsAny("address", "deliver"), StepAskAddress},
	{containsAny("confirm"), StepConfirmOrder},
}

// isPurchaseIntent matches the keywords that start the scripted flow.
var isPurchaseIntent = containsAny("order", "buy", "purchase")

// isConfirmation matches the user's final go-ahead.
var isConfirmation = containsAny("confirm")

// InferUserStep advances the flow when the user expresses purchase intent.
// It only moves the flow forward out of idle: saying "order" again while a
// capture is already in progress must not reset the script to the beginning.
func InferUserStep(text string, current Step) Step {
	if current == StepIdle && isPurchaseIntent(strings.ToLower(text)) {
		return StepStarting
	}
	return current
}

// InferAssistantStep classifies the assistant's reply against the ordered
// rule list. No match leaves the step unchanged.
func InferAssistantStep(reply string, current Step) Step {
	lower := strings.ToLower(reply)
	for _, r := range assistantRules {
		if r.match(lower) {
			return r.step
		}
	}
	return current
}

// IsConfirmed reports whether a user message at the confirmation step commits
// the order.
func IsConfirmed(text string, current Step) bool {
	return current == StepConfirmOrder && isConfirmation(strings.ToLower(text))
}
