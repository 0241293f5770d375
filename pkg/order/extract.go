package order

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	// Pakistani mobile format: +92 or 03 prefix followed by 9-10 digits.
	phonePattern = regexp.MustCompile(`(\+92|03)\d{9,10}`)
)

// Extract runs the local capture heuristics over one user message and returns
// the updated state. step is the step that was active when the user typed the
// message; it decides whether bare text is a name or an address.
//
// Precedence: "basic" is checked before "premium" and captured fields are
// never overwritten, so the first plan keyword seen in a session wins even if
// a later message mentions both. Payment type behaves the same way.
func Extract(text string, step Step, prior State) State {
	next := prior
	lower := strings.ToLower(text)

	if next.Plan == PlanUnknown {
		if strings.Contains(lower, "basic") {
			next.Plan = PlanBasic
		} else if strings.Contains(lower, "premium") {
			next.Plan = PlanPremium
		}
	}

	if next.PaymentType == PaymentUnknown {
		if strings.Contains(lower, "one-time") || strings.Contains(lower, "onetime") ||
			strings.Contains(lower, "one time") || strings.Contains(lower, "full payment") {
			next.PaymentType = PaymentOneTime
		} else if strings.Contains(lower, "monthly") || strings.Contains(lower, "installment") {
			next.PaymentType = PaymentMonthly
		}
	}

	if next.Email == "" {
		if m := emailPattern.FindString(text); m != "" {
			next.Email = m
		}
	}

	if next.Phone == "" {
		if m := phonePattern.FindString(text); m != "" {
			next.Phone = m
		}
	}

	// When the script just asked for a name or an address, the whole message
	// is the answer.
	trimmed := strings.TrimSpace(text)
	if step == StepAskName && next.Name == "" {
		next.Name = trimmed
	}
	if step == StepAskAddress && next.Address == "" {
		next.Address = trimmed
	}

	return next
}
