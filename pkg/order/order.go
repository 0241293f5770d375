// Package order implements the local side of the pre-order flow: the captured
// order state, keyword extraction from free-form chat text, the scripted step
// classifier and receipt synthesis. Nothing in this package touches the
// network; the remote model only ever sees a serialized snapshot of State.
package order

// Plan is the selected pricing plan. The zero value means not yet captured.
type Plan string

const (
	PlanUnknown Plan = ""
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
)

// PaymentType is the selected payment mode. The zero value means not yet captured.
type PaymentType string

const (
	PaymentUnknown PaymentType = ""
	PaymentOneTime PaymentType = "onetime"
	PaymentMonthly PaymentType = "monthly"
)

// State accumulates the structured fields captured from user text during one
// session. Fields only ever move from empty to a concrete value; extraction
// never overwrites a captured field.
type State struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Plan        Plan        `json:"plan"`
	PaymentType PaymentType `json:"paymentType"`
}

// Step is the current position in the scripted order-collection sequence.
type Step string

const (
	StepIdle         Step = ""
	StepStarting     Step = "starting"
	StepAskPlan      Step = "askPlan"
	StepAskPayment   Step = "askPayment"
	StepAskName      Step = "askName"
	StepAskEmail     Step = "askEmail"
	StepAskPhone     Step = "askPhone"
	StepAskAddress   Step = "askAddress"
	StepConfirmOrder Step = "confirmOrder"
	StepComplete     Step = "complete"
)
