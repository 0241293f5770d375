// Package catalog holds the static EchoSee product reference data shared by
// the pricing endpoint, the receipt generator and the assistant prompt.
package catalog

const (
	ProductName = "EchoSee Smart Glasses"
	Currency    = "PKR"

	// DeliveryDays is the fixed delivery offset quoted on receipts.
	DeliveryDays = 10
)

// Plan describes one purchasable EchoSee plan.
type Plan struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Price        int      `json:"price"`         // one-time, PKR
	MonthlyPrice int      `json:"monthly_price"` // 12-month installment, PKR
	Warranty     string   `json:"warranty"`
	Features     []string `json:"features"`
}

var (
	Basic = Plan{
		Code:         "basic",
		Name:         "Basic",
		Price:        35000,
		MonthlyPrice: 3500,
		Warranty:     "1 Year",
		Features: []string{
			"Urdu & English support",
			"Offline mode",
			"10hr battery",
			"1 Year warranty",
		},
	}

	Premium = Plan{
		Code:         "premium",
		Name:         "Premium",
		Price:        40000,
		MonthlyPrice: 4000,
		Warranty:     "2 Years",
		Features: []string{
			"20+ languages",
			"Emotion detection",
			"12hr battery",
			"2 Year warranty",
			"Priority support",
		},
	}
)

// Plans returns all purchasable plans in display order.
func Plans() []Plan {
	return []Plan{Basic, Premium}
}

// ByCode looks a plan up by its code ("basic", "premium").
func ByCode(code string) (Plan, bool) {
	for _, p := range Plans() {
		if p.Code == code {
			return p, true
		}
	}
	return Plan{}, false
}
