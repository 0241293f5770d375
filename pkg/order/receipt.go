package order

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"echosee-be/pkg/catalog"
)

const receiptDateFormat = "January 2, 2006"

// orderSeq breaks ties between receipts generated within the same
// millisecond. The resulting number is still time-derived, not globally
// unique; good enough for a pre-order receipt.
var orderSeq atomic.Uint64

func newOrderNumber(now time.Time) string {
	n := uint64(now.UnixMilli()) + orderSeq.Add(1)
	return fmt.Sprintf("ECH%08d", n%100000000)
}

// Receipt renders the pre-order receipt for a confirmed order. It is a pure
// function of the captured state and the clock: no network, no mutation.
// Unknown plan falls back to Basic, matching the pricing the script quotes
// before a plan keyword is captured.
func Receipt(state State, now time.Time) string {
	plan := catalog.Basic
	if state.Plan == PlanPremium {
		plan = catalog.Premium
	}

	price := plan.Price
	paymentLabel := " (one-time)"
	if state.PaymentType == PaymentMonthly {
		price = plan.MonthlyPrice
		paymentLabel = "/month (12 months)"
	}

	p := message.NewPrinter(language.English)
	orderDate := now.Format(receiptDateFormat)
	deliveryDate := now.AddDate(0, 0, catalog.DeliveryDays).Format(receiptDateFormat)

	var b strings.Builder
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString("🧾 ORDER RECEIPT\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━\n\n")
	b.WriteString("📦 PRODUCT DETAILS\n")
	fmt.Fprintf(&b, "• Product: %s\n", catalog.ProductName)
	fmt.Fprintf(&b, "• Plan: %s\n\n", plan.Name)
	b.WriteString("💰 PAYMENT\n")
	fmt.Fprintf(&b, "• Amount: %s %s%s\n", catalog.Currency, p.Sprintf("%d", price), paymentLabel)
	fmt.Fprintf(&b, "• Order #: %s\n\n", newOrderNumber(now))
	b.WriteString("👤 CUSTOMER DETAILS\n")
	fmt.Fprintf(&b, "• Name: %s\n", state.Name)
	fmt.Fprintf(&b, "• Email: %s\n", state.Email)
	fmt.Fprintf(&b, "• Phone: %s\n", state.Phone)
	fmt.Fprintf(&b, "• Address: %s\n\n", state.Address)
	b.WriteString("📅 DATES\n")
	fmt.Fprintf(&b, "• Order Date: %s\n", orderDate)
	fmt.Fprintf(&b, "• Expected Delivery: %s\n\n", deliveryDate)
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString("Thank you for choosing EchoSee! 🎉\n")
	b.WriteString("We'll send a confirmation email shortly.\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━")

	return b.String()
}
