package billing

import "strings"

// PaymentState buckets the gateway's free-text payment status for display.
type PaymentState string

const (
	PaymentSettled PaymentState = "settled"
	PaymentPending PaymentState = "pending"
	PaymentFailed  PaymentState = "failed"
	PaymentNeutral PaymentState = "neutral"
)

// ClassifyPaymentStatus matches the gateway's free-text status
// case-insensitively against known substrings. Precedence is fixed:
// paid/success first, then pending, then failed/rejected, so a combined
// status like "pending-failed" classifies as pending.
func ClassifyPaymentStatus(raw string) PaymentState {
	s := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.Contains(s, "paid") || strings.Contains(s, "success"):
		return PaymentSettled
	case strings.Contains(s, "pending"):
		return PaymentPending
	case strings.Contains(s, "failed") || strings.Contains(s, "rejected"):
		return PaymentFailed
	default:
		return PaymentNeutral
	}
}
