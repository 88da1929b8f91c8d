// Package tracking maps an order's coarse status onto the delivery progress
// display. The per-step "live" view is a decorative simulation driven by a
// timer, not real carrier data.
package tracking

import "agriconnect-be/internal/order"

// Progress returns the progress-indicator value for a status. Total
// function: unknown statuses map to 0.
func Progress(status order.Status) int {
	switch status {
	case order.StatusPending:
		return 20
	case order.StatusProcessing:
		return 40
	case order.StatusShipped:
		return 70
	case order.StatusDelivered:
		return 100
	case order.StatusCancelled:
		return 0
	default:
		return 0
	}
}

// Steps is the fixed sub-step sequence shown while an order is in motion.
var Steps = []string{
	"Order Placed",
	"Processing",
	"Packed",
	"In Transit",
	"Out for Delivery",
	"Delivered",
}

// ShowsSteps reports whether the animated step sequence is displayed for a
// status. Only processing and shipped orders get the live view.
func ShowsSteps(status order.Status) bool {
	return status == order.StatusProcessing || status == order.StatusShipped
}
