package booking

import "github.com/avezov/hotelbook/internal/hotel"

const (
	// VIPDiscount is the fraction knocked off every VIP booking.
	VIPDiscount = 0.2

	// DefaultCancelPercent is the refunded fraction of the total price
	// when the caller does not pick one.
	DefaultCancelPercent = 0.8
)

// ResolveDiscount is the single discount policy for booking creation. It is
// applied unconditionally by the manager, so a caller-supplied discount can
// never reach a booking through the creation entry point.
func ResolveDiscount(customer hotel.Customer) float64 {
	if customer.VIP {
		return VIPDiscount
	}

	return 0.0
}
