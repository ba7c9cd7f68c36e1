package hotel

import "time"

type Room struct {
	ID        int      `json:"id"`
	Type      string   `json:"type"`
	Price     float64  `json:"price"`
	Amenities []string `json:"amenities"`
	Location  string   `json:"location"`
	// BookedDates is append-only: successful bookings append their whole
	// inclusive range and nothing removes entries, so duplicates are
	// possible when the same date is written by overlapping history.
	BookedDates []time.Time `json:"-"`
}

func NewRoom(id int, roomType string, price float64, amenities []string, location string) *Room {
	//nolint:exhaustruct
	return &Room{
		ID:        id,
		Type:      roomType,
		Price:     price,
		Amenities: amenities,
		Location:  location,
	}
}

// IsAvailable reports whether no already-booked date falls inside
// [start, end] inclusive. The range is not validated: an inverted range
// matches nothing and reads as available.
func (r *Room) IsAvailable(start, end time.Time) bool {
	for _, booked := range r.BookedDates {
		if !booked.Before(start) && !booked.After(end) {
			return false
		}
	}

	return true
}

// BookedWithin lists the already-booked dates falling inside
// [start, end] inclusive, in booking order. Empty means available.
func (r *Room) BookedWithin(start, end time.Time) []time.Time {
	var conflicts []time.Time

	for _, booked := range r.BookedDates {
		if !booked.Before(start) && !booked.After(end) {
			conflicts = append(conflicts, booked)
		}
	}

	return conflicts
}

type Customer struct {
	Name string `json:"name"`
	VIP  bool   `json:"vip"`
}

type Booking struct {
	ID         int       `json:"id"`
	Customer   Customer  `json:"customer"`
	Room       *Room     `json:"-"`
	RoomID     int       `json:"room_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Discount   float64   `json:"discount"`
	TotalDays  int       `json:"total_days"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	Cancelled  bool      `json:"cancelled"`
}

// Refund computes the refund for cancelling at the given fraction of the
// total price. It is a pure calculation: repeated calls return the same
// value and neither the booking nor its room is touched.
func (b *Booking) Refund(percent float64) float64 {
	return b.TotalPrice * percent
}

// Day normalizes a moment to its calendar date in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInclusive counts days in [start, end] counting both endpoints. The
// result goes negative for inverted ranges, matching the permissive
// arithmetic everywhere else in the domain.
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// DatesIn lists every date of [start, end] inclusive, empty for inverted
// ranges.
func DatesIn(start, end time.Time) []time.Time {
	var dates []time.Time

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	return dates
}
