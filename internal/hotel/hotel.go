package hotel

// Hotel aggregates the room inventory and the bookings made against it.
// Both collections are append-only; bookings are registered by the caller
// of the workflow, never by Booking construction itself.
type Hotel struct {
	Name     string
	Rooms    []*Room
	Bookings []*Booking
}

func New(name string) *Hotel {
	//nolint:exhaustruct
	return &Hotel{Name: name}
}

// AddRoom appends without checking for duplicate ids.
func (h *Hotel) AddRoom(room *Room) {
	h.Rooms = append(h.Rooms, room)
}

func (h *Hotel) AddBooking(booking *Booking) {
	h.Bookings = append(h.Bookings, booking)
}

// RoomFilter narrows the inventory. Zero-valued fields impose no
// constraint; set fields compose as successive AND filters.
type RoomFilter struct {
	MaxPrice  *float64
	Amenities []string
	Location  string
}

// FilterRooms returns the rooms passing every set filter, in inventory
// order. The inventory itself is left untouched.
func (h *Hotel) FilterRooms(filter RoomFilter) []*Room {
	result := h.Rooms

	if filter.MaxPrice != nil {
		var kept []*Room

		for _, room := range result {
			if room.Price <= *filter.MaxPrice {
				kept = append(kept, room)
			}
		}

		result = kept
	}

	if len(filter.Amenities) > 0 {
		var kept []*Room

		for _, room := range result {
			if hasAllAmenities(room, filter.Amenities) {
				kept = append(kept, room)
			}
		}

		result = kept
	}

	if filter.Location != "" {
		var kept []*Room

		for _, room := range result {
			if room.Location == filter.Location {
				kept = append(kept, room)
			}
		}

		result = kept
	}

	return result
}

func hasAllAmenities(room *Room, wanted []string) bool {
	tags := make(map[string]struct{}, len(room.Amenities))
	for _, a := range room.Amenities {
		tags[a] = struct{}{}
	}

	for _, w := range wanted {
		if _, ok := tags[w]; !ok {
			return false
		}
	}

	return true
}

// RevenueReport sums booking totals grouped by start date. Dates with no
// bookings are absent from the result rather than zero.
func (h *Hotel) RevenueReport() map[string]float64 {
	report := make(map[string]float64)

	for _, b := range h.Bookings {
		report[b.StartDate.Format("2006-01-02")] += b.TotalPrice
	}

	return report
}
