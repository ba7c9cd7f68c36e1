package hotel_test

import (
	"testing"
	"time"

	"github.com/avezov/hotelbook/internal/hotel"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestRoomIsAvailable(t *testing.T) {
	room := hotel.NewRoom(101, "Standard", 100, []string{"TV", "AC"}, "Tashkent")

	if !room.IsAvailable(date(2025, 5, 10), date(2025, 5, 12)) {
		t.Fatal("expected a room with no booked dates to be available")
	}

	room.BookedDates = append(room.BookedDates, date(2025, 5, 11))

	if room.IsAvailable(date(2025, 5, 10), date(2025, 5, 12)) {
		t.Fatal("expected a booked date inside the range to make the room unavailable")
	}

	if !room.IsAvailable(date(2025, 5, 12), date(2025, 5, 14)) {
		t.Fatal("expected a range missing every booked date to be available")
	}

	// Inverted ranges match nothing and read as available.
	if !room.IsAvailable(date(2025, 5, 12), date(2025, 5, 10)) {
		t.Fatal("expected an inverted range to read as available")
	}
}

func TestRoomBookedWithin(t *testing.T) {
	room := hotel.NewRoom(101, "Standard", 100, nil, "Tashkent")
	room.BookedDates = append(room.BookedDates, date(2025, 5, 9), date(2025, 5, 11), date(2025, 5, 13))

	conflicts := room.BookedWithin(date(2025, 5, 10), date(2025, 5, 12))
	if len(conflicts) != 1 || !conflicts[0].Equal(date(2025, 5, 11)) {
		t.Fatalf("expected exactly the 11th to conflict, got %+v", conflicts)
	}
}

func TestFilterRooms(t *testing.T) {
	h := hotel.New("Hilton")
	standard := hotel.NewRoom(101, "Standard", 100, []string{"TV", "AC"}, "Tashkent")
	deluxe := hotel.NewRoom(102, "Deluxe", 200, []string{"TV", "AC", "Mini Bar"}, "Tashkent")
	budget := hotel.NewRoom(103, "Budget", 50, []string{"TV"}, "Samarkand")
	h.AddRoom(standard)
	h.AddRoom(deluxe)
	h.AddRoom(budget)

	//nolint:exhaustruct
	all := h.FilterRooms(hotel.RoomFilter{})
	if len(all) != 3 || all[0] != standard || all[1] != deluxe || all[2] != budget {
		t.Fatalf("expected an empty filter to keep all rooms in order, got %+v", all)
	}

	//nolint:exhaustruct
	withAC := h.FilterRooms(hotel.RoomFilter{Amenities: []string{"AC"}})
	if len(withAC) != 2 || withAC[0] != standard || withAC[1] != deluxe {
		t.Fatalf("expected the AC filter to drop the budget room, got %+v", withAC)
	}

	maxPrice := 150.0

	//nolint:exhaustruct
	affordable := h.FilterRooms(hotel.RoomFilter{MaxPrice: &maxPrice, Amenities: []string{"AC"}})
	if len(affordable) != 1 || affordable[0] != standard {
		t.Fatalf("expected only room 101 under 150 with AC, got %+v", affordable)
	}

	//nolint:exhaustruct
	located := h.FilterRooms(hotel.RoomFilter{Location: "Samarkand"})
	if len(located) != 1 || located[0] != budget {
		t.Fatalf("expected only the Samarkand room, got %+v", located)
	}
}

func TestRevenueReport(t *testing.T) {
	h := hotel.New("Hilton")

	//nolint:exhaustruct
	h.AddBooking(&hotel.Booking{StartDate: date(2025, 5, 10), TotalPrice: 240})
	//nolint:exhaustruct
	h.AddBooking(&hotel.Booking{StartDate: date(2025, 5, 10), TotalPrice: 100})
	//nolint:exhaustruct
	h.AddBooking(&hotel.Booking{StartDate: date(2025, 5, 11), TotalPrice: 400})

	report := h.RevenueReport()

	if got := report["2025-05-10"]; got != 340 {
		t.Fatalf("expected 340 for 2025-05-10, got %v", got)
	}

	if got := report["2025-05-11"]; got != 400 {
		t.Fatalf("expected 400 for 2025-05-11, got %v", got)
	}

	if _, exists := report["2025-05-12"]; exists {
		t.Fatal("expected a date with no bookings to be absent, not zero")
	}
}

func TestRefundIsPureAndIdempotent(t *testing.T) {
	room := hotel.NewRoom(101, "Standard", 100, nil, "Tashkent")
	room.BookedDates = append(room.BookedDates, date(2025, 5, 10))

	//nolint:exhaustruct
	b := &hotel.Booking{Room: room, TotalPrice: 240}

	if got := b.Refund(0.8); got != 192 {
		t.Fatalf("expected a refund of 192, got %v", got)
	}

	if got := b.Refund(0.8); got != 192 {
		t.Fatalf("expected repeated refunds to return the same value, got %v", got)
	}

	if len(room.BookedDates) != 1 || b.Cancelled {
		t.Fatal("expected refund calculation to leave room and booking state untouched")
	}
}

func TestDayArithmetic(t *testing.T) {
	if got := hotel.DaysInclusive(date(2025, 5, 10), date(2025, 5, 12)); got != 3 {
		t.Fatalf("expected 3 inclusive days, got %v", got)
	}

	if got := hotel.DaysInclusive(date(2025, 5, 10), date(2025, 5, 10)); got != 1 {
		t.Fatalf("expected a single-day range to count 1, got %v", got)
	}

	// The inverted range stays permissive and goes negative.
	if got := hotel.DaysInclusive(date(2025, 5, 12), date(2025, 5, 10)); got >= 0 {
		t.Fatalf("expected an inverted range to count negative days, got %v", got)
	}

	dates := hotel.DatesIn(date(2025, 5, 10), date(2025, 5, 12))
	if len(dates) != 3 || !dates[0].Equal(date(2025, 5, 10)) || !dates[2].Equal(date(2025, 5, 12)) {
		t.Fatalf("expected the three dates of the range, got %+v", dates)
	}

	if got := hotel.DatesIn(date(2025, 5, 12), date(2025, 5, 10)); len(got) != 0 {
		t.Fatalf("expected no dates for an inverted range, got %+v", got)
	}
}
