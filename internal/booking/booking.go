package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avezov/hotelbook/internal/booklog"
	"github.com/avezov/hotelbook/internal/hotel"
	"github.com/avezov/hotelbook/internal/logger"
	"github.com/avezov/hotelbook/internal/observability"
)

type idGenerator interface {
	GetID(ctx context.Context) (int, error)
}

type journal interface {
	Append(entry booklog.Entry) error
	View() (string, error)
}

type storageReader interface {
	GetRoom(ctx context.Context, id int) (*hotel.Room, error)
	GetBooking(ctx context.Context, id int) (*hotel.Booking, error)
}

type storageWriter interface {
	SaveBooking(ctx context.Context, booking *hotel.Booking) error
}

type storage interface {
	storageReader
	storageWriter
}

type Config struct {
	// ReleaseOnCancel marks a cancelled booking and frees its dates.
	// Off by default: cancellation then only computes a refund and
	// leaves every collection untouched, which is the long-standing
	// behavior callers may depend on.
	ReleaseOnCancel bool
}

type Manager struct {
	// mu serializes bookings and cancellations: room booked dates are
	// checked and mutated outside the store's lock, so the workflow
	// itself must not run concurrently.
	mu              sync.Mutex
	l               *logger.Logger
	storage         storage
	journal         journal
	idGenerator     idGenerator
	releaseOnCancel bool
}

func New(l *logger.Logger, storage storage, journal journal, idGenerator idGenerator, conf Config) *Manager {
	//nolint:exhaustruct
	return &Manager{
		l:               l,
		storage:         storage,
		journal:         journal,
		idGenerator:     idGenerator,
		releaseOnCancel: conf.ReleaseOnCancel,
	}
}

func (b *BookInput) validate() error {
	inputErr := newInputError()

	if b.CustomerName == "" {
		inputErr.addError("customer_name", "provide customer_name")
	}

	if b.RoomID == 0 {
		inputErr.addError("room_id", "provide room_id")
	}

	// Date ordering is intentionally not checked: an inverted range books
	// nothing and prices negatively, same as it always has.

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func (b *BookInput) prepareDates() {
	b.StartDate = hotel.Day(b.StartDate)
	b.EndDate = hotel.Day(b.EndDate)
}

func (m *Manager) buildBooking(
	ctx context.Context,
	customer hotel.Customer,
	room *hotel.Room,
	input *BookInput,
	discount float64,
) (*hotel.Booking, error) {
	id, err := m.idGenerator.GetID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	totalDays := hotel.DaysInclusive(input.StartDate, input.EndDate)

	//nolint:exhaustruct
	return &hotel.Booking{
		ID:         id,
		Customer:   customer,
		Room:       room,
		RoomID:     room.ID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Discount:   discount,
		TotalDays:  totalDays,
		TotalPrice: room.Price * float64(totalDays) * (1 - discount),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// CreateBooking runs the whole booking workflow: discount policy,
// availability check, booking construction with its three side effects in
// program order (journal line, booked dates, registration with the hotel).
// Room unavailability comes back as *AvailabilityError and is the only
// recoverable failure.
func (m *Manager) CreateBooking(ctx context.Context, input *BookInput) (*hotel.Booking, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	input.prepareDates()

	m.mu.Lock()
	defer m.mu.Unlock()

	room, err := m.storage.GetRoom(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room %v: %w", input.RoomID, err)
	}

	customer := hotel.Customer{Name: input.CustomerName, VIP: input.VIP}

	if !room.IsAvailable(input.StartDate, input.EndDate) {
		m.l.LogInfo("Room %v is not available for the selected dates", room.ID)
		observability.BookingsRefused.Inc()

		return nil, NewAvailabilityError(room.ID, room.BookedWithin(input.StartDate, input.EndDate))
	}

	booking, err := m.buildBooking(ctx, customer, room, input, ResolveDiscount(customer))
	if err != nil {
		return nil, fmt.Errorf("build booking: %w", err)
	}

	entry := booklog.Entry{
		Time:         booking.CreatedAt,
		CustomerName: customer.Name,
		RoomID:       room.ID,
		StartDate:    booking.StartDate,
		EndDate:      booking.EndDate,
		TotalPrice:   booking.TotalPrice,
	}

	if err := m.journal.Append(entry); err != nil {
		return nil, fmt.Errorf("journal booking: %w", err)
	}

	room.BookedDates = append(room.BookedDates, hotel.DatesIn(booking.StartDate, booking.EndDate)...)

	if err := m.storage.SaveBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking to storage: %w", err)
	}

	observability.BookingsCreated.Inc()

	return booking, nil
}

// CancelBooking computes the refund for a booking at the given fraction of
// its total price. By default nothing else happens: the booking stays
// registered, the room keeps its dates, and repeated calls return the same
// amount. With ReleaseOnCancel set the booking is marked cancelled and its
// dates freed, once.
func (m *Manager) CancelBooking(ctx context.Context, bookingID int, percent float64) (*Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, err := m.storage.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %v: %w", bookingID, err)
	}

	amount := booking.Refund(percent)

	if m.releaseOnCancel && !booking.Cancelled {
		booking.Cancelled = true
		releaseDates(booking)
	}

	m.l.LogInfo("Refund of %v issued for booking %v at %v", amount, bookingID, percent)
	observability.RefundsIssued.Inc()

	return &Refund{
		BookingID: bookingID,
		Percent:   percent,
		Amount:    amount,
	}, nil
}

// releaseDates removes one occurrence of each of the booking's dates from
// its room, leaving duplicates written by other bookings in place.
func releaseDates(booking *hotel.Booking) {
	for _, date := range hotel.DatesIn(booking.StartDate, booking.EndDate) {
		for i, booked := range booking.Room.BookedDates {
			if booked.Equal(date) {
				booking.Room.BookedDates = append(
					booking.Room.BookedDates[:i],
					booking.Room.BookedDates[i+1:]...,
				)

				break
			}
		}
	}
}

// ViewJournal returns the raw booking journal. It fails when no booking
// has ever been journaled.
func (m *Manager) ViewJournal(_ context.Context) (string, error) {
	text, err := m.journal.View()
	if err != nil {
		return "", fmt.Errorf("view journal: %w", err)
	}

	return text, nil
}
