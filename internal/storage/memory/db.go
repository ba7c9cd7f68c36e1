// Package memory owns the single Hotel aggregate and gives the rest of the
// service indexed access to its rooms and bookings. There is no structured
// persistence behind it; the only durable artifact of the system is the
// booking journal.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/avezov/hotelbook/internal/booking"
	"github.com/avezov/hotelbook/internal/hotel"
	"github.com/avezov/hotelbook/internal/logger"
)

type Config struct {
	L *logger.Logger
}

type DB struct {
	mu           sync.Mutex
	l            *logger.Logger
	hotel        *hotel.Hotel
	roomsByID    map[int]*hotel.Room
	bookingsByID map[int]*hotel.Booking
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:            conf.L,
		roomsByID:    make(map[int]*hotel.Room),
		bookingsByID: make(map[int]*hotel.Booking),
	}
}

func (db *DB) CreateHotel(_ context.Context, name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.hotel = hotel.New(name)
	db.l.LogInfo("Hotel %v created", name)

	return nil
}

// SaveRoom registers a room with the hotel. Duplicate ids are not checked
// in the inventory itself; the index simply keeps the latest room per id.
func (db *DB) SaveRoom(_ context.Context, room *hotel.Room) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.hotel == nil {
		return ErrHotelNotCreated
	}

	db.hotel.AddRoom(room)
	db.roomsByID[room.ID] = room

	return nil
}

func (db *DB) GetRoom(_ context.Context, id int) (*hotel.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	room, exists := db.roomsByID[id]
	if !exists {
		return nil, fmt.Errorf("room %v: %w", id, booking.ErrRecordNotFound)
	}

	return room, nil
}

func (db *DB) SaveBooking(_ context.Context, b *hotel.Booking) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.hotel == nil {
		return ErrHotelNotCreated
	}

	db.hotel.AddBooking(b)
	db.bookingsByID[b.ID] = b

	return nil
}

func (db *DB) GetBooking(_ context.Context, id int) (*hotel.Booking, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	b, exists := db.bookingsByID[id]
	if !exists {
		return nil, fmt.Errorf("booking %v: %w", id, booking.ErrRecordNotFound)
	}

	return b, nil
}

func (db *DB) FilterRooms(_ context.Context, filter hotel.RoomFilter) ([]*hotel.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.hotel == nil {
		return nil, ErrHotelNotCreated
	}

	return db.hotel.FilterRooms(filter), nil
}

func (db *DB) RevenueReport(_ context.Context) (map[string]float64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.hotel == nil {
		return nil, ErrHotelNotCreated
	}

	return db.hotel.RevenueReport(), nil
}
