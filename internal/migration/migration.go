package migration

import (
	"context"
	"fmt"

	"github.com/avezov/hotelbook/internal/hotel"
	"github.com/avezov/hotelbook/internal/logger"
)

type storage interface {
	CreateHotel(ctx context.Context, name string) error
	SaveRoom(ctx context.Context, room *hotel.Room) error
}

// Up seeds the hotel and its starting inventory.
func Up(ctx context.Context, l *logger.Logger, storage storage) error {
	if err := storage.CreateHotel(ctx, "Hilton"); err != nil {
		return fmt.Errorf("create hotel: %w", err)
	}

	rooms := []*hotel.Room{
		hotel.NewRoom(101, "Standard", 100, []string{"TV", "AC"}, "Tashkent"),
		hotel.NewRoom(102, "Deluxe", 200, []string{"TV", "AC", "Mini Bar"}, "Tashkent"),
	}

	for _, room := range rooms {
		if err := storage.SaveRoom(ctx, room); err != nil {
			return fmt.Errorf("save room %v to storage: %w", room.ID, err)
		}
	}

	l.LogInfo("Seeded hotel with %v rooms", len(rooms))

	return nil
}
