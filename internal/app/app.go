package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/avezov/hotelbook/internal/booking"
	"github.com/avezov/hotelbook/internal/booklog"
	"github.com/avezov/hotelbook/internal/config"
	"github.com/avezov/hotelbook/internal/hotel"
	"github.com/avezov/hotelbook/internal/idgen/simple"
	"github.com/avezov/hotelbook/internal/logger"
	"github.com/avezov/hotelbook/internal/migration"
	"github.com/avezov/hotelbook/internal/storage/memory"
	"github.com/avezov/hotelbook/internal/transport/web"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	conf, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	storage := memory.New(memory.Config{L: l})
	if err := migration.Up(ctx, l, storage); err != nil {
		return fmt.Errorf("up seed migration: %w", err)
	}

	l.LogInfo("Seed migration has been applied")

	journal := booklog.New(conf.JournalFile)
	idGen := simple.New()
	bookManager := booking.New(l, storage, journal, idGen, booking.Config{
		ReleaseOnCancel: conf.ReleaseOnCancel,
	})

	if conf.Demo {
		return runDemo(ctx, bookManager, storage)
	}

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: 20, //nolint:gomnd
		LivenessEndpoint:  "/liveness",
	}

	srv, err := web.New(ctx, webConf, bookManager, storage)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// runDemo walks the whole booking lifecycle once against the seeded hotel:
// two bookings, a cancellation refund, the revenue report, a filtered room
// listing and the raw journal.
func runDemo(ctx context.Context, manager *booking.Manager, storage *memory.DB) error {
	book := func(name string, vip bool, roomID int, start, end time.Time) (*hotel.Booking, error) {
		b, err := manager.CreateBooking(ctx, &booking.BookInput{
			CustomerName: name,
			VIP:          vip,
			RoomID:       roomID,
			StartDate:    start,
			EndDate:      end,
		})
		if booking.IsAvailabilityError(err) != nil {
			fmt.Println("Room is not available for the selected dates.")

			return nil, nil
		}

		return b, err
	}

	first, err := book("Ali", true, 101, date(2025, 5, 10), date(2025, 5, 12))
	if err != nil {
		return fmt.Errorf("book room 101: %w", err)
	}

	if _, err := book("Vali", false, 102, date(2025, 5, 11), date(2025, 5, 12)); err != nil {
		return fmt.Errorf("book room 102: %w", err)
	}

	if first != nil {
		refund, err := manager.CancelBooking(ctx, first.ID, booking.DefaultCancelPercent)
		if err != nil {
			return fmt.Errorf("cancel booking %v: %w", first.ID, err)
		}

		fmt.Println("Refund on cancel:", refund.Amount)
	}

	report, err := storage.RevenueReport(ctx)
	if err != nil {
		return fmt.Errorf("build revenue report: %w", err)
	}

	fmt.Println("Revenue Report:", report)

	maxPrice := 150.0

	//nolint:exhaustruct
	rooms, err := storage.FilterRooms(ctx, hotel.RoomFilter{
		MaxPrice:  &maxPrice,
		Amenities: []string{"AC"},
	})
	if err != nil {
		return fmt.Errorf("filter rooms: %w", err)
	}

	ids := make([]int, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}

	fmt.Println("Filtered Rooms:", ids)

	logs, err := manager.ViewJournal(ctx)
	if err != nil {
		return fmt.Errorf("view journal: %w", err)
	}

	fmt.Print(logs)

	return nil
}
