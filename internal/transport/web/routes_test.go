package web_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avezov/hotelbook/internal/booking"
	"github.com/avezov/hotelbook/internal/booklog"
	"github.com/avezov/hotelbook/internal/hotel"
	"github.com/avezov/hotelbook/internal/idgen/simple"
	"github.com/avezov/hotelbook/internal/logger"
	"github.com/avezov/hotelbook/internal/storage/memory"
	"github.com/avezov/hotelbook/internal/transport/web"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()

	ctx := context.Background()
	l := logger.New()
	db := memory.New(memory.Config{L: l})

	if err := db.CreateHotel(ctx, "Hilton"); err != nil {
		t.Fatal(err)
	}

	rooms := []*hotel.Room{
		hotel.NewRoom(101, "Standard", 100, []string{"TV", "AC"}, "Tashkent"),
		hotel.NewRoom(102, "Deluxe", 200, []string{"TV", "AC", "Mini Bar"}, "Tashkent"),
	}

	for _, room := range rooms {
		if err := db.SaveRoom(ctx, room); err != nil {
			t.Fatal(err)
		}
	}

	journal := booklog.New(filepath.Join(t.TempDir(), "booking_log.txt"))
	manager := booking.New(l, db, journal, simple.New(), booking.Config{ReleaseOnCancel: false})

	conf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              "localhost",
		Port:              "0",
		ReadHeaderTimeout: 20, //nolint:gomnd
		LivenessEndpoint:  "/liveness",
	}

	srv, err := web.New(ctx, conf, manager, db)
	if err != nil {
		t.Fatal(err)
	}

	return srv.Srv().Handler
}

func do(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

const aliBody = `{"customer_name":"Ali","vip":true,"room_id":101,` +
	`"start_date":"2025-05-10T00:00:00Z","end_date":"2025-05-12T00:00:00Z"}`

func TestCreateBookingEndpoint(t *testing.T) {
	handler := newHandler(t)

	rec := do(t, handler, http.MethodPost, "/api/bookings/v1", aliBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %v: %v", rec.Code, rec.Body.String())
	}

	var created hotel.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	if created.TotalPrice != 240 || created.Discount != 0.2 {
		t.Fatalf("unexpected booking payload: %+v", created)
	}

	// Overlapping dates on the same room are refused.
	rec = do(t, handler, http.MethodPost, "/api/bookings/v1", aliBody)
	if rec.Code != http.StatusPreconditionFailed {
		t.Fatalf("expected 412 for overlapping dates, got %v", rec.Code)
	}

	rec = do(t, handler, http.MethodPost, "/api/bookings/v1", `{"customer_name":"Ali"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing room id, got %v", rec.Code)
	}

	rec = do(t, handler, http.MethodPost, "/api/bookings/v1",
		strings.Replace(aliBody, `"room_id":101`, `"room_id":999`, 1))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown room, got %v", rec.Code)
	}
}

func TestCancelEndpoint(t *testing.T) {
	handler := newHandler(t)

	rec := do(t, handler, http.MethodPost, "/api/bookings/v1", aliBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %v", rec.Code)
	}

	var created hotel.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	rec = do(t, handler, http.MethodPost, fmt.Sprintf("/api/bookings/v1/%d/cancel", created.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %v: %v", rec.Code, rec.Body.String())
	}

	var refund booking.Refund
	if err := json.Unmarshal(rec.Body.Bytes(), &refund); err != nil {
		t.Fatal(err)
	}

	if refund.Amount != 192 || refund.Percent != 0.8 {
		t.Fatalf("unexpected refund payload: %+v", refund)
	}

	rec = do(t, handler, http.MethodPost, "/api/bookings/v1/42/cancel", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown booking, got %v", rec.Code)
	}
}

func TestRoomsAndRevenueEndpoints(t *testing.T) {
	handler := newHandler(t)

	rec := do(t, handler, http.MethodPost, "/api/bookings/v1", aliBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %v", rec.Code)
	}

	rec = do(t, handler, http.MethodGet, "/api/rooms/v1?price=150&amenities=AC", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %v", rec.Code)
	}

	var rooms []hotel.Room
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatal(err)
	}

	if len(rooms) != 1 || rooms[0].ID != 101 {
		t.Fatalf("expected only room 101 under 150 with AC, got %+v", rooms)
	}

	rec = do(t, handler, http.MethodGet, "/api/revenue/v1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %v", rec.Code)
	}

	var report map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}

	if report["2025-05-10"] != 240 {
		t.Fatalf("unexpected revenue report: %+v", report)
	}
}

func TestJournalEndpoint(t *testing.T) {
	handler := newHandler(t)

	rec := do(t, handler, http.MethodGet, "/api/journal/v1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before any booking, got %v", rec.Code)
	}

	rec = do(t, handler, http.MethodPost, "/api/bookings/v1", aliBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %v", rec.Code)
	}

	rec = do(t, handler, http.MethodGet, "/api/journal/v1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %v", rec.Code)
	}

	if !strings.Contains(rec.Body.String(), "Ali booked Room 101 from 2025-05-10 to 2025-05-12, Total: 240") {
		t.Fatalf("unexpected journal body: %q", rec.Body.String())
	}
}

func TestLivenessEndpoint(t *testing.T) {
	handler := newHandler(t)

	rec := do(t, handler, http.MethodGet, "/liveness", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %v", rec.Code)
	}
}
