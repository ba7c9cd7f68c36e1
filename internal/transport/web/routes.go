package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/avezov/hotelbook/internal/booking"
	"github.com/avezov/hotelbook/internal/hotel"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input booking.BookInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	out, err := s.bManager.CreateBooking(ctx, &input)
	if inputErr := booking.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	if availabilityErr := booking.IsAvailabilityError(err); availabilityErr != nil {
		s.writeJSON(w, http.StatusPreconditionFailed, map[string]string{
			"error": availabilityErr.Error(),
		})

		return
	}

	if errors.Is(err, booking.ErrRecordNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not create a booking: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusCreated, out)
}

func (s *Server) cancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "provide a numeric booking id", http.StatusBadRequest)

		return
	}

	percent := booking.DefaultCancelPercent

	if raw := r.URL.Query().Get("percent"); raw != "" {
		percent, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "provide a numeric percent", http.StatusBadRequest)

			return
		}
	}

	refund, err := s.bManager.CancelBooking(ctx, id, percent)
	if errors.Is(err, booking.ErrRecordNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not cancel booking %v: %v", id, err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, refund)
}

func roomFilterFromQuery(r *http.Request) (hotel.RoomFilter, error) {
	//nolint:exhaustruct
	filter := hotel.RoomFilter{
		Location: r.URL.Query().Get("location"),
	}

	if raw := r.URL.Query().Get("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, fmt.Errorf("parse price %q: %w", raw, err)
		}

		filter.MaxPrice = &price
	}

	if raw := r.URL.Query().Get("amenities"); raw != "" {
		filter.Amenities = strings.Split(raw, ",")
	}

	return filter, nil
}

func (s *Server) roomsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := roomFilterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	rooms, err := s.store.FilterRooms(r.Context(), filter)
	if err != nil {
		s.l.LogErrorf("Could not filter rooms: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) revenueHandler(w http.ResponseWriter, r *http.Request) {
	report, err := s.store.RevenueReport(r.Context())
	if err != nil {
		s.l.LogErrorf("Could not build revenue report: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) journalHandler(w http.ResponseWriter, r *http.Request) {
	text, err := s.bManager.ViewJournal(r.Context())
	if errors.Is(err, os.ErrNotExist) {
		http.Error(w, "no booking has been journaled yet", http.StatusNotFound)

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not read journal: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := w.Write([]byte(text)); err != nil {
		s.l.LogErrorf("Could not write journal response: %v", err.Error())
	}
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	handle := func(pattern, route string, h http.Handler) {
		r.Handle(
			pattern,
			s.applyMiddlewares(h, s.metricsMiddleware(route), s.loggerMiddleware(), s.recoverMiddleware()),
		)
	}

	handle("POST /api/bookings/v1", "bookings", http.HandlerFunc(s.createBookingHandler))
	handle("POST /api/bookings/v1/{id}/cancel", "cancel", http.HandlerFunc(s.cancelBookingHandler))
	handle("GET /api/rooms/v1", "rooms", http.HandlerFunc(s.roomsHandler))
	handle("GET /api/revenue/v1", "revenue", http.HandlerFunc(s.revenueHandler))
	handle("GET /api/journal/v1", "journal", http.HandlerFunc(s.journalHandler))
	handle(fmt.Sprintf("GET %s", s.conf.LivenessEndpoint), "liveness", http.HandlerFunc(s.livenessHandler))
	r.Handle("GET /metrics", promhttp.Handler())
}
