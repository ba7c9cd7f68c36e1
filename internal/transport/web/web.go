package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/avezov/hotelbook/internal/booking"
	"github.com/avezov/hotelbook/internal/hotel"
	"github.com/avezov/hotelbook/internal/logger"
)

type store interface {
	FilterRooms(ctx context.Context, filter hotel.RoomFilter) ([]*hotel.Room, error)
	RevenueReport(ctx context.Context) (map[string]float64, error)
}

type Server struct {
	srv      *http.Server
	router   *http.ServeMux
	l        *logger.Logger
	conf     Conf
	bManager *booking.Manager
	store    store
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

func New(ctx context.Context, conf Conf, bookingManager *booking.Manager, store store) (*Server, error) {
	mux := http.NewServeMux()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout * time.Second, //nolint:durationcheck
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:      srv,
		router:   mux,
		l:        conf.L,
		conf:     conf,
		bManager: bookingManager,
		store:    store,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
