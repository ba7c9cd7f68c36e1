// Package booklog keeps the append-only text journal of bookings. Every
// successful booking writes exactly one line; the file is opened, appended
// and closed per call so no handle outlives a booking.
package booklog

import (
	"fmt"
	"os"
	"time"
)

const (
	timestampLayout = "2006-01-02 15:04:05.000000"
	dateLayout      = "2006-01-02"
)

type Entry struct {
	Time         time.Time
	CustomerName string
	RoomID       int
	StartDate    time.Time
	EndDate      time.Time
	TotalPrice   float64
}

func (e Entry) line() string {
	return fmt.Sprintf(
		"%s: %s booked Room %d from %s to %s, Total: %v\n",
		e.Time.Format(timestampLayout),
		e.CustomerName,
		e.RoomID,
		e.StartDate.Format(dateLayout),
		e.EndDate.Format(dateLayout),
		e.TotalPrice,
	)
}

type Journal struct {
	path string
}

func New(path string) *Journal {
	return &Journal{path: path}
}

func (j *Journal) Append(entry Entry) error {
	//nolint:gomnd
	file, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal %v: %w", j.path, err)
	}

	defer file.Close()

	if _, err := file.WriteString(entry.line()); err != nil {
		return fmt.Errorf("append to journal %v: %w", j.path, err)
	}

	return nil
}

// View returns the whole journal as raw text. It fails with the underlying
// os error when no booking has ever been journaled.
func (j *Journal) View() (string, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return "", fmt.Errorf("read journal %v: %w", j.path, err)
	}

	return string(data), nil
}
