package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNextID         = errors.New("get next id from generator")
	ErrRecordNotFound = errors.New("record not found")
)

// AvailabilityError is the recoverable "no booking" outcome: the requested
// room has at least one already-booked date inside the requested range.
type AvailabilityError struct {
	roomID int
	dates  []time.Time
}

func NewAvailabilityError(roomID int, dates []time.Time) *AvailabilityError {
	return &AvailabilityError{roomID: roomID, dates: dates}
}

func IsAvailabilityError(err error) *AvailabilityError {
	if err == nil {
		return nil
	}

	var availabilityError *AvailabilityError

	if errors.As(err, &availabilityError) {
		return availabilityError
	}

	return nil
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("room %v is not available for the selected dates %+v", e.roomID, e.dates)
}

func (e *AvailabilityError) RoomID() int {
	return e.roomID
}

func (e *AvailabilityError) Dates() []time.Time {
	return e.dates
}

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}
