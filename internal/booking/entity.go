package booking

import "time"

type BookInput struct {
	CustomerName string    `json:"customer_name"`
	VIP          bool      `json:"vip"`
	RoomID       int       `json:"room_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

type Refund struct {
	BookingID int     `json:"booking_id"`
	Percent   float64 `json:"percent"`
	Amount    float64 `json:"amount"`
}
