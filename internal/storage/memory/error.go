package memory

import "errors"

var ErrHotelNotCreated = errors.New("hotel not created")
