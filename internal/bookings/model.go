package bookings

import "time"

// Booking reserves a station slot for one of the user's cars on a date.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StationID string    `json:"station_id"`
	CarID     string    `json:"car_id"`
	Date      time.Time `json:"date"`
	Slot      string    `json:"slot"`
	CreatedAt time.Time `json:"created_at"`
}

// Availability is one bookable station slot.
type Availability struct {
	StationID string `json:"station_id"`
	Station   string `json:"station"`
	City      string `json:"city"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
}

type createBookingRequest struct {
	StationID string `json:"station_id"`
	CarID     string `json:"car_id"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
}
