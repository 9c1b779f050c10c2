// services/booking_validator.go
package services

import (
	"math"
	"strings"
	"time"

	"sangamstay/models"
)

// MaxGuestsPerRoom is the occupancy policy: at most 2 guests per reserved room.
const MaxGuestsPerRoom = 2

// ComputeNights returns the number of nights between check-in and check-out,
// the ceil of the day difference. checkOut must be strictly after checkIn,
// which also makes the result at least 1.
func ComputeNights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidDateRange
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24)), nil
}

// ComputeTotal returns nightlyRate * rooms * nights. All inputs must be
// non-negative.
func ComputeTotal(nightlyRate float64, rooms, nights int) (float64, error) {
	if nightlyRate < 0 || rooms < 0 || nights < 0 {
		return 0, ErrInvalidAmount
	}
	return nightlyRate * float64(rooms) * float64(nights), nil
}

// ValidateOccupancy enforces the guests-per-room cap. Checked again before
// persisting so an intermediate mutation can't sneak past the initial check.
func ValidateOccupancy(guests, rooms int) error {
	if guests < 1 || rooms < 1 {
		return ErrOccupancyExceeded
	}
	if guests > rooms*MaxGuestsPerRoom {
		return ErrOccupancyExceeded
	}
	return nil
}

// ValidateGuestDetails requires name, email and phone to all be present.
func ValidateGuestDetails(name, email, phone string) error {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(phone) == "" {
		return ErrMissingGuestField
	}
	return nil
}

// ResolveNightlyRate picks the canonical price source for a booking: the
// room-type price when a room is referenced and carries a positive price,
// else the hotel base price. The result is frozen into the booking record.
func ResolveNightlyRate(room *models.Room, hotel *models.Hotel) float64 {
	if room != nil && room.PricePerNight > 0 {
		return room.PricePerNight
	}
	return hotel.Price
}
