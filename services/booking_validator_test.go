package services

import (
	"errors"
	"testing"
	"time"

	"sangamstay/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
		wantErr  error
	}{
		{"two nights", date(2026, 3, 10), date(2026, 3, 12), 2, nil},
		{"one night", date(2026, 3, 10), date(2026, 3, 11), 1, nil},
		{"partial day rounds up", date(2026, 3, 10), date(2026, 3, 11).Add(6 * time.Hour), 2, nil},
		{"same day", date(2026, 3, 10), date(2026, 3, 10), 0, ErrInvalidDateRange},
		{"checkout before checkin", date(2026, 3, 12), date(2026, 3, 10), 0, ErrInvalidDateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNights(tt.checkIn, tt.checkOut)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ComputeNights() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("ComputeNights() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeTotal(t *testing.T) {
	got, err := ComputeTotal(1000, 5, 2)
	if err != nil {
		t.Fatalf("ComputeTotal() error = %v", err)
	}
	if got != 10000 {
		t.Fatalf("ComputeTotal() = %v, want 10000", got)
	}

	if _, err := ComputeTotal(-1, 5, 2); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative rate: error = %v, want ErrInvalidAmount", err)
	}
	if _, err := ComputeTotal(1000, -5, 2); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative rooms: error = %v, want ErrInvalidAmount", err)
	}
	if _, err := ComputeTotal(1000, 5, -2); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative nights: error = %v, want ErrInvalidAmount", err)
	}
}

func TestValidateOccupancy(t *testing.T) {
	tests := []struct {
		name    string
		guests  int
		rooms   int
		wantErr error
	}{
		{"exactly at cap", 10, 5, nil},
		{"under cap", 3, 2, nil},
		{"over cap", 11, 5, ErrOccupancyExceeded},
		{"zero guests", 0, 1, ErrOccupancyExceeded},
		{"zero rooms", 1, 0, ErrOccupancyExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateOccupancy(tt.guests, tt.rooms); !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateOccupancy(%d, %d) = %v, want %v", tt.guests, tt.rooms, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGuestDetails(t *testing.T) {
	if err := ValidateGuestDetails("A Guest", "guest@example.com", "9876543210"); err != nil {
		t.Fatalf("valid details: %v", err)
	}
	for _, tt := range []struct {
		name                string
		gname, email, phone string
	}{
		{"missing name", "", "guest@example.com", "9876543210"},
		{"missing email", "A Guest", "", "9876543210"},
		{"missing phone", "A Guest", "guest@example.com", ""},
		{"whitespace only", "   ", "guest@example.com", "9876543210"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateGuestDetails(tt.gname, tt.email, tt.phone); !errors.Is(err, ErrMissingGuestField) {
				t.Fatalf("error = %v, want ErrMissingGuestField", err)
			}
		})
	}
}

func TestResolveNightlyRate(t *testing.T) {
	hotel := &models.Hotel{Price: 5000}
	room := &models.Room{PricePerNight: 7500}

	if got := ResolveNightlyRate(room, hotel); got != 7500 {
		t.Fatalf("with room: got %v, want 7500", got)
	}
	if got := ResolveNightlyRate(nil, hotel); got != 5000 {
		t.Fatalf("without room: got %v, want 5000", got)
	}
	// A room with no price falls back to the hotel base price.
	if got := ResolveNightlyRate(&models.Room{}, hotel); got != 5000 {
		t.Fatalf("zero-price room: got %v, want 5000", got)
	}
}
