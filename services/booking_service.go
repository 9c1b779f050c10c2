// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sangamstay/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Actor is the authenticated principal a booking-affecting call runs as.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) isAdmin() bool { return a.Role == models.RoleAdmin }

// CreateBookingInput carries everything needed to create a booking. Dates are
// calendar dates; RoomID optionally points at a room type whose price then
// becomes the nightly rate.
type CreateBookingInput struct {
	HotelID uint
	UserID  uint
	RoomID  *uint

	CheckInDate  time.Time
	CheckOutDate time.Time
	CheckInTime  string
	CheckOutTime string

	NumberOfRooms  int
	NumberOfGuests int

	GuestName  string
	GuestEmail string
	GuestPhone string

	SpecialRequests string
}

// BookingService owns the booking status machine. Every inventory mutation it
// performs goes through InventoryService's three primitives, inside the same
// transaction as the booking row change.
type BookingService struct {
	DB        *gorm.DB
	Inventory *InventoryService
}

func NewBookingService(db *gorm.DB, inventory *InventoryService) *BookingService {
	return &BookingService{DB: db, Inventory: inventory}
}

// lockForUpdate adds SELECT ... FOR UPDATE where the dialect supports it.
// SQLite has no row locks; its writers serialize on the connection instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Create validates the request, reserves inventory and persists the booking
// as pending, all as one unit: if the insert fails after the reserve, the
// transaction rollback is the compensating release, so capacity never leaks.
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	nights, err := ComputeNights(input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if err := ValidateOccupancy(input.NumberOfGuests, input.NumberOfRooms); err != nil {
		return nil, err
	}
	if err := ValidateGuestDetails(input.GuestName, input.GuestEmail, input.GuestPhone); err != nil {
		return nil, err
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, input.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", input.HotelID, err)
	}

	var room *models.Room
	if input.RoomID != nil && *input.RoomID != 0 {
		var rm models.Room
		if err := s.DB.Where("id = ? AND hotel_id = ?", *input.RoomID, input.HotelID).First(&rm).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load room %d: %w", *input.RoomID, err)
		}
		room = &rm
	}

	rate := ResolveNightlyRate(room, &hotel)
	total, err := ComputeTotal(rate, input.NumberOfRooms, nights)
	if err != nil {
		return nil, err
	}

	checkInTime := strings.TrimSpace(input.CheckInTime)
	if checkInTime == "" {
		checkInTime = models.DefaultCheckInTime
	}
	checkOutTime := strings.TrimSpace(input.CheckOutTime)
	if checkOutTime == "" {
		checkOutTime = models.DefaultCheckOutTime
	}

	booking := models.Booking{
		UserID:          input.UserID,
		HotelID:         input.HotelID,
		RoomID:          input.RoomID,
		ReferenceCode:   uuid.NewString(),
		Status:          models.StatusPending,
		CheckInDate:     input.CheckInDate,
		CheckOutDate:    input.CheckOutDate,
		CheckInTime:     checkInTime,
		CheckOutTime:    checkOutTime,
		NumberOfNights:  nights,
		NumberOfRooms:   input.NumberOfRooms,
		NumberOfGuests:  input.NumberOfGuests,
		GuestName:       strings.TrimSpace(input.GuestName),
		GuestEmail:      strings.TrimSpace(input.GuestEmail),
		GuestPhone:      strings.TrimSpace(input.GuestPhone),
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		NightlyRate:     rate,
		TotalAmount:     total,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Inventory.Reserve(tx, input.HotelID, input.NumberOfRooms); err != nil {
			return err
		}
		// Re-check the occupancy policy on the record about to persist.
		if err := ValidateOccupancy(booking.NumberOfGuests, booking.NumberOfRooms); err != nil {
			return err
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.Details(booking.ID)
}

// Transition moves a booking to targetStatus on behalf of actor, applying the
// matching inventory effect. The booking row is locked FOR UPDATE so the
// status check and the counter change are atomic per booking.
//
//	pending   --confirmed--> confirmed   (payment hook, no inventory change)
//	pending   --cancelled--> cancelled   (release)
//	confirmed --cancelled--> cancelled   (release)
//	confirmed --completed--> completed   (release, checkout fields set)
//	cancelled --confirmed--> confirmed   (reactivation, re-reserve)
//	completed --confirmed--> confirmed   (reactivation, re-reserve)
//
// Everything else is ErrInvalidTransition; cancelling an already cancelled
// booking is ErrAlreadyCancelled and never double-credits inventory.
func (s *BookingService) Transition(bookingID uint, targetStatus string, actor Actor) (*models.Booking, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		if booking.UserID != actor.ID && !actor.isAdmin() {
			return ErrForbidden
		}

		updates := map[string]interface{}{"status": targetStatus}

		switch targetStatus {
		case models.StatusConfirmed:
			switch booking.Status {
			case models.StatusPending:
				// Payment confirmation. The debit already happened at create.
			case models.StatusCancelled, models.StatusCompleted:
				// Reactivation must re-check availability; the rooms may have
				// been reallocated since the release.
				if err := s.Inventory.Reserve(tx, booking.HotelID, booking.NumberOfRooms); err != nil {
					return err
				}
				updates["is_checked_out"] = false
				updates["actual_check_out_time"] = nil
			default:
				return ErrInvalidTransition
			}

		case models.StatusCancelled:
			switch booking.Status {
			case models.StatusCancelled:
				return ErrAlreadyCancelled
			case models.StatusPending, models.StatusConfirmed:
				if err := s.Inventory.Release(tx, booking.HotelID, booking.NumberOfRooms); err != nil {
					return err
				}
			default:
				return ErrInvalidTransition
			}

		case models.StatusCompleted:
			if booking.Status != models.StatusConfirmed {
				return ErrInvalidTransition
			}
			if err := s.Inventory.Release(tx, booking.HotelID, booking.NumberOfRooms); err != nil {
				return err
			}
			updates["is_checked_out"] = true
			updates["actual_check_out_time"] = time.Now().UTC()

		default:
			return ErrInvalidTransition
		}

		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update booking %d: %w", bookingID, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.Details(bookingID)
}

// UpdateRoomCount edits the room count of a confirmed booking in place. The
// inventory delta goes through Adjust and the total is recomputed from the
// nightly rate frozen at creation.
func (s *BookingService) UpdateRoomCount(bookingID uint, newRoomCount, newGuestCount int) (*models.Booking, error) {
	if err := ValidateOccupancy(newGuestCount, newRoomCount); err != nil {
		return nil, err
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		if booking.Status != models.StatusConfirmed {
			return ErrInvalidTransition
		}

		if err := s.Inventory.Adjust(tx, booking.HotelID, booking.NumberOfRooms, newRoomCount); err != nil {
			return err
		}

		total, err := ComputeTotal(booking.NightlyRate, newRoomCount, booking.NumberOfNights)
		if err != nil {
			return err
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"number_of_rooms":  newRoomCount,
			"number_of_guests": newGuestCount,
			"total_amount":     total,
		}).Error; err != nil {
			return fmt.Errorf("failed to update booking %d: %w", bookingID, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.Details(bookingID)
}

// Details loads a booking with its hotel and room.
func (s *BookingService) Details(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Hotel").Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &booking, nil
}

// ByUser lists a user's bookings, newest first.
func (s *BookingService) ByUser(userID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Hotel").
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// All lists every booking with relations, for the admin view.
func (s *BookingService) All() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("User").
		Preload("Hotel").
		Preload("Room").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

// ClearAll deletes every booking. Administrative bulk-clear; no inventory
// compensation is attempted.
func (s *BookingService) ClearAll() error {
	if err := s.DB.Where("1 = 1").Delete(&models.Booking{}).Error; err != nil {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}
	return nil
}

// ClearByUser deletes all bookings owned by userID.
func (s *BookingService) ClearByUser(userID uint) error {
	if err := s.DB.Where("user_id = ?", userID).Delete(&models.Booking{}).Error; err != nil {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}
	return nil
}
