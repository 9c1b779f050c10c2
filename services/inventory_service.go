// services/inventory_service.go
package services

import (
	"errors"
	"fmt"

	"sangamstay/models"

	"gorm.io/gorm"
)

// InventoryService is the only writer of hotels.available_rooms. Each
// primitive is a single conditional UPDATE evaluated by the storage engine,
// so concurrent requests against the same hotel serialize on the row without
// any application-level locking. Status-dependent branching (when to reserve,
// when to release) is the caller's job; this service is a pure counter.
type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

// Reserve debits count rooms from the hotel. The guard available_rooms >= count
// is part of the UPDATE itself; when it does not hold, no row is touched and
// ErrInsufficientInventory is returned. Callers inside a transaction pass tx
// so the debit rolls back with everything else.
func (s *InventoryService) Reserve(db *gorm.DB, hotelID uint, count int) error {
	if count <= 0 {
		return ErrInvalidAmount
	}

	res := db.Model(&models.Hotel{}).
		Where("id = ? AND available_rooms >= ?", hotelID, count).
		UpdateColumn("available_rooms", gorm.Expr("available_rooms - ?", count))
	if res.Error != nil {
		return fmt.Errorf("failed to reserve %d rooms for hotel %d: %w", count, hotelID, res.Error)
	}
	if res.RowsAffected == 0 {
		// Guard failed: either the hotel is gone or the stock is short.
		if err := s.ensureHotelExists(db, hotelID); err != nil {
			return err
		}
		return ErrInsufficientInventory
	}
	return nil
}

// Release credits count rooms back, capped at the hotel's capacity. Release
// cannot detect a double-release on its own; the booking status machine must
// make sure each reservation is released at most once.
func (s *InventoryService) Release(db *gorm.DB, hotelID uint, count int) error {
	if count <= 0 {
		return ErrInvalidAmount
	}

	// CASE instead of LEAST: portable across MySQL and the SQLite build the
	// tests run on.
	res := db.Model(&models.Hotel{}).
		Where("id = ?", hotelID).
		UpdateColumn("available_rooms", gorm.Expr(
			"CASE WHEN available_rooms + ? > total_rooms THEN total_rooms ELSE available_rooms + ? END",
			count, count))
	if res.Error != nil {
		return fmt.Errorf("failed to release %d rooms for hotel %d: %w", count, hotelID, res.Error)
	}
	if res.RowsAffected == 0 {
		// MySQL reports zero affected rows when the clamp made the update a
		// no-op (counter already at capacity), so only a missing hotel is an
		// error here.
		return s.ensureHotelExists(db, hotelID)
	}
	return nil
}

// Adjust applies the delta of an in-place room-count edit: shrinking the
// booking credits the difference back (clamped at capacity), growing it
// debits the difference through the same guard as Reserve, so an edit can
// never take more rooms than the hotel has.
func (s *InventoryService) Adjust(db *gorm.DB, hotelID uint, oldCount, newCount int) error {
	if oldCount < 0 || newCount < 0 {
		return ErrInvalidAmount
	}
	switch {
	case newCount < oldCount:
		return s.Release(db, hotelID, oldCount-newCount)
	case newCount > oldCount:
		return s.Reserve(db, hotelID, newCount-oldCount)
	default:
		return nil
	}
}

func (s *InventoryService) ensureHotelExists(db *gorm.DB, hotelID uint) error {
	var hotel models.Hotel
	if err := db.Select("id").First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to check hotel %d: %w", hotelID, err)
	}
	return nil
}
