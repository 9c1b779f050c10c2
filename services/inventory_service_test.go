package services

import (
	"errors"
	"testing"
)

func TestReserve(t *testing.T) {
	db := newTestDB(t)
	inv := NewInventoryService(db)
	hotel := seedHotel(t, db, 20, 1000)

	if err := inv.Reserve(db, hotel.ID, 5); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if got := availableRooms(t, db, hotel.ID); got != 15 {
		t.Fatalf("available = %d, want 15", got)
	}

	// More than remaining stock must fail and leave the counter alone.
	if err := inv.Reserve(db, hotel.ID, 16); !errors.Is(err, ErrInsufficientInventory) {
		t.Fatalf("Reserve over stock: error = %v, want ErrInsufficientInventory", err)
	}
	if got := availableRooms(t, db, hotel.ID); got != 15 {
		t.Fatalf("available after failed reserve = %d, want 15", got)
	}

	// Draining exactly to zero is allowed; the next reserve fails.
	if err := inv.Reserve(db, hotel.ID, 15); err != nil {
		t.Fatalf("Reserve to zero: %v", err)
	}
	if err := inv.Reserve(db, hotel.ID, 1); !errors.Is(err, ErrInsufficientInventory) {
		t.Fatalf("Reserve at zero: error = %v, want ErrInsufficientInventory", err)
	}
	if got := availableRooms(t, db, hotel.ID); got != 0 {
		t.Fatalf("available = %d, want 0", got)
	}
}

func TestReserveValidation(t *testing.T) {
	db := newTestDB(t)
	inv := NewInventoryService(db)
	hotel := seedHotel(t, db, 20, 1000)

	if err := inv.Reserve(db, hotel.ID, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero count: error = %v, want ErrInvalidAmount", err)
	}
	if err := inv.Reserve(db, hotel.ID+99, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing hotel: error = %v, want ErrNotFound", err)
	}
}

func TestRelease(t *testing.T) {
	db := newTestDB(t)
	inv := NewInventoryService(db)
	hotel := seedHotel(t, db, 20, 1000)

	if err := inv.Reserve(db, hotel.ID, 8); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if err := inv.Release(db, hotel.ID, 8); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if got := availableRooms(t, db, hotel.ID); got != 20 {
		t.Fatalf("available = %d, want 20", got)
	}

	// Releasing beyond capacity clamps at total_rooms.
	if err := inv.Release(db, hotel.ID, 5); err != nil {
		t.Fatalf("Release at capacity: %v", err)
	}
	if got := availableRooms(t, db, hotel.ID); got != 20 {
		t.Fatalf("available after over-release = %d, want 20", got)
	}

	if err := inv.Release(db, hotel.ID+99, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing hotel: error = %v, want ErrNotFound", err)
	}
}

func TestAdjust(t *testing.T) {
	db := newTestDB(t)
	inv := NewInventoryService(db)
	hotel := seedHotel(t, db, 20, 1000)

	if err := inv.Reserve(db, hotel.ID, 5); err != nil {
		t.Fatalf("Reserve: %v", err)
	}

	// Growing a booking from 5 to 8 rooms debits 3 more.
	if err := inv.Adjust(db, hotel.ID, 5, 8); err != nil {
		t.Fatalf("Adjust up: %v", err)
	}
	if got := availableRooms(t, db, hotel.ID); got != 12 {
		t.Fatalf("available = %d, want 12", got)
	}

	// Shrinking from 8 to 2 credits 6 back.
	if err := inv.Adjust(db, hotel.ID, 8, 2); err != nil {
		t.Fatalf("Adjust down: %v", err)
	}
	if got := availableRooms(t, db, hotel.ID); got != 18 {
		t.Fatalf("available = %d, want 18", got)
	}

	// No-op delta.
	if err := inv.Adjust(db, hotel.ID, 4, 4); err != nil {
		t.Fatalf("Adjust no-op: %v", err)
	}
	if got := availableRooms(t, db, hotel.ID); got != 18 {
		t.Fatalf("available = %d, want 18", got)
	}

	// Growing past the available stock hits the reserve guard and leaves the
	// counter untouched.
	if err := inv.Adjust(db, hotel.ID, 2, 100); !errors.Is(err, ErrInsufficientInventory) {
		t.Fatalf("Adjust over stock: error = %v, want ErrInsufficientInventory", err)
	}
	if got := availableRooms(t, db, hotel.ID); got != 18 {
		t.Fatalf("available = %d, want 18", got)
	}

	// An oversized credit clamps at capacity.
	if err := inv.Adjust(db, hotel.ID, 100, 0); err != nil {
		t.Fatalf("Adjust clamp high: %v", err)
	}
	if got := availableRooms(t, db, hotel.ID); got != 20 {
		t.Fatalf("available = %d, want 20", got)
	}
}
