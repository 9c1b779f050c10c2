package services

import (
	"fmt"
	"testing"

	"sangamstay/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database. The pool is pinned to a
// single connection so every query sees the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Location{},
		&models.Booking{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedHotel(t *testing.T, db *gorm.DB, totalRooms int, price float64) *models.Hotel {
	t.Helper()
	hotel := models.Hotel{
		Name:           "Test Hotel",
		Location:       "Mumbai, Maharashtra",
		Pincode:        "400001",
		Price:          price,
		TotalRooms:     totalRooms,
		AvailableRooms: totalRooms,
	}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	return &hotel
}

func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	tag := fmt.Sprintf("tester%d", count+1)
	user := models.User{
		Username: tag,
		Email:    tag + "@example.com",
		Phone:    "9876543210",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func availableRooms(t *testing.T, db *gorm.DB, hotelID uint) int {
	t.Helper()
	var hotel models.Hotel
	if err := db.First(&hotel, hotelID).Error; err != nil {
		t.Fatalf("load hotel: %v", err)
	}
	return hotel.AvailableRooms
}
