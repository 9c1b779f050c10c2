// services/hotel_service.go
package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"sangamstay/models"

	"gorm.io/gorm"
)

var pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)

// CreateHotelInput is the admin-facing hotel form.
type CreateHotelInput struct {
	Name        string
	Location    string
	Pincode     string
	Description string
	Price       float64
	TotalRooms  int
	Facilities  []byte
	AuthorID    *uint
}

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// Create adds a hotel. Capacity is fixed at creation (default 20) and the
// counter starts full.
func (s *HotelService) Create(input CreateHotelInput) (*models.Hotel, error) {
	name := strings.TrimSpace(input.Name)
	location := strings.TrimSpace(input.Location)
	if name == "" || location == "" {
		return nil, ErrInvalidInput
	}
	if !pincodeRe.MatchString(strings.TrimSpace(input.Pincode)) {
		return nil, ErrInvalidInput
	}
	if input.Price < 0 {
		return nil, ErrInvalidAmount
	}

	total := input.TotalRooms
	if total <= 0 {
		total = models.DefaultTotalRooms
	}

	hotel := models.Hotel{
		Name:           name,
		Location:       location,
		Pincode:        strings.TrimSpace(input.Pincode),
		Description:    strings.TrimSpace(input.Description),
		Price:          input.Price,
		TotalRooms:     total,
		AvailableRooms: total,
		Facilities:     input.Facilities,
		AuthorID:       input.AuthorID,
	}
	if err := s.DB.Create(&hotel).Error; err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return &hotel, nil
}

// Update edits the descriptive fields. Capacity and the availability counter
// are deliberately untouchable here.
func (s *HotelService) Update(hotelID uint, input CreateHotelInput) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
	}

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(input.Name); v != "" {
		updates["name"] = v
	}
	if v := strings.TrimSpace(input.Location); v != "" {
		updates["location"] = v
	}
	if v := strings.TrimSpace(input.Pincode); v != "" {
		if !pincodeRe.MatchString(v) {
			return nil, ErrInvalidInput
		}
		updates["pincode"] = v
	}
	if v := strings.TrimSpace(input.Description); v != "" {
		updates["description"] = v
	}
	if input.Price > 0 {
		updates["price"] = input.Price
	}
	if len(input.Facilities) > 0 {
		updates["facilities"] = input.Facilities
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&hotel).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update hotel %d: %w", hotelID, err)
		}
	}
	return s.ByID(hotelID)
}

// ByID loads one hotel with its room types.
func (s *HotelService) ByID(hotelID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.Preload("Rooms").First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve hotel: %w", err)
	}
	return &hotel, nil
}

// All lists hotels, optionally filtered by location substring.
func (s *HotelService) All(location string) ([]models.Hotel, error) {
	q := s.DB.Order("name ASC")
	if loc := strings.TrimSpace(location); loc != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(loc)+"%")
	}
	var list []models.Hotel
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	return list, nil
}

// Delete removes a hotel and its room types.
func (s *HotelService) Delete(hotelID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Room{}).Error; err != nil {
			return fmt.Errorf("failed to delete rooms for hotel %d: %w", hotelID, err)
		}
		res := tx.Delete(&models.Hotel{}, hotelID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete hotel %d: %w", hotelID, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SetAvailableRooms is the admin override from the dashboard. The value is
// clamped into [0, total_rooms] by the UPDATE itself, the same way the
// ledger primitives guard their writes.
func (s *HotelService) SetAvailableRooms(hotelID uint, available int) (*models.Hotel, error) {
	if available < 0 {
		return nil, ErrInvalidAmount
	}
	res := s.DB.Model(&models.Hotel{}).
		Where("id = ?", hotelID).
		UpdateColumn("available_rooms", gorm.Expr(
			"CASE WHEN ? > total_rooms THEN total_rooms ELSE ? END", available, available))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to set availability for hotel %d: %w", hotelID, res.Error)
	}
	return s.ByID(hotelID)
}

// Rooms lists the room types of a hotel.
func (s *HotelService) Rooms(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("hotel_id = ?", hotelID).Order("price_per_night ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

// AddRoom attaches a room type to a hotel.
func (s *HotelService) AddRoom(hotelID uint, roomType string, capacity int, pricePerNight float64) (*models.Room, error) {
	if strings.TrimSpace(roomType) == "" {
		return nil, ErrInvalidInput
	}
	if capacity <= 0 || pricePerNight < 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.ByID(hotelID); err != nil {
		return nil, err
	}

	room := models.Room{
		HotelID:       hotelID,
		RoomType:      strings.TrimSpace(roomType),
		Capacity:      capacity,
		PricePerNight: pricePerNight,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

// NearbyLocations returns the location entry for a hotel, if any.
func (s *HotelService) NearbyLocations(hotelID uint) (*models.Location, error) {
	var loc models.Location
	if err := s.DB.Where("hotel_id = ?", hotelID).First(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve locations: %w", err)
	}
	return &loc, nil
}
