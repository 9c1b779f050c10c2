package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultTotalRooms is applied when a hotel is created without an explicit capacity.
const DefaultTotalRooms = 20

// Hotel is the bookable property. AvailableRooms is the live counter; every
// mutation of it must go through services.InventoryService (or the clamped
// admin set in services.HotelService) so that 0 <= available <= total holds
// at all times.
type Hotel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string  `gorm:"size:255" json:"name"`
	Location    string  `gorm:"size:255" json:"location"`
	Pincode     string  `gorm:"size:6" json:"pincode"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`

	TotalRooms     int `gorm:"column:total_rooms" json:"totalRooms"`
	AvailableRooms int `gorm:"column:available_rooms" json:"availableRooms"`

	Facilities datatypes.JSON `gorm:"column:facilities" json:"facilities,omitempty"`

	AuthorID *uint `gorm:"index;column:author_id" json:"authorId,omitempty"`

	Rooms    []Room    `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	Bookings []Booking `gorm:"foreignKey:HotelID" json:"-"`
}
