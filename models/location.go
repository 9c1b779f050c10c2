package models

import (
	"time"

	"gorm.io/datatypes"
)

// Location holds the nearby-places list shown on a hotel's detail page.
type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	HotelID         uint           `gorm:"index;column:hotel_id" json:"hotelId"`
	NearbyLocations datatypes.JSON `gorm:"column:nearby_locations" json:"nearbyLocations,omitempty"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}
