package models

import (
	"gorm.io/gorm"
)

// Room is a room-type entry under a hotel. It only supplies a nightly price
// and a capacity label; availability itself lives on the hotel counter.
type Room struct {
	gorm.Model

	HotelID       uint    `gorm:"index;column:hotel_id" json:"hotelId"`
	RoomType      string  `gorm:"column:room_type;size:100" json:"roomType"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}
