package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. A booking is created pending, becomes confirmed once a
// payment method acknowledges it, and ends up cancelled or completed. Each
// transition has a matching inventory effect applied by services.BookingService.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Default times of day for check-in and check-out.
const (
	DefaultCheckInTime  = "14:00"
	DefaultCheckOutTime = "11:00"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID  uint  `gorm:"index;column:user_id" json:"userId"`
	HotelID uint  `gorm:"index;column:hotel_id" json:"hotelId"`
	RoomID  *uint `gorm:"index;column:room_id" json:"roomId,omitempty"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	Status        string `gorm:"column:status;size:32;index" json:"status"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`
	CheckInTime  string    `gorm:"column:check_in_time;size:8" json:"checkInTime"`
	CheckOutTime string    `gorm:"column:check_out_time;size:8" json:"checkOutTime"`

	NumberOfNights int `gorm:"column:number_of_nights" json:"numberOfNights"`
	NumberOfRooms  int `gorm:"column:number_of_rooms" json:"numberOfRooms"`
	NumberOfGuests int `gorm:"column:number_of_guests" json:"numberOfGuests"`

	GuestName  string `gorm:"column:guest_name;size:150" json:"guestName"`
	GuestEmail string `gorm:"column:guest_email;size:150" json:"guestEmail"`
	GuestPhone string `gorm:"column:guest_phone;size:20" json:"guestPhone"`

	SpecialRequests string `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`

	// NightlyRate is resolved once at creation (room-type price when the
	// booking references a room, hotel base price otherwise) and never
	// recomputed afterwards.
	NightlyRate float64 `gorm:"column:nightly_rate" json:"nightlyRate"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`

	IsCheckedOut       bool       `gorm:"column:is_checked_out;default:false" json:"isCheckedOut"`
	ActualCheckOutTime *time.Time `gorm:"column:actual_check_out_time" json:"actualCheckOutTime,omitempty"`

	User  User  `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
	Room  *Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// Active reports whether the booking currently holds reserved inventory.
func (b *Booking) Active() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
