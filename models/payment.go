package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "online"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Payment records the settlement attached to a booking confirmation. COD
// payments stay pending until the desk collects them; online payments are
// recorded completed with the gateway ids.
type Payment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID    uint `gorm:"index;column:user_id" json:"userId"`
	BookingID uint `gorm:"index;column:booking_id" json:"bookingId"`

	Amount        float64 `json:"amount"`
	PaymentStatus string  `gorm:"column:payment_status;size:32" json:"paymentStatus"`
	PaymentMethod string  `gorm:"column:payment_method;size:32;default:COD" json:"paymentMethod"`
	TransactionID string  `gorm:"column:transaction_id;size:128" json:"transactionId,omitempty"`
	OrderID       string  `gorm:"column:order_id;size:128" json:"orderId,omitempty"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
}
