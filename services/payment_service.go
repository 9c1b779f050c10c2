// services/payment_service.go
package services

import (
	"errors"
	"fmt"

	"sangamstay/models"

	"gorm.io/gorm"
)

// PaymentService is the glue between a completed payment method and the
// booking status machine. It records the Payment row and drives the
// pending -> confirmed transition; it makes no assumption about how the
// payment's authenticity was established (that is the controller's problem).
type PaymentService struct {
	Bookings *BookingService
}

func NewPaymentService(bookings *BookingService) *PaymentService {
	return &PaymentService{Bookings: bookings}
}

// ConfirmCOD confirms a pending booking as cash-on-delivery: the payment is
// recorded pending (settled at the desk during check-in) and the booking
// moves to confirmed. No inventory change happens here; the debit was taken
// at creation time.
func (s *PaymentService) ConfirmCOD(bookingID uint, actor Actor) (*models.Payment, error) {
	return s.confirm(bookingID, actor, models.Payment{
		PaymentMethod: models.PaymentMethodCOD,
		PaymentStatus: models.PaymentStatusPending,
	})
}

// ConfirmOnline confirms a pending booking after an online gateway reported
// success, keeping the gateway's transaction and order ids on the record.
func (s *PaymentService) ConfirmOnline(bookingID uint, actor Actor, transactionID, orderID string) (*models.Payment, error) {
	return s.confirm(bookingID, actor, models.Payment{
		PaymentMethod: models.PaymentMethodOnline,
		PaymentStatus: models.PaymentStatusCompleted,
		TransactionID: transactionID,
		OrderID:       orderID,
	})
}

// confirm moves a pending booking to confirmed and records the payment row
// in the same transaction. Only pending bookings can be confirmed by a
// payment; bringing a cancelled or completed booking back is the separate
// admin reactivation, never something a payment call may trigger.
func (s *PaymentService) confirm(bookingID uint, actor Actor, payment models.Payment) (*models.Payment, error) {
	txErr := s.Bookings.DB.Transaction(func(tx *gorm.DB) error {
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
		if booking.Status != models.StatusPending {
			return ErrInvalidTransition
		}

		if err := tx.Model(&booking).Update("status", models.StatusConfirmed).Error; err != nil {
			return fmt.Errorf("failed to confirm booking %d: %w", bookingID, err)
		}

		payment.UserID = actor.ID
		payment.BookingID = booking.ID
		payment.Amount = booking.TotalAmount
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment for booking %d: %w", bookingID, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &payment, nil
}

// ByBooking returns the payments recorded against a booking.
func (s *PaymentService) ByBooking(bookingID uint) ([]models.Payment, error) {
	var list []models.Payment
	if err := s.Bookings.DB.Where("booking_id = ?", bookingID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	return list, nil
}
