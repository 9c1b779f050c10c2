package services

import (
	"errors"
	"testing"

	"sangamstay/models"
)

func newPaymentEnv(t *testing.T) (*bookingEnv, *PaymentService) {
	t.Helper()
	env := newBookingEnv(t, 20, 1000)
	return env, NewPaymentService(env.bookings)
}

func TestConfirmCOD(t *testing.T) {
	env, payments := newPaymentEnv(t)

	booking, err := env.bookings.Create(env.input(5, 10))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	payment, err := payments.ConfirmCOD(booking.ID, env.actor)
	if err != nil {
		t.Fatalf("ConfirmCOD: %v", err)
	}
	if payment.PaymentMethod != models.PaymentMethodCOD {
		t.Errorf("method = %q, want COD", payment.PaymentMethod)
	}
	if payment.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("status = %q, want pending until the desk collects", payment.PaymentStatus)
	}
	if payment.Amount != booking.TotalAmount {
		t.Errorf("amount = %v, want booking total %v", payment.Amount, booking.TotalAmount)
	}

	confirmed, err := env.bookings.Details(booking.ID)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if confirmed.Status != models.StatusConfirmed {
		t.Errorf("booking status = %q, want confirmed", confirmed.Status)
	}
	// Confirmation never touches the counter; the debit was taken at create.
	if got := availableRooms(t, env.db, env.hotel.ID); got != 15 {
		t.Errorf("available = %d, want 15", got)
	}
}

func TestConfirmOnline(t *testing.T) {
	env, payments := newPaymentEnv(t)

	booking, err := env.bookings.Create(env.input(2, 4))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	payment, err := payments.ConfirmOnline(booking.ID, env.actor, "pay_123", "order_456")
	if err != nil {
		t.Fatalf("ConfirmOnline: %v", err)
	}
	if payment.PaymentStatus != models.PaymentStatusCompleted {
		t.Errorf("status = %q, want completed", payment.PaymentStatus)
	}
	if payment.TransactionID != "pay_123" || payment.OrderID != "order_456" {
		t.Errorf("gateway ids = %q/%q, want pay_123/order_456", payment.TransactionID, payment.OrderID)
	}
}

func TestConfirmOnNonPendingBooking(t *testing.T) {
	env, payments := newPaymentEnv(t)

	booking, err := env.bookings.Create(env.input(2, 4))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := payments.ConfirmCOD(booking.ID, env.actor); err != nil {
		t.Fatalf("first confirm: %v", err)
	}

	// A second confirmation is not a legal transition and must not record a
	// second payment.
	if _, err := payments.ConfirmCOD(booking.ID, env.actor); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second confirm: error = %v, want ErrInvalidTransition", err)
	}
	list, err := payments.ByBooking(booking.ID)
	if err != nil {
		t.Fatalf("ByBooking: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("payments = %d, want 1", len(list))
	}
}

func TestConfirmOnCancelledBooking(t *testing.T) {
	env, payments := newPaymentEnv(t)

	booking, err := env.bookings.Create(env.input(5, 10))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := env.bookings.Transition(booking.ID, models.StatusCancelled, env.actor); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// A payment call must not double as reactivation: no status change, no
	// payment row, no inventory debit.
	if _, err := payments.ConfirmCOD(booking.ID, env.actor); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("confirm cancelled: error = %v, want ErrInvalidTransition", err)
	}
	got, err := env.bookings.Details(booking.ID)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if got.Status != models.StatusCancelled {
		t.Errorf("status = %q, want still cancelled", got.Status)
	}
	list, err := payments.ByBooking(booking.ID)
	if err != nil {
		t.Fatalf("ByBooking: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("payments = %d, want 0", len(list))
	}
	if avail := availableRooms(t, env.db, env.hotel.ID); avail != 20 {
		t.Errorf("available = %d, want untouched 20", avail)
	}
}

func TestConfirmForbiddenForStranger(t *testing.T) {
	env, payments := newPaymentEnv(t)
	other := seedUser(t, env.db, models.RoleUser)

	booking, err := env.bookings.Create(env.input(2, 4))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := payments.ConfirmCOD(booking.ID, Actor{ID: other.ID, Role: other.Role}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
}

func TestConfirmMissingBooking(t *testing.T) {
	_, payments := newPaymentEnv(t)
	if _, err := payments.ConfirmCOD(999, Actor{ID: 1, Role: models.RoleUser}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
