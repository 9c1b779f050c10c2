// controllers/booking_controller.go
package controllers

import (
	"net/http"
	"time"

	"sangamstay/models"
	"sangamstay/services"
	"sangamstay/utils"

	"github.com/gin-gonic/gin"
)

// GuestDetailsPayload is the contact block required on every booking.
type GuestDetailsPayload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type CreateBookingPayload struct {
	HotelID uint  `json:"hotel_id" binding:"required"`
	RoomID  *uint `json:"room_id"`

	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`

	NumberOfRooms  int `json:"number_of_rooms" binding:"required"`
	NumberOfGuests int `json:"number_of_guests" binding:"required"`

	GuestDetails    GuestDetailsPayload `json:"guest_details" binding:"required"`
	SpecialRequests string              `json:"special_requests"`
}

type UpdateRoomCountPayload struct {
	NumberOfRooms  int `json:"number_of_rooms" binding:"required"`
	NumberOfGuests int `json:"number_of_guests" binding:"required"`
}

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CreateBooking reserves rooms and persists a pending booking.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	checkIn, ok := parseDate(payload.CheckInDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in_date format, want YYYY-MM-DD")
		return
	}
	checkOut, ok := parseDate(payload.CheckOutDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out_date format, want YYYY-MM-DD")
		return
	}

	act := actor(c)
	booking, err := ctrl.Bookings.Create(services.CreateBookingInput{
		HotelID:         payload.HotelID,
		UserID:          act.ID,
		RoomID:          payload.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		CheckInTime:     payload.CheckInTime,
		CheckOutTime:    payload.CheckOutTime,
		NumberOfRooms:   payload.NumberOfRooms,
		NumberOfGuests:  payload.NumberOfGuests,
		GuestName:       payload.GuestDetails.Name,
		GuestEmail:      payload.GuestDetails.Email,
		GuestPhone:      payload.GuestDetails.Phone,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings lists the caller's own bookings.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	act := actor(c)
	list, err := ctrl.Bookings.ByUser(act.ID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetBookingDetails returns one booking; owners and admins only.
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.Bookings.Details(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	act := actor(c)
	if booking.UserID != act.ID && act.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, services.ErrForbidden.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking moves a booking to cancelled and releases its rooms.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	ctrl.transition(c, models.StatusCancelled)
}

// CheckoutBooking completes a confirmed booking (admin desk operation).
func (ctrl *BookingController) CheckoutBooking(c *gin.Context) {
	ctrl.transition(c, models.StatusCompleted)
}

// ReactivateBooking moves a cancelled or completed booking back to confirmed,
// re-reserving its rooms.
func (ctrl *BookingController) ReactivateBooking(c *gin.Context) {
	ctrl.transition(c, models.StatusConfirmed)
}

func (ctrl *BookingController) transition(c *gin.Context, target string) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.Bookings.Transition(id, target, actor(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateRoomCount edits the room/guest counts of a confirmed booking.
func (ctrl *BookingController) UpdateRoomCount(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload UpdateRoomCountPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	booking, err := ctrl.Bookings.Details(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	act := actor(c)
	if booking.UserID != act.ID && act.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, services.ErrForbidden.Error())
		return
	}

	updated, err := ctrl.Bookings.UpdateRoomCount(id, payload.NumberOfRooms, payload.NumberOfGuests)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// ClearBookings deletes every booking (admin bulk-clear).
func (ctrl *BookingController) ClearBookings(c *gin.Context) {
	if err := ctrl.Bookings.ClearAll(); err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cleared": true})
}

// ClearMyBookings deletes the caller's bookings.
func (ctrl *BookingController) ClearMyBookings(c *gin.Context) {
	act := actor(c)
	if err := ctrl.Bookings.ClearByUser(act.ID); err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cleared": true})
}
