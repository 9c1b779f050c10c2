// controllers/admin_controller.go
package controllers

import (
	"net/http"

	"sangamstay/services"
	"sangamstay/utils"

	"github.com/gin-gonic/gin"
)

type SetAvailabilityPayload struct {
	AvailableRooms *int `json:"available_rooms" binding:"required"`
}

// AdminController serves the dashboard views: all bookings, all users and the
// manual room-availability override.
type AdminController struct {
	Bookings *services.BookingService
	Users    *services.UserService
	Hotels   *services.HotelService
}

func NewAdminController(bookings *services.BookingService, users *services.UserService, hotels *services.HotelService) *AdminController {
	return &AdminController{Bookings: bookings, Users: users, Hotels: hotels}
}

// GetAllBookings lists every booking with user/hotel/room relations.
func (ctrl *AdminController) GetAllBookings(c *gin.Context) {
	list, err := ctrl.Bookings.All()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetAllUsers lists user accounts.
func (ctrl *AdminController) GetAllUsers(c *gin.Context) {
	list, err := ctrl.Users.All()
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// SetHotelAvailability overrides a hotel's available-room counter, clamped to
// its capacity.
func (ctrl *AdminController) SetHotelAvailability(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload SetAvailabilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	hotel, err := ctrl.Hotels.SetAvailableRooms(id, *payload.AvailableRooms)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}
