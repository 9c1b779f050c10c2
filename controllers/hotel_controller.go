// controllers/hotel_controller.go
package controllers

import (
	"encoding/json"
	"net/http"

	"sangamstay/middleware"
	"sangamstay/services"
	"sangamstay/utils"

	"github.com/gin-gonic/gin"
)

type HotelPayload struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Pincode     string   `json:"pincode"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	TotalRooms  int      `json:"total_rooms"`
	Facilities  []string `json:"facilities"`
}

type RoomPayload struct {
	RoomType      string  `json:"room_type" binding:"required"`
	Capacity      int     `json:"capacity" binding:"required"`
	PricePerNight float64 `json:"price_per_night"`
}

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{Hotels: svc}
}

// GetHotels lists hotels, with an optional ?location= filter.
func (ctrl *HotelController) GetHotels(c *gin.Context) {
	list, err := ctrl.Hotels.All(c.Query("location"))
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetHotel returns one hotel with its room types and nearby locations.
func (ctrl *HotelController) GetHotel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	hotel, err := ctrl.Hotels.ByID(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	resp := gin.H{"hotel": hotel}
	if loc, err := ctrl.Hotels.NearbyLocations(id); err == nil {
		resp["nearby_locations"] = loc.NearbyLocations
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// CreateHotel adds a hotel (admin).
func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var payload HotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	facilities, _ := json.Marshal(payload.Facilities)
	authorID, _ := middleware.Principal(c)

	hotel, err := ctrl.Hotels.Create(services.CreateHotelInput{
		Name:        payload.Name,
		Location:    payload.Location,
		Pincode:     payload.Pincode,
		Description: payload.Description,
		Price:       payload.Price,
		TotalRooms:  payload.TotalRooms,
		Facilities:  facilities,
		AuthorID:    &authorID,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// UpdateHotel edits a hotel's descriptive fields (admin).
func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload HotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	var facilities []byte
	if payload.Facilities != nil {
		facilities, _ = json.Marshal(payload.Facilities)
	}

	hotel, err := ctrl.Hotels.Update(id, services.CreateHotelInput{
		Name:        payload.Name,
		Location:    payload.Location,
		Pincode:     payload.Pincode,
		Description: payload.Description,
		Price:       payload.Price,
		Facilities:  facilities,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// DeleteHotel removes a hotel and its rooms (admin).
func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Hotels.Delete(id); err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// GetHotelRooms lists the room types of a hotel.
func (ctrl *HotelController) GetHotelRooms(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	rooms, err := ctrl.Hotels.Rooms(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// CreateHotelRoom attaches a room type to a hotel (admin).
func (ctrl *HotelController) CreateHotelRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	room, err := ctrl.Hotels.AddRoom(id, payload.RoomType, payload.Capacity, payload.PricePerNight)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}
