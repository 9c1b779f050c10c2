package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sangamstay/controllers"
	"sangamstay/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	adc *controllers.AdminController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/profile", middleware.RequireAuth(), ac.Profile)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.GET("/:id", hc.GetHotel)
			hotels.GET("/:id/rooms", hc.GetHotelRooms)

			hotels.POST("", middleware.RequireAuth(), middleware.RequireAdmin(), hc.CreateHotel)
			hotels.PUT("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), hc.UpdateHotel)
			hotels.DELETE("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), hc.DeleteHotel)
			hotels.POST("/:id/rooms", middleware.RequireAuth(), middleware.RequireAdmin(), hc.CreateHotelRoom)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth())
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)

			// /clear must be registered before /:id
			bookings.DELETE("/clear", middleware.RequireAdmin(), bc.ClearBookings)
			bookings.DELETE("/clear-my-bookings", bc.ClearMyBookings)

			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.POST("/:id/cancel", bc.CancelBooking)
			bookings.POST("/:id/checkout", middleware.RequireAdmin(), bc.CheckoutBooking)
			bookings.POST("/:id/reactivate", middleware.RequireAdmin(), bc.ReactivateBooking)
			bookings.PATCH("/:id/rooms", bc.UpdateRoomCount)
		}

		payments := api.Group("/payments", middleware.RequireAuth())
		{
			payments.POST("/:bookingId/cod", pc.ConfirmCODBooking)
			payments.POST("/:bookingId/verify", pc.VerifyOnlinePayment)
		}

		admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/bookings", adc.GetAllBookings)
			admin.GET("/users", adc.GetAllUsers)
			admin.PUT("/hotels/:id/availability", adc.SetHotelAvailability)
		}
	}

	return r
}
