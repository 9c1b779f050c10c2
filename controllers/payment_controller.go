// controllers/payment_controller.go
package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"sangamstay/services"
	"sangamstay/utils"

	"github.com/gin-gonic/gin"
)

type VerifyPaymentPayload struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: svc}
}

// ConfirmCODBooking confirms a pending booking as pay-at-hotel.
func (ctrl *PaymentController) ConfirmCODBooking(c *gin.Context) {
	id, ok := idParam(c, "bookingId")
	if !ok {
		return
	}

	payment, err := ctrl.Payments.ConfirmCOD(id, actor(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}

// VerifyOnlinePayment checks the gateway signature (HMAC-SHA256 of
// "orderID|paymentID" with PAYMENT_KEY_SECRET) and confirms the booking.
func (ctrl *PaymentController) VerifyOnlinePayment(c *gin.Context) {
	id, ok := idParam(c, "bookingId")
	if !ok {
		return
	}

	var payload VerifyPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", err)
		return
	}

	secret := utils.EnvOrDefault("PAYMENT_KEY_SECRET", "")
	if secret == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "online payments are not configured")
		return
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload.OrderID + "|" + payload.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(payload.Signature)) {
		utils.JSONError(c, http.StatusBadRequest, "payment verification failed")
		return
	}

	payment, err := ctrl.Payments.ConfirmOnline(id, actor(c), payload.PaymentID, payload.OrderID)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}
