// controllers/payment.go
package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"time"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
	"github.com/stripe/stripe-go/v78/webhook"
	"gorm.io/gorm"
)

func frontendURL() string {
	url := os.Getenv("FRONTEND_URL")
	if url == "" {
		url = "http://localhost:3000"
	}
	return url
}

func stripeConfigured() bool {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return false
	}
	stripe.Key = key
	return true
}

// CreateBookingCheckout opens a Stripe Checkout session for a booking,
// priced from its service.
func CreateBookingCheckout(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var booking models.Booking
	if err := config.DB.Where("id = ?", bookingUUID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if booking.ServiceID == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking has no priced service")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", *booking.ServiceID).First(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking has no priced service")
		return
	}

	if service.Price <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Service has no price")
		return
	}

	if !stripeConfigured() {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Payments are not configured")
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("eur"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(booking.Topic),
					},
					UnitAmount: stripe.Int64(int64(math.Round(service.Price * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(booking.ClientEmail),
		SuccessURL:    stripe.String(frontendURL() + "/booking/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(frontendURL() + "/booking/cancelled"),
	}
	params.AddMetadata("booking_id", booking.ID.String())

	checkoutSession, err := session.New(params)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	booking.StripeSessionID = checkoutSession.ID
	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": checkoutSession.ID,
		"url":       checkoutSession.URL,
	})
}

// CreateInvoiceCheckout opens a Stripe Checkout session whose line items
// mirror the invoice's.
func CreateInvoiceCheckout(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Items").Preload("Client").
		Where("user_id = ? AND id = ?", userUUID, invoiceUUID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if len(invoice.Items) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invoice has no line items")
		return
	}

	if invoice.DocumentType == "credit_note" {
		utils.RespondWithError(c, http.StatusBadRequest, "Credit notes cannot be paid")
		return
	}

	if !stripeConfigured() {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Payments are not configured")
		return
	}

	var lineItems []*stripe.CheckoutSessionLineItemParams
	for _, item := range invoice.Items {
		unitAmount := int64(math.Round(item.TotalInclTax / float64(item.Quantity) * 100))
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("eur"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Description),
				},
				UnitAmount: stripe.Int64(unitAmount),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:     lineItems,
		CustomerEmail: stripe.String(invoice.Client.Email),
		SuccessURL:    stripe.String(frontendURL() + "/invoices/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(frontendURL() + "/invoices/cancelled"),
	}
	params.AddMetadata("invoice_id", invoice.ID.String())

	checkoutSession, err := session.New(params)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	invoice.StripeSessionID = checkoutSession.ID
	if err := config.DB.Save(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": checkoutSession.ID,
		"url":       checkoutSession.URL,
	})
}

// StripeWebhook marks invoices and bookings paid when their checkout
// session completes.
func StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read payload")
		return
	}

	event, err := webhook.ConstructEvent(payload,
		c.GetHeader("Stripe-Signature"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid webhook signature")
		return
	}

	if event.Type == "checkout.session.completed" {
		var checkoutSession stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &checkoutSession); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid event payload")
			return
		}

		now := time.Now()

		if invoiceID, ok := checkoutSession.Metadata["invoice_id"]; ok {
			if err := config.DB.Model(&models.Invoice{}).
				Where("id = ?", invoiceID).
				Updates(map[string]interface{}{"status": "paid", "paid_at": &now}).Error; err != nil {
				log.Printf("Failed to mark invoice %s paid: %v", invoiceID, err)
			}
		}

		if bookingID, ok := checkoutSession.Metadata["booking_id"]; ok {
			if err := config.DB.Model(&models.Booking{}).
				Where("id = ?", bookingID).
				Update("payment_status", "paid").Error; err != nil {
				log.Printf("Failed to mark booking %s paid: %v", bookingID, err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
