// controllers/invoice.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"consultpro-backend/config"
	"consultpro-backend/models"
	"consultpro-backend/services"
	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceItemInput defines the structure for an invoice line item
type InvoiceItemInput struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"min=1"`
	UnitPrice   float64 `json:"unitPrice" binding:"min=0"`
	TaxRate     float64 `json:"taxRate" binding:"min=0,max=100"`
}

// CreateInvoiceInput defines the expected JSON structure for creating a document
type CreateInvoiceInput struct {
	ClientID     uuid.UUID          `json:"clientId" binding:"required"`
	DocumentType string             `json:"documentType" binding:"omitempty,oneof=quote invoice credit_note"`
	IssueDate    *time.Time         `json:"issueDate"`
	DueDate      *time.Time         `json:"dueDate"`
	Items        []InvoiceItemInput `json:"items" binding:"required,min=1"`
	Notes        string             `json:"notes"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating a document
type UpdateInvoiceInput struct {
	ClientID  *uuid.UUID          `json:"clientId"`
	Status    *string             `json:"status" binding:"omitempty,oneof=draft sent accepted rejected paid overdue cancelled"`
	IssueDate *time.Time          `json:"issueDate"`
	DueDate   *time.Time          `json:"dueDate"`
	Items     *[]InvoiceItemInput `json:"items"`
	Notes     *string             `json:"notes"`
}

// buildInvoiceItems maps line item inputs to models and computes totals
func buildInvoiceItems(inputs []InvoiceItemInput) ([]models.InvoiceItem, float64, float64) {
	var items []models.InvoiceItem
	var totalExclTax, totalTax float64

	for _, item := range inputs {
		exclTax := item.UnitPrice * float64(item.Quantity)
		tax := exclTax * item.TaxRate / 100

		totalExclTax += exclTax
		totalTax += tax

		items = append(items, models.InvoiceItem{
			ID:           uuid.New(),
			Description:  item.Description,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			TaxRate:      item.TaxRate,
			TotalExclTax: exclTax,
			TotalInclTax: exclTax + tax,
		})
	}

	return items, totalExclTax, totalTax
}

func documentNumberPrefix(documentType string) string {
	switch documentType {
	case "quote":
		return "QUO"
	case "credit_note":
		return "CRN"
	default:
		return "INV"
	}
}

// CreateInvoice creates a new invoice, quote or credit note
func CreateInvoice(c *gin.Context) {
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

	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate client belongs to the current user
	var client models.Client
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, input.ClientID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	documentType := input.DocumentType
	if documentType == "" {
		documentType = "invoice"
	}

	items, totalExclTax, totalTax := buildInvoiceItems(input.Items)

	issueDate := time.Now()
	if input.IssueDate != nil {
		issueDate = *input.IssueDate
	}

	invoice := models.Invoice{
		ID:           uuid.New(),
		UserID:       userUUID,
		DocumentType: documentType,
		Status:       "draft",
		ClientID:     input.ClientID,
		IssueDate:    issueDate,
		DueDate:      input.DueDate,
		TotalExclTax: totalExclTax,
		TotalTax:     totalTax,
		TotalInclTax: totalExclTax + totalTax,
		Currency:     "EUR",
		Notes:        input.Notes,
		Items:        items,
	}

	invoice.Number = documentNumberPrefix(documentType) + "-" +
		time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices retrieves all documents for the current user
func GetInvoices(c *gin.Context) {
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

	query := config.DB.Preload("Items").Where("user_id = ?", userUUID)
	if documentType := c.Query("type"); documentType != "" {
		query = query.Where("document_type = ?", documentType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := query.Order("issue_date DESC").Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific document by ID
func GetInvoice(c *gin.Context) {
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

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice updates an existing document, recomputing totals when items change
func UpdateInvoice(c *gin.Context) {
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

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Retrieve existing invoice
	var invoice models.Invoice
	if err := tx.Preload("Items").
		Where("user_id = ? AND id = ?", userUUID, invoiceUUID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.ClientID != nil {
		// Validate client belongs to the current user
		var client models.Client
		if err := tx.Where("user_id = ? AND id = ?", userUUID, *input.ClientID).
			First(&client).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		invoice.ClientID = *input.ClientID
	}

	if input.IssueDate != nil {
		invoice.IssueDate = *input.IssueDate
	}
	if input.DueDate != nil {
		invoice.DueDate = input.DueDate
	}

	// If items are being updated, rewrite them and recompute totals
	if input.Items != nil {
		if len(*input.Items) == 0 {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Invoice must have at least one item")
			return
		}

		// Delete existing items
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
			return
		}

		items, totalExclTax, totalTax := buildInvoiceItems(*input.Items)
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}

		invoice.Items = items
		invoice.TotalExclTax = totalExclTax
		invoice.TotalTax = totalTax
		invoice.TotalInclTax = totalExclTax + totalTax
	}

	if input.Status != nil {
		invoice.Status = *input.Status
		now := time.Now()
		switch *input.Status {
		case "sent":
			if invoice.SentAt == nil {
				invoice.SentAt = &now
			}
		case "paid":
			if invoice.PaidAt == nil {
				invoice.PaidAt = &now
			}
		}
	}

	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}

	if err := tx.Save(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice deletes a document with its items
func DeleteInvoice(c *gin.Context) {
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

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Where("user_id = ? AND id = ?", userUUID, invoiceUUID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Delete invoice items
	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice items")
		return
	}

	if err := tx.Delete(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// SendInvoice marks a document as sent and emails it to the client
func SendInvoice(c *gin.Context) {
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

	now := time.Now()
	invoice.Status = "sent"
	invoice.SentAt = &now
	if err := config.DB.Save(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	// Best-effort email
	if err := services.NewMailer().SendInvoice(&invoice); err != nil {
		log.Printf("Failed to email invoice %s: %v", invoice.Number, err)
	}

	c.JSON(http.StatusOK, invoice)
}
