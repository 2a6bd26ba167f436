package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRevenueCountsOnlyPaidInvoices(t *testing.T) {
	router := setupTest(t)
	idA, tokenA := registerTestUser(t, router, "owner-a@example.com")
	idB, _ := registerTestUser(t, router, "owner-b@example.com")

	userA := uuid.MustParse(idA)
	userB := uuid.MustParse(idB)
	clientA := createTestClient(t, router, tokenA, "acme@example.com")

	// Paid quotes and credit notes are not revenue, nor are other users'
	// invoices
	seedInvoice(t, userA, clientA, "INV-A-PAID", "invoice", "paid", 240)
	seedInvoice(t, userA, clientA, "QUO-A-PAID", "quote", "paid", 999)
	seedInvoice(t, userA, clientA, "CRN-A-PAID", "credit_note", "paid", 500)
	seedInvoice(t, userA, clientA, "INV-A-DRAFT", "invoice", "draft", 100)
	seedInvoice(t, userB, clientA, "INV-B-PAID", "invoice", "paid", 777)

	w := performRequest(router, http.MethodGet, "/api/reports", nil, tokenA)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, 240.0, body["currentMonthRevenue"])
	assert.Equal(t, 240.0, body["currentQuarterRevenue"])
	assert.Equal(t, 240.0, body["currentYearRevenue"])

	quickStats, ok := body["quickStats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 240.0, quickStats["avgOrderValue"])

	topClients, ok := body["topClients"].([]interface{})
	require.True(t, ok)
	require.Len(t, topClients, 1)
	top := topClients[0].(map[string]interface{})
	assert.Equal(t, 240.0, top["revenue"])
	assert.Equal(t, 1.0, top["count"])
}

func TestReportIncludesLastDayOfMonth(t *testing.T) {
	router := setupTest(t)
	idA, tokenA := registerTestUser(t, router, "owner@example.com")

	userA := uuid.MustParse(idA)
	clientA := createTestClient(t, router, tokenA, "acme@example.com")

	// Issued at noon on the last day of the current month
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastDayNoon := firstOfMonth.AddDate(0, 1, -1).Add(12 * time.Hour)

	seedInvoiceAt(t, userA, clientA, "INV-LAST-DAY", "invoice", "paid", 100, lastDayNoon)

	w := performRequest(router, http.MethodGet, "/api/reports", nil, tokenA)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, 100.0, body["currentMonthRevenue"])
	assert.Equal(t, 100.0, body["currentYearRevenue"])
}
