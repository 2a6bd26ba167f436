package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyLookupRejectsInvalidSiret(t *testing.T) {
	router := setupTest(t)

	// Too short
	w := performRequest(router, http.MethodGet, "/api/company/1234", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Right length, wrong checksum
	w = performRequest(router, http.MethodGet, "/api/company/44306184100046", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-numeric
	w = performRequest(router, http.MethodGet, "/api/company/4430618410004A", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
