package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSiret(t *testing.T) {
	// Valid checksum
	assert.True(t, ValidateSiret("44306184100047"))
	// Spaces are tolerated
	assert.True(t, ValidateSiret("443 061 841 00047"))

	// Wrong checksum
	assert.False(t, ValidateSiret("44306184100046"))
	// Wrong length
	assert.False(t, ValidateSiret("443061841"))
	assert.False(t, ValidateSiret(""))
	// Non-numeric
	assert.False(t, ValidateSiret("4430618410004A"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+33612345678"))
	assert.True(t, ValidatePhone("+1 (415) 555-2671"))

	// National format with a leading zero is rejected
	assert.False(t, ValidatePhone("0612345678"))
	assert.False(t, ValidatePhone("not-a-number"))
	assert.False(t, ValidatePhone("+"))
	assert.False(t, ValidatePhone("0"))
}
