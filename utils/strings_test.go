package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(6)
	assert.Len(t, s, 6)
	assert.Regexp(t, `^[A-Z0-9]{6}$`, s)

	assert.Empty(t, GenerateRandomString(0))
}
