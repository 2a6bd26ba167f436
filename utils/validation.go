// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateSiret checks a French SIRET number: 14 digits with a valid
// Luhn checksum.
func ValidateSiret(siret string) bool {
	cleaned := strings.ReplaceAll(siret, " ", "")
	if len(cleaned) != 14 {
		return false
	}

	sum := 0
	for i, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
		digit := int(r - '0')
		// Double every other digit starting from the left
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	return sum%10 == 0
}
