package model

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrNameRequired is returned when the customer name is empty after sanitization.
	ErrNameRequired = errors.New("name is required")
	// ErrAddressRequired is returned when the delivery address is empty.
	ErrAddressRequired = errors.New("address is required")
	// ErrInvalidPhone is returned when the phone is not exactly 8 digits.
	ErrInvalidPhone = errors.New("phone must be exactly 8 digits")
)

// nameAllowed matches letters, accented vowels, ñ/Ñ, ü/Ü, and spaces.
var nameAllowed = regexp.MustCompile(`[^A-Za-zÁÉÍÓÚáéíóúÑñÜü\s]`)

// digitsOnly strips everything that is not a decimal digit.
var digitsOnly = regexp.MustCompile(`\D`)

// CheckoutDetails holds the customer data collected for a single checkout
// attempt. It is transient: never persisted with the cart, only carried
// through formatting and dispatch.
type CheckoutDetails struct {
	// Name is the customer name, letters and spaces only
	Name string `json:"name" example:"María Pérez"`
	// Address is the delivery address
	Address string `json:"address" example:"Calle 23 #456, Vedado"`
	// Phone is the local phone number, exactly 8 digits
	Phone string `json:"phone" example:"51234567"`
}

// SanitizeName removes characters the checkout form does not allow in a
// customer name, mirroring the input filtering applied as the user types.
func SanitizeName(s string) string {
	return strings.TrimSpace(nameAllowed.ReplaceAllString(s, ""))
}

// SanitizePhone keeps only the digits of a phone number.
func SanitizePhone(s string) string {
	return digitsOnly.ReplaceAllString(s, "")
}

// Sanitize returns a copy with the same filtering the UI applies before
// submission.
func (d CheckoutDetails) Sanitize() CheckoutDetails {
	return CheckoutDetails{
		Name:    SanitizeName(d.Name),
		Address: strings.TrimSpace(d.Address),
		Phone:   SanitizePhone(d.Phone),
	}
}

// Validate checks the pre-dispatch gate: non-empty name and address, phone
// of exactly 8 digits. It is applied to the sanitized details.
func (d CheckoutDetails) Validate() error {
	if d.Name == "" {
		return ErrNameRequired
	}
	if d.Address == "" {
		return ErrAddressRequired
	}
	if len(d.Phone) != 8 {
		return ErrInvalidPhone
	}
	return nil
}
