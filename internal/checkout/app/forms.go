package app

import (
	"fmt"
	"regexp"
	"strings"
)

// Payment methods accepted by the simulated checkout.
const (
	PaymentCredit = "credit"
	PaymentPayPal = "paypal"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	nonDigits     = regexp.MustCompile(`[^0-9]`)
)

// ValidationError reports the first form field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CheckoutForm carries the billing and payment fields of the checkout page.
type CheckoutForm struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	City           string
	ZipCode        string
	PaymentMethod  string
	CardholderName string
	CardNumber     string
	ExpiryDate     string
	CVV            string
}

// Validate checks required fields, the email shape and, for credit card
// payment, the card fields. It returns a *ValidationError for the first
// offending field.
func (f CheckoutForm) Validate() error {
	required := []struct {
		field, label, value string
	}{
		{"firstName", "first name", f.FirstName},
		{"lastName", "last name", f.LastName},
		{"email", "email", f.Email},
		{"phone", "phone", f.Phone},
		{"address", "address", f.Address},
		{"city", "city", f.City},
		{"zipCode", "zip code", f.ZipCode},
	}
	if f.PaymentMethod == PaymentCredit {
		required = append(required,
			struct{ field, label, value string }{"cardNumber", "card number", f.CardNumber},
			struct{ field, label, value string }{"expiryDate", "expiry date", f.ExpiryDate},
			struct{ field, label, value string }{"cvv", "cvv", f.CVV},
			struct{ field, label, value string }{"cardholderName", "cardholder name", f.CardholderName},
		)
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: fmt.Sprintf("Please fill in the %s field.", r.label)}
		}
	}

	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address."}
	}

	if f.PaymentMethod == PaymentCredit {
		digits := strings.ReplaceAll(f.CardNumber, " ", "")
		if len(digits) < 13 || len(digits) > 19 || nonDigits.MatchString(digits) {
			return &ValidationError{Field: "cardNumber", Message: "Please enter a valid card number."}
		}
		if !expiryPattern.MatchString(f.ExpiryDate) {
			return &ValidationError{Field: "expiryDate", Message: "Please enter a valid expiry date (MM/YY)."}
		}
		if len(f.CVV) < 3 || len(f.CVV) > 4 || nonDigits.MatchString(f.CVV) {
			return &ValidationError{Field: "cvv", Message: "Please enter a valid CVV."}
		}
	}

	return nil
}

// ContactForm carries the contact page fields.
type ContactForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
}

// Validate checks the required contact fields and the email shape.
func (f ContactForm) Validate() error {
	if strings.TrimSpace(f.FirstName) == "" ||
		strings.TrimSpace(f.LastName) == "" ||
		strings.TrimSpace(f.Email) == "" ||
		strings.TrimSpace(f.Subject) == "" ||
		strings.TrimSpace(f.Message) == "" {
		return &ValidationError{Message: "Please fill in all required fields."}
	}
	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address."}
	}
	return nil
}

// FormatCardNumber strips non-digits and regroups the number in blocks of
// four, the way the checkout input formats as the user types.
func FormatCardNumber(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry strips non-digits and inserts the MM/YY slash after the first
// two digits, truncating to four digits total.
func FormatExpiry(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) >= 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}
