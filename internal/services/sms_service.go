package services

import (
	"fmt"
	"net/url"
	"strings"
)

// SMSService composes sms: deep links the frontend opens in the device's
// messaging app. Nothing is delivered from the server side.
type SMSService struct{}

// NewSMSService creates a new SMS service
func NewSMSService() *SMSService {
	return &SMSService{}
}

// ComposeLink builds an sms: URI for the given phone number and body.
func (s *SMSService) ComposeLink(phoneNumber, body string) (string, error) {
	number := strings.TrimSpace(phoneNumber)
	if number == "" {
		return "", fmt.Errorf("phone number is required")
	}
	// Keep only characters that survive in a tel-style number.
	var b strings.Builder
	for _, r := range number {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("phone number %q has no digits", phoneNumber)
	}

	link := "sms:" + b.String()
	if body != "" {
		link += "?body=" + url.QueryEscape(body)
	}
	return link, nil
}

// OrderConfirmationLink builds a prefilled confirmation message for an order.
func (s *SMSService) OrderConfirmationLink(phoneNumber, orderID string, total float64) (string, error) {
	body := fmt.Sprintf("Your AgriLink order %s has been confirmed. Total: %.2f. Reply STOP to opt out.", orderID, total)
	return s.ComposeLink(phoneNumber, body)
}
