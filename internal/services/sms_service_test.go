package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeLink(t *testing.T) {
	svc := NewSMSService()

	link, err := svc.ComposeLink("+254 700 000 001", "Hello & welcome")
	require.NoError(t, err)
	assert.Equal(t, "sms:+254700000001?body=Hello+%26+welcome", link)
}

func TestComposeLinkNoBody(t *testing.T) {
	svc := NewSMSService()

	link, err := svc.ComposeLink("0722000001", "")
	require.NoError(t, err)
	assert.Equal(t, "sms:0722000001", link)
}

func TestComposeLinkEmptyNumber(t *testing.T) {
	svc := NewSMSService()

	_, err := svc.ComposeLink("   ", "hi")
	assert.Error(t, err)

	_, err = svc.ComposeLink("---", "hi")
	assert.Error(t, err)
}

func TestOrderConfirmationLink(t *testing.T) {
	svc := NewSMSService()

	link, err := svc.OrderConfirmationLink("+254700000001", "ord-1", 225)
	require.NoError(t, err)
	assert.Contains(t, link, "sms:+254700000001?body=")
	assert.Contains(t, link, "ord-1")
}
