package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrilink-backend/internal/models"
)

func TestApproveConsumerRegistration(t *testing.T) {
	s := New()

	usersBefore := len(s.GetAllUsers())
	customersBefore := len(s.GetCustomers())

	user, customer, err := s.ApproveRegistration("reg-1")
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleConsumer, user.Role)
	assert.Equal(t, "Sunrise Cafe", user.BusinessName)

	require.NotNil(t, customer)
	assert.Equal(t, models.ConnectionStatusActive, customer.ConnectionStatus)
	assert.Equal(t, "Mombasa", customer.Location)
	require.NotNil(t, customer.UserID)
	assert.Equal(t, user.ID, *customer.UserID)

	assert.Len(t, s.GetAllUsers(), usersBefore+1)
	assert.Len(t, s.GetCustomers(), customersBefore+1)

	req, err := s.GetRegistrationRequest("reg-1")
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusApproved, req.Status)
	require.NotNil(t, req.DecidedAt)
}

func TestApproveFarmerRegistrationCreatesNoCustomer(t *testing.T) {
	s := New()

	user, customer, err := s.ApproveRegistration("reg-2")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleFarmer, user.Role)
	assert.Nil(t, customer)
}

// The store has no idempotency guard: approving the same request twice
// creates two users from one request. The handler layer is the only thing
// refusing the second call; this test documents the store-level behavior.
func TestApproveRegistrationIsNotIdempotent(t *testing.T) {
	s := New()

	first, _, err := s.ApproveRegistration("reg-1")
	require.NoError(t, err)

	usersBetween := len(s.GetAllUsers())

	second, _, err := s.ApproveRegistration("reg-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, s.GetAllUsers(), usersBetween+1)
}

func TestRejectRegistration(t *testing.T) {
	s := New()

	req, err := s.RejectRegistration("reg-2")
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusRejected, req.Status)
	require.NotNil(t, req.DecidedAt)

	_, err = s.RejectRegistration("reg-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetFormTemplate(t *testing.T) {
	s := New()

	tpl, err := s.GetFormTemplate(models.UserRoleConsumer)
	require.NoError(t, err)
	assert.Equal(t, "Buyer registration", tpl.Title)
	assert.NotEmpty(t, tpl.Fields)

	_, err = s.GetFormTemplate(models.UserRoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}
