package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrilink-backend/internal/models"
)

func TestFindBuyersForProductUsesSubstringMatch(t *testing.T) {
	s := New()

	// "Tomato" matches "Tomatoes" entries, case-insensitively.
	matches := s.FindBuyersForProduct("Tomato")
	ids := make([]string, 0, len(matches))
	for _, c := range matches {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{"cust-1", "cust-3"}, ids)

	matches = s.FindBuyersForProduct("tomato")
	assert.Len(t, matches, 2)

	assert.Empty(t, s.FindBuyersForProduct("Dragonfruit"))
}

func TestFindBuyersForProductMatchesInsideWords(t *testing.T) {
	s := New()

	// Substring, not token, matching: a "Tomcat" entry is caught by "Tom".
	_, err := s.CreateCustomer(models.Customer{
		BusinessName:   "Tomcat Pet Supplies",
		CommonProducts: "Tomcat feed pellets",
	})
	require.NoError(t, err)

	matches := s.FindBuyersForProduct("Tom")
	var names []string
	for _, c := range matches {
		names = append(names, c.BusinessName)
	}
	assert.Contains(t, names, "Tomcat Pet Supplies")
	assert.Contains(t, names, "Mama Njeri Grocers")
}

func TestCreateCustomerDefaults(t *testing.T) {
	s := New()

	c, err := s.CreateCustomer(models.Customer{BusinessName: "Corner Duka"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, models.ConnectionStatusPending, c.ConnectionStatus)
}

func TestUpdateCustomerConnection(t *testing.T) {
	s := New()

	status := models.ConnectionStatusActive
	supplier := "u2"
	markup := 10.0
	rep := "r1"
	c, err := s.UpdateCustomerConnection("cust-2", models.CustomerConnectionUpdate{
		ConnectionStatus: &status,
		SupplierID:       &supplier,
		MarkupPercent:    &markup,
		AssignedRepID:    &rep,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusActive, c.ConnectionStatus)
	require.NotNil(t, c.SupplierID)
	assert.Equal(t, "u2", *c.SupplierID)
	require.NotNil(t, c.MarkupPercent)
	assert.Equal(t, 10.0, *c.MarkupPercent)

	_, err = s.UpdateCustomerConnection("cust-999", models.CustomerConnectionUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}
