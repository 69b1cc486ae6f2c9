package builders

import (
	"testing"
	"time"

	"hikebook/constants"
	"hikebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingBuilder(t *testing.T) {
	date := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	pkg := &models.HikingPackage{ID: "p1", Price: 150000}

	booking, err := NewBookingBuilder().
		WithNumber("BK1").
		WithCustomer("A", "a@x.com", "0812").
		WithPackage(pkg).
		WithHikingDate(date).
		WithGroup(2, []models.Participant{{Name: "Ayu"}}).
		WithTotalPrice(300000).
		WithPaymentMethod("transfer").
		WithOwner("").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "BK1", booking.BookingNumber)
	require.NotNil(t, booking.HikingPackageID)
	assert.Equal(t, "p1", *booking.HikingPackageID)
	assert.Nil(t, booking.BasecampID)
	assert.Nil(t, booking.UserID)
	assert.Nil(t, booking.Notes)
	assert.Equal(t, constants.BookingStatusPending, booking.BookingStatus)
	assert.Equal(t, constants.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, []models.Participant{{Name: "Ayu"}}, booking.ParticipantList())
	assert.Equal(t, "transfer", *booking.PaymentMethod)
}

func TestBookingBuilderDefaultsParticipants(t *testing.T) {
	booking, err := NewBookingBuilder().WithOwner("u1").Build()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(booking.Participants))
	assert.Equal(t, "u1", *booking.UserID)
}
