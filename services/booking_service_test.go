package services

import (
	"context"
	"testing"

	"hikebook/constants"
	"hikebook/dto"
	"hikebook/errors"
	"hikebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingNumber(t *testing.T) {
	f := newWizardFixture(t)
	number := NewBookingNumber(f.bookings.now())
	assert.Regexp(t, `^BK\d{16}$`, number)
}

func TestBookingAPIFlow(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	claims := &TokenClaims{ID: "u1", Name: "Rani", Email: "rani@example.com"}

	basecamps, err := f.catalog.ListBasecamps(ctx)
	require.NoError(t, err)
	pos1 := basecamps[0] // 20000

	booking, err := f.bookings.CreateForUser(ctx, claims, dto.CreateBookingRequest{
		HikingPackageID: f.pkg.ID,
		BasecampID:      pos1.ID,
		HikingDate:      "2025-08-01",
		NumberOfPeople:  2,
		Participants:    []byte(`[{"name":"Ayu"}]`),
	})
	require.NoError(t, err)
	assert.Equal(t, int64((150000+20000)*2), booking.TotalPrice)
	assert.Equal(t, "Rani", booking.CustomerName)
	assert.Equal(t, "u1", *booking.UserID)
	assert.Nil(t, booking.PaymentMethod)

	t.Run("ValidationErrors", func(t *testing.T) {
		_, err := f.bookings.CreateForUser(ctx, claims, dto.CreateBookingRequest{HikingPackageID: f.pkg.ID, NumberOfPeople: 1})
		assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))

		_, err = f.bookings.CreateForUser(ctx, claims, dto.CreateBookingRequest{HikingPackageID: "missing", HikingDate: "2025-08-01", NumberOfPeople: 1})
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidOffer))

		_, err = f.bookings.CreateForUser(ctx, claims, dto.CreateBookingRequest{HikingPackageID: f.pkg.ID, HikingDate: "2025-08-01", NumberOfPeople: 61489146912365173})
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPeople))

		var count int64
		f.catalog.db.Model(&models.Booking{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("ListAndGetScopedToOwner", func(t *testing.T) {
		list, err := f.bookings.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].HikingPackage)
		require.NotNil(t, list[0].Basecamp)

		others, err := f.bookings.ListByUser(ctx, "u2")
		require.NoError(t, err)
		assert.Empty(t, others)

		_, err = f.bookings.GetForUser(ctx, booking.ID, "u2")
		assert.True(t, errors.Is(err, errors.ErrBookingNotFound))
	})

	t.Run("PartialUpdate", func(t *testing.T) {
		notes := "bawa tenda"
		people := dto.FlexInt(3)
		updated, err := f.bookings.UpdateForUser(ctx, booking.ID, "u1", dto.UpdateBookingRequest{
			NumberOfPeople: &people,
			Notes:          &notes,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.NumberOfPeople)

		stored, err := f.bookings.Get(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.NumberOfPeople)
		assert.Equal(t, "bawa tenda", *stored.Notes)
		assert.Equal(t, booking.TotalPrice, stored.TotalPrice)
		assert.Equal(t, []models.Participant{{Name: "Ayu"}}, stored.ParticipantList())

		_, err = f.bookings.UpdateForUser(ctx, booking.ID, "u2", dto.UpdateBookingRequest{Notes: &notes})
		assert.Equal(t, "Booking tidak ditemukan atau bukan milik Anda", errors.GetAppError(err).Message)
	})

	t.Run("EmptyValuesLeaveFieldsUnchanged", func(t *testing.T) {
		before, err := f.bookings.Get(ctx, booking.ID)
		require.NoError(t, err)

		empty := ""
		zero := dto.FlexInt(0)
		updated, err := f.bookings.UpdateForUser(ctx, booking.ID, "u1", dto.UpdateBookingRequest{
			HikingDate:     &empty,
			NumberOfPeople: &zero,
			Participants:   []byte("null"),
		})
		require.NoError(t, err)
		assert.Equal(t, before.NumberOfPeople, updated.NumberOfPeople)

		stored, err := f.bookings.Get(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.Participant{{Name: "Ayu"}}, stored.ParticipantList())
		assert.True(t, before.HikingDate.Equal(stored.HikingDate))
		assert.Equal(t, before.NumberOfPeople, stored.NumberOfPeople)

		_, err = f.bookings.UpdateForUser(ctx, booking.ID, "u1", dto.UpdateBookingRequest{Participants: []byte(`""`)})
		require.NoError(t, err)
		stored, err = f.bookings.Get(ctx, booking.ID)
		require.NoError(t, err)
		assert.Len(t, stored.ParticipantList(), 1)
	})

	t.Run("LockedStatus", func(t *testing.T) {
		require.NoError(t, f.catalog.db.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("booking_status", constants.BookingStatusCompleted).Error)

		notes := "x"
		_, err := f.bookings.UpdateForUser(ctx, booking.ID, "u1", dto.UpdateBookingRequest{Notes: &notes})
		assert.True(t, errors.HasCode(err, errors.ErrCodeBookingLocked))

		_, err = f.bookings.DeleteForUser(ctx, booking.ID, "u1")
		assert.True(t, errors.HasCode(err, errors.ErrCodeBookingLocked))
		assert.True(t, errors.Is(err, errors.ErrBookingCompleted))

		require.NoError(t, f.catalog.db.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("booking_status", constants.BookingStatusCancelled).Error)
		_, err = f.bookings.UpdateForUser(ctx, booking.ID, "u1", dto.UpdateBookingRequest{Notes: &notes})
		assert.True(t, errors.Is(err, errors.ErrBookingCancelled))

		require.NoError(t, f.catalog.db.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("booking_status", constants.BookingStatusPending).Error)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := f.bookings.DeleteForUser(ctx, booking.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, booking.BookingNumber, deleted.BookingNumber)

		_, err = f.bookings.Get(ctx, booking.ID)
		assert.True(t, errors.Is(err, errors.ErrBookingNotFound))
	})
}

func TestBookingOwnerPages(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()
	owner := &models.SessionUser{ID: "u1", Email: "rani@example.com"}

	byEmail := &models.Booking{BookingNumber: "BK1", CustomerEmail: "Rani@Example.com", NumberOfPeople: 1, Participants: []byte("[]")}
	stranger := &models.Booking{BookingNumber: "BK2", CustomerEmail: "other@example.com", NumberOfPeople: 1, Participants: []byte("[]")}
	require.NoError(t, f.catalog.db.Create(byEmail).Error)
	require.NoError(t, f.catalog.db.Create(stranger).Error)

	list, err := f.bookings.ListForOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "BK1", list[0].BookingNumber)

	_, err = f.bookings.GetOwned(ctx, stranger.ID, owner)
	assert.True(t, errors.Is(err, errors.ErrBookingNotFound))

	updated, err := f.bookings.UpdateFromEdit(ctx, byEmail.ID, owner, dto.EditBookingForm{
		HikingDate:     "2025-09-10",
		NumberOfPeople: "4",
		Notes:          "",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.NumberOfPeople)
	assert.Nil(t, updated.Notes)

	_, err = f.bookings.UpdateFromEdit(ctx, byEmail.ID, owner, dto.EditBookingForm{HikingDate: "2025-09-10", NumberOfPeople: "0"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidPeople))

	_, err = f.bookings.DeleteOwned(ctx, stranger.ID, owner)
	assert.True(t, errors.Is(err, errors.ErrBookingNotFound))

	_, err = f.bookings.DeleteOwned(ctx, byEmail.ID, owner)
	require.NoError(t, err)
}
