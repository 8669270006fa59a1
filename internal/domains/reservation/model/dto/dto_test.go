package dto_test

import (
	"testing"

	"queueup/internal/domains/reservation/lifecycle"
	"queueup/internal/domains/reservation/model"
	"queueup/internal/domains/reservation/model/dto"
	gModel "queueup/shared/model"
	"queueup/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		ClientID:  "11111111-1111-1111-1111-111111111111",
		QueuerID:  "22222222-2222-2222-2222-222222222222",
		ServiceID: "44444444-4444-4444-4444-444444444444",
		Date:      "2026-09-15T10:00:00+07:00",
		Location:  "Immigration office, counter 3",
		Details:   "Passport renewal",
	}

	userID := "test-user-id"
	reservation, err := req.ToModel(userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, reservation.ID, "expected ID to be generated")
	assert.Equal(t, req.ClientID, reservation.ClientID)
	assert.Equal(t, req.QueuerID, reservation.QueuerID)
	assert.Equal(t, req.ServiceID, reservation.ServiceID)
	assert.Equal(t, req.Location, reservation.Location)
	assert.Equal(t, req.Details, reservation.Details)
	assert.Equal(t, lifecycle.StatusPending, reservation.Status)
	assert.Nil(t, reservation.ClientRating)
	assert.Equal(t, userID, reservation.CreatedBy)
	assert.Equal(t, userID, reservation.ModifiedBy)
	assert.False(t, reservation.Date.IsZero(), "expected Date to be parsed")
	assert.Equal(t, 2026, reservation.Date.Year())
}

func TestCreateReservationRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateReservationRequest{
		ClientID:  "11111111-1111-1111-1111-111111111111",
		QueuerID:  "22222222-2222-2222-2222-222222222222",
		ServiceID: "44444444-4444-4444-4444-444444444444",
		Date:      "15/09/2026",
	}

	_, err := req.ToModel("test-user-id")

	assert.Error(t, err)
}

func TestReservationResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	rating := 4
	review := "Great service"

	reservationModel := model.Reservation{
		ID:           "test-id",
		ClientID:     "client-id",
		QueuerID:     "queuer-id",
		ServiceID:    "service-id",
		Date:         now,
		Location:     "Counter 3",
		Details:      "Passport renewal",
		Status:       lifecycle.StatusCompleted,
		ClientRating: &rating,
		ClientReview: &review,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.ReservationResponse
	response.FromModel(reservationModel)

	assert.Equal(t, reservationModel.ID, response.ID)
	assert.Equal(t, reservationModel.ClientID, response.ClientID)
	assert.Equal(t, reservationModel.QueuerID, response.QueuerID)
	assert.Equal(t, reservationModel.ServiceID, response.ServiceID)
	assert.Equal(t, reservationModel.Status, response.Status)
	assert.Equal(t, reservationModel.CreatedBy, response.CreatedBy)
	if assert.NotNil(t, response.ClientRating) {
		assert.Equal(t, rating, *response.ClientRating)
	}
	if assert.NotNil(t, response.ClientReview) {
		assert.Equal(t, review, *response.ClientReview)
	}
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	now := timezone.Now()

	models := []model.Reservation{
		{
			ID:       "first",
			ClientID: "client-id",
			QueuerID: "queuer-id",
			Date:     now,
			Status:   lifecycle.StatusPending,
		},
		{
			ID:       "second",
			ClientID: "client-id",
			QueuerID: "queuer-id",
			Date:     now,
			Status:   lifecycle.StatusCancelled,
		},
	}

	var response dto.GetReservationsResponse
	response.FromModels(models, 12, 10)

	assert.Len(t, response.Reservations, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Equal(t, "first", response.Reservations[0].ID)
	assert.Equal(t, "second", response.Reservations[1].ID)
}
