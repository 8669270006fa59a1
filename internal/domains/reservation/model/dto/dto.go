package dto

import (
	"queueup/internal/domains/reservation/lifecycle"
	"queueup/internal/domains/reservation/model"
	"queueup/shared"
	"queueup/shared/constant"
	gDto "queueup/shared/dto"
	gModel "queueup/shared/model"
	"queueup/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ClientID  string `json:"client_id"  validate:"required,uuid"`
	QueuerID  string `json:"queuer_id"  validate:"required,uuid"`
	ServiceID string `json:"service_id" validate:"required,uuid"`
	Date      string `json:"date"       validate:"required"`
	Location  string `json:"location"   validate:"omitempty,max=255"`
	Details   string `json:"details"    validate:"omitempty,max=2000"`
}

func (c *CreateReservationRequest) ToModel(user string) (model.Reservation, error) {
	date, err := timezone.Parse(constant.DateFormat, c.Date)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:        uuid.NewString(),
		ClientID:  c.ClientID,
		QueuerID:  c.QueuerID,
		ServiceID: c.ServiceID,
		Date:      date,
		Location:  c.Location,
		Details:   c.Details,
		Status:    lifecycle.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed in_progress completed cancelled"`
}

type RateReservationRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"omitempty,max=1000"`
}

type ReservationResponse struct {
	ID           string  `json:"id"`
	ClientID     string  `json:"client_id"`
	QueuerID     string  `json:"queuer_id"`
	ServiceID    string  `json:"service_id"`
	Date         string  `json:"date"`
	Location     string  `json:"location"`
	Details      string  `json:"details"`
	Status       string  `json:"status"`
	ClientRating *int    `json:"client_rating,omitempty"`
	ClientReview *string `json:"client_review,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.ClientID = model.ClientID
	r.QueuerID = model.QueuerID
	r.ServiceID = model.ServiceID
	r.Date = timezone.Format(model.Date, constant.DateFormat)
	r.Location = model.Location
	r.Details = model.Details
	r.Status = model.Status
	r.ClientRating = model.ClientRating
	r.ClientReview = model.ClientReview
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
