package model

import (
	"queueup/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID           = "id"
	FieldClientID     = "client_id"
	FieldQueuerID     = "queuer_id"
	FieldServiceID    = "service_id"
	FieldDate         = "date"
	FieldLocation     = "location"
	FieldDetails      = "details"
	FieldStatus       = "status"
	FieldClientRating = "client_rating"
	FieldClientReview = "client_review"
)

type Reservation struct {
	ID           string    `db:"id"`
	ClientID     string    `db:"client_id"`
	QueuerID     string    `db:"queuer_id"`
	ServiceID    string    `db:"service_id"`
	Date         time.Time `db:"date"`
	Location     string    `db:"location"`
	Details      string    `db:"details"`
	Status       string    `db:"status"`
	ClientRating *int      `db:"client_rating"`
	ClientReview *string   `db:"client_review"`
	model.Metadata
}
