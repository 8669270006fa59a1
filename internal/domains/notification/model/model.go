package model

import "queueup/shared/model"

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldType          = "type"
	FieldTitle         = "title"
	FieldMessage       = "message"
	FieldReservationID = "reservation_id"
	FieldRead          = "read"
)

// Notification types emitted by the reservation lifecycle.
const (
	TypeNewReservation = "new_reservation"
	TypeStatusChanged  = "reservation_status"
	TypeNewRating      = "new_rating"
)

type Notification struct {
	ID            string `db:"id"`
	UserID        string `db:"user_id"`
	Type          string `db:"type"`
	Title         string `db:"title"`
	Message       string `db:"message"`
	ReservationID string `db:"reservation_id"`
	Read          bool   `db:"read"`
	model.Metadata
}
