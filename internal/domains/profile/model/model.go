package model

import "queueup/shared/model"

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldFullName        = "full_name"
	FieldUserType        = "user_type"
	FieldRating          = "rating"
	FieldCompletedQueues = "completed_queues"
)

type Profile struct {
	ID              string   `db:"id"`
	UserID          string   `db:"user_id"`
	FullName        string   `db:"full_name"`
	UserType        string   `db:"user_type"`
	Rating          *float64 `db:"rating"`
	CompletedQueues int      `db:"completed_queues"`
	model.Metadata
}
