package model

import "queueup/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldQueuerID    = "queuer_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
)

type Service struct {
	ID          string  `db:"id"`
	QueuerID    string  `db:"queuer_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	model.Metadata
}
