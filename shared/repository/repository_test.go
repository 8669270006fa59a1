package repository_test

import (
	"queueup/infras/otel/mocks"
	"queueup/shared/model"
	"queueup/shared/repository"
	"testing"
)

type bookingRecord struct {
	ID     string `db:"id"`
	Status string `db:"status"`
	Date   string `db:"date"`
	model.Metadata
}

func TestRepository_Sortable(t *testing.T) {
	repo := repository.NewRepository[bookingRecord]("booking", "bookings", "id", nil, mocks.NewOtel())

	tests := []struct {
		name     string
		sortBy   string
		sortable bool
	}{
		{
			name:     "entity column",
			sortBy:   "status",
			sortable: true,
		},
		{
			name:     "metadata column",
			sortBy:   "created_at",
			sortable: true,
		},
		{
			name:     "unknown column",
			sortBy:   "rating",
			sortable: false,
		},
		{
			name:     "injection attempt",
			sortBy:   "date; DROP TABLE bookings --",
			sortable: false,
		},
		{
			name:     "empty",
			sortBy:   "",
			sortable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repo.Sortable(tt.sortBy); got != tt.sortable {
				t.Errorf("expected Sortable(%q) to be %v, got %v", tt.sortBy, tt.sortable, got)
			}
		})
	}
}
