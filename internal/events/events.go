package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"queueup/infras/kafka"
	"queueup/infras/otel"
	"queueup/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TopicReservationLifecycle = "reservation.lifecycle"
)

// ReservationEvent describes a single reservation lifecycle change for
// downstream consumers.
type ReservationEvent struct {
	ReservationID string    `json:"reservation_id"`
	ClientID      string    `json:"client_id"`
	QueuerID      string    `json:"queuer_id"`
	Status        string    `json:"status"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishReservationEvent(ctx context.Context, event ReservationEvent) error
}

type publisherImpl struct {
	client kafka.Client
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, otl otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		otel:   otl,
	}
}

func (p *publisherImpl) PublishReservationEvent(ctx context.Context, event ReservationEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishReservationEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"reservation.id":     event.ReservationID,
		"reservation.status": event.Status,
	})

	message := kafka.Message{
		Key:   event.ReservationID,
		Value: event,
	}

	if err = p.client.SendMessages(ctx, TopicReservationLifecycle, message); err != nil {
		log.Error().Err(err).Str("reservationID", event.ReservationID).Msg("failed to publish reservation event")

		return fmt.Errorf("failed to publish reservation event: %w", err)
	}

	return nil
}
