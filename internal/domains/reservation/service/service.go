package service

import (
	"context"
	"fmt"
	"queueup/config"
	"queueup/infras/otel"
	catalogModel "queueup/internal/domains/catalog/model"
	catalogRepo "queueup/internal/domains/catalog/repository"
	notificationModel "queueup/internal/domains/notification/model"
	notificationRepo "queueup/internal/domains/notification/repository"
	profileModel "queueup/internal/domains/profile/model"
	profileRepo "queueup/internal/domains/profile/repository"
	"queueup/internal/domains/reservation/lifecycle"
	"queueup/internal/domains/reservation/model"
	"queueup/internal/domains/reservation/model/dto"
	"queueup/internal/domains/reservation/repository"
	"queueup/internal/events"
	"queueup/shared"
	"queueup/shared/cache"
	"queueup/shared/constant"
	gDto "queueup/shared/dto"
	"queueup/shared/failure"
	gModel "queueup/shared/model"
	"queueup/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

// statusUpdateMaxAttempts bounds the conditional-update retry loop: one
// initial attempt plus one retry after a lost race.
const statusUpdateMaxAttempts = 2

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.ReservationResponse, error)
	Rate(ctx context.Context, req dto.RateReservationRequest, id string) (dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo             repository.Reservation
	profileRepo      profileRepo.Profile
	catalogRepo      catalogRepo.Catalog
	notificationRepo notificationRepo.Notification
	publisher        events.Publisher
	cfg              *config.Config
	cache            cache.RedisCache
	otel             otel.Otel
}

func New(
	repo repository.Reservation,
	profileRepository profileRepo.Profile,
	catalogRepository catalogRepo.Catalog,
	notificationRepository notificationRepo.Notification,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:             repo,
		profileRepo:      profileRepository,
		catalogRepo:      catalogRepository,
		notificationRepo: notificationRepository,
		publisher:        publisher,
		cfg:              cfg,
		cache:            cache,
		otel:             otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	caller, role, err := s.caller(ctx)
	if err != nil {
		return res, err
	}

	if role != constant.RoleAdmin && caller.ID != req.ClientID {
		return res, failure.Forbidden("cannot create a reservation for another client") // nolint:wrapcheck
	}

	queuer, err := s.profileRepo.Get(ctx, shared.FilterByID(req.QueuerID, profileModel.FieldID, profileModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get queuer profile")

		return res, failure.Dependency(fmt.Errorf("failed to get queuer profile: %w", err)) // nolint:wrapcheck
	}

	if queuer.ID == "" || queuer.UserType != constant.RoleQueuer {
		return res, failure.NotFound("queuer not found") // nolint:wrapcheck
	}

	serviceExists, err := s.catalogRepo.Exist(ctx, shared.FilterByID(req.ServiceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return res, failure.Dependency(fmt.Errorf("failed to check if service exists: %w", err)) // nolint:wrapcheck
	}

	if !serviceExists {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	reservation, err := req.ToModel(caller.UserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	clientName := caller.FullName
	if caller.ID != reservation.ClientID {
		if client, clientErr := s.profileRepo.Get(ctx, shared.FilterByID(reservation.ClientID, profileModel.FieldID, profileModel.TableName)); clientErr == nil && client.ID != "" {
			clientName = client.FullName
		}
	}

	if err := s.notify(ctx, queuer.UserID, notificationModel.TypeNewReservation,
		"New reservation request",
		fmt.Sprintf("%s requested a new reservation", clientName),
		reservation.ID, caller.UserID,
	); err != nil {
		log.Error().Err(err).Msg("failed to notify queuer about new reservation")
	}

	s.publishEvent(ctx, reservation, caller.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	caller, role, err := s.caller(ctx)
	if err != nil {
		return res, err
	}

	scoped := s.scopeFilter(filter, caller, role)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, scoped)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, scoped)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, scoped)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, failure.Dependency(fmt.Errorf("failed to get reservations: %w", err)) // nolint:wrapcheck
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, failure.Dependency(fmt.Errorf("failed to count reservations: %w", err)) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	caller, role, err := s.caller(ctx)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		if !s.visible(caller, role, res.ClientID, res.QueuerID) {
			return dto.ReservationResponse{}, failure.NotFound("reservation not found") // nolint:wrapcheck
		}

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, failure.Dependency(fmt.Errorf("failed to get reservation: %w", err)) // nolint:wrapcheck
	}

	// A reservation the caller may not see reads the same as one that does
	// not exist.
	if reservation.ID == "" || !s.visible(caller, role, reservation.ClientID, reservation.QueuerID) {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	caller, role, err := s.caller(ctx)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, failure.Dependency(fmt.Errorf("failed to get reservation: %w", err)) // nolint:wrapcheck
	}

	if reservation.ID == "" {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	for attempt := 0; attempt < statusUpdateMaxAttempts; attempt++ {
		owned := s.owns(caller, role, reservation)

		if err = lifecycle.Check(role, owned, reservation.Status, req.Status); err != nil {
			return res, err // nolint:wrapcheck
		}

		mod := map[string]any{
			model.FieldStatus:        req.Status,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: caller.UserID,
		}

		casFilter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldID,
					Value:    id,
					Operator: gDto.FilterOperatorEq,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "expected_status",
					Field:    model.FieldStatus,
					Value:    reservation.Status,
					Operator: gDto.FilterOperatorEq,
					Table:    model.TableName,
				},
			},
		}

		affected, updateErr := s.repo.UpdateWhere(ctx, mod, casFilter)
		if updateErr != nil {
			log.Error().Err(updateErr).Msg("failed to update reservation status")

			return res, fmt.Errorf("failed to update reservation status: %w", updateErr)
		}

		if affected > 0 {
			previous := reservation.Status
			reservation.Status = req.Status
			reservation.ModifiedAt = timezone.Now()
			reservation.ModifiedBy = caller.UserID

			scope.AddEvent(fmt.Sprintf("reservation transitioned %s -> %s", previous, req.Status))

			s.applyTransitionEffects(ctx, reservation, caller, role)
			s.publishEvent(ctx, reservation, caller.ID)
			s.invalidate(ctx, id)

			res.FromModel(reservation)

			return res, nil
		}

		// Lost the race: another writer changed the row since we read it.
		// Reload and re-evaluate the transition against the fresh status.
		reservation, err = s.repo.Get(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to reload reservation after concurrent update")

			return res, failure.Dependency(fmt.Errorf("failed to reload reservation: %w", err)) // nolint:wrapcheck
		}

		if reservation.ID == "" {
			return res, failure.NotFound("reservation not found") // nolint:wrapcheck
		}
	}

	return res, failure.Conflict("reservation was modified concurrently") // nolint:wrapcheck
}

func (s *serviceImpl) Rate(ctx context.Context, req dto.RateReservationRequest, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rate")
	defer scope.End()
	defer scope.TraceIfError(err)

	caller, _, err := s.caller(ctx)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, failure.Dependency(fmt.Errorf("failed to get reservation: %w", err)) // nolint:wrapcheck
	}

	if reservation.ID == "" {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if caller.ID != reservation.ClientID {
		return res, failure.Forbidden("only the reservation's client may rate it") // nolint:wrapcheck
	}

	if reservation.Status != lifecycle.StatusCompleted {
		return res, failure.InvalidState("reservation is not completed") // nolint:wrapcheck
	}

	var review *string
	if req.Review != "" {
		review = &req.Review
	}

	mod := map[string]any{
		model.FieldClientRating:  req.Rating,
		model.FieldClientReview:  review,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: caller.UserID,
	}

	if err = s.repo.Update(ctx, mod, filter); err != nil {
		log.Error().Err(err).Msg("failed to persist reservation rating")

		return res, fmt.Errorf("failed to persist reservation rating: %w", err)
	}

	rating := req.Rating
	reservation.ClientRating = &rating
	reservation.ClientReview = review
	reservation.ModifiedAt = timezone.Now()
	reservation.ModifiedBy = caller.UserID

	s.recomputeQueuerRating(ctx, reservation.QueuerID, caller.UserID)

	if queuer, queuerErr := s.profileRepo.Get(ctx, shared.FilterByID(reservation.QueuerID, profileModel.FieldID, profileModel.TableName)); queuerErr == nil && queuer.ID != "" {
		if notifyErr := s.notify(ctx, queuer.UserID, notificationModel.TypeNewRating,
			"New rating received",
			fmt.Sprintf("%s rated your service %d/5", caller.FullName, req.Rating),
			reservation.ID, caller.UserID,
		); notifyErr != nil {
			log.Error().Err(notifyErr).Msg("failed to notify queuer about new rating")
		}
	}

	s.invalidate(ctx, id)

	res.FromModel(reservation)

	return res, nil
}

// caller resolves the authenticated principal to its profile and role.
func (s *serviceImpl) caller(ctx context.Context) (profileModel.Profile, string, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if userID == "" {
		return profileModel.Profile{}, "", failure.Unauthorized("missing authenticated principal") // nolint:wrapcheck
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get caller profile")

		return profileModel.Profile{}, "", failure.Dependency(fmt.Errorf("failed to get caller profile: %w", err)) // nolint:wrapcheck
	}

	if profile.ID == "" {
		return profileModel.Profile{}, "", failure.Unauthorized("no profile for authenticated principal") // nolint:wrapcheck
	}

	return profile, role, nil
}

func (s *serviceImpl) owns(caller profileModel.Profile, role string, reservation model.Reservation) bool {
	switch role {
	case constant.RoleClient:
		return caller.ID == reservation.ClientID
	case constant.RoleQueuer:
		return caller.ID == reservation.QueuerID
	case constant.RoleAdmin:
		return true
	default:
		return false
	}
}

func (s *serviceImpl) visible(caller profileModel.Profile, role, clientID, queuerID string) bool {
	if role == constant.RoleAdmin {
		return true
	}

	return caller.ID == clientID || caller.ID == queuerID
}

// scopeFilter narrows a listing filter to the caller's own reservations.
// Admins see everything.
func (s *serviceImpl) scopeFilter(filter gDto.FilterGroup, caller profileModel.Profile, role string) gDto.FilterGroup {
	var ownership gDto.Filter

	switch role {
	case constant.RoleClient:
		ownership = gDto.Filter{
			Field:    model.FieldClientID,
			Value:    caller.ID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		}
	case constant.RoleQueuer:
		ownership = gDto.Filter{
			Field:    model.FieldQueuerID,
			Value:    caller.ID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		}
	default:
		return filter
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{ownership, filter},
	}
}

// applyTransitionEffects runs the post-transition fan-out. Every effect is
// independently fault-tolerant: the persisted status is the authoritative
// outcome, so failures here are logged and swallowed.
func (s *serviceImpl) applyTransitionEffects(ctx context.Context, reservation model.Reservation, caller profileModel.Profile, role string) {
	client, err := s.profileRepo.Get(ctx, shared.FilterByID(reservation.ClientID, profileModel.FieldID, profileModel.TableName))
	if err != nil || client.ID == "" {
		log.Error().Err(err).Str("clientID", reservation.ClientID).Msg("failed to get client profile for side effects")
	}

	queuer, err := s.profileRepo.Get(ctx, shared.FilterByID(reservation.QueuerID, profileModel.FieldID, profileModel.TableName))
	if err != nil || queuer.ID == "" {
		log.Error().Err(err).Str("queuerID", reservation.QueuerID).Msg("failed to get queuer profile for side effects")
	}

	switch reservation.Status {
	case lifecycle.StatusConfirmed:
		if client.ID != "" {
			if err := s.notify(ctx, client.UserID, notificationModel.TypeStatusChanged,
				"Reservation confirmed",
				fmt.Sprintf("Your reservation was confirmed by %s", queuer.FullName),
				reservation.ID, caller.UserID,
			); err != nil {
				log.Error().Err(err).Msg("failed to notify client about confirmation")
			}
		}
	case lifecycle.StatusCancelled:
		// Notify the counterparty, naming the canceller.
		recipient := client
		if role == constant.RoleClient {
			recipient = queuer
		}

		if recipient.ID != "" {
			if err := s.notify(ctx, recipient.UserID, notificationModel.TypeStatusChanged,
				"Reservation cancelled",
				fmt.Sprintf("Your reservation was cancelled by %s", caller.FullName),
				reservation.ID, caller.UserID,
			); err != nil {
				log.Error().Err(err).Msg("failed to notify counterparty about cancellation")
			}
		}
	case lifecycle.StatusCompleted:
		if client.ID != "" {
			if err := s.notify(ctx, client.UserID, notificationModel.TypeStatusChanged,
				"Reservation completed",
				fmt.Sprintf("%s marked your reservation as completed", queuer.FullName),
				reservation.ID, caller.UserID,
			); err != nil {
				log.Error().Err(err).Msg("failed to notify client about completion")
			}
		}

		if queuer.ID != "" {
			if err := s.profileRepo.IncrementCompletedQueues(ctx, queuer.ID, caller.UserID); err != nil {
				log.Error().Err(err).Msg("failed to increment queuer completed queues")
			}
		}
	}
}

// recomputeQueuerRating re-aggregates every non-null client rating for the
// queuer and stores the mean rounded to one decimal. Re-running it with the
// same underlying set yields the same stored value. The write only lands when
// the stored mean still matches the one read, so two interleaved
// recomputations cannot persist a stale aggregate; a lost race is retried
// once against fresh data.
func (s *serviceImpl) recomputeQueuerRating(ctx context.Context, queuerID, actor string) {
	for attempt := 0; attempt < statusUpdateMaxAttempts; attempt++ {
		queuer, err := s.profileRepo.Get(ctx, shared.FilterByID(queuerID, profileModel.FieldID, profileModel.TableName))
		if err != nil || queuer.ID == "" {
			log.Error().Err(err).Str("queuerID", queuerID).Msg("failed to get queuer for rating recomputation")

			return
		}

		ratings, err := s.repo.Ratings(ctx, queuerID)
		if err != nil {
			log.Error().Err(err).Str("queuerID", queuerID).Msg("failed to load ratings for recomputation")

			return
		}

		if len(ratings) == 0 {
			return
		}

		sum := 0
		for _, rating := range ratings {
			sum += rating
		}

		mean := shared.RoundToTenth(float64(sum) / float64(len(ratings)))

		mod := map[string]any{
			profileModel.FieldRating: mean,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: actor,
		}

		expectedRating := gDto.Filter{
			Field:    profileModel.FieldRating,
			Operator: gDto.FilterIsNull,
			Table:    profileModel.TableName,
		}
		if queuer.Rating != nil {
			expectedRating = gDto.Filter{
				ArgName:  "expected_rating",
				Field:    profileModel.FieldRating,
				Value:    *queuer.Rating,
				Operator: gDto.FilterOperatorEq,
				Table:    profileModel.TableName,
			}
		}

		casFilter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    profileModel.FieldID,
					Value:    queuerID,
					Operator: gDto.FilterOperatorEq,
					Table:    profileModel.TableName,
				},
				expectedRating,
			},
		}

		affected, err := s.profileRepo.UpdateWhere(ctx, mod, casFilter)
		if err != nil {
			log.Error().Err(err).Str("queuerID", queuerID).Msg("failed to persist recomputed queuer rating")

			return
		}

		if affected > 0 {
			return
		}
	}

	log.Error().Str("queuerID", queuerID).Msg("queuer rating changed concurrently, recomputation abandoned")
}

func (s *serviceImpl) notify(ctx context.Context, userID, notificationType, title, message, reservationID, actor string) error {
	if userID == "" {
		return nil
	}

	notification := notificationModel.Notification{
		ID:            uuid.NewString(),
		UserID:        userID,
		Type:          notificationType,
		Title:         title,
		Message:       message,
		ReservationID: reservationID,
		Read:          false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	return s.notificationRepo.Insert(ctx, notification) // nolint:wrapcheck
}

func (s *serviceImpl) publishEvent(ctx context.Context, reservation model.Reservation, actorID string) {
	event := events.ReservationEvent{
		ReservationID: reservation.ID,
		ClientID:      reservation.ClientID,
		QueuerID:      reservation.QueuerID,
		Status:        reservation.Status,
		ActorID:       actorID,
		OccurredAt:    timezone.Now(),
	}

	if err := s.publisher.PublishReservationEvent(ctx, event); err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to publish reservation lifecycle event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
