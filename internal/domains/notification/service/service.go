package service

import (
	"context"
	"fmt"
	"queueup/config"
	"queueup/infras/otel"
	"queueup/internal/domains/notification/model"
	"queueup/internal/domains/notification/model/dto"
	"queueup/internal/domains/notification/repository"
	"queueup/shared"
	"queueup/shared/cache"
	"queueup/shared/constant"
	gDto "queueup/shared/dto"
	"queueup/shared/failure"
	"queueup/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllNotification = "notification:gets"
	cacheCountNotification  = "notification:count"
)

type Notification interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNotificationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	MarkRead(ctx context.Context, id string) (dto.NotificationResponse, error)
}

type serviceImpl struct {
	repo  repository.Notification
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Notification, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll returns the caller's notification feed. The listing is always scoped
// to the authenticated principal regardless of any extra filters.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, err := principal(ctx)
	if err != nil {
		return res, err
	}

	scoped := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			filter,
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllNotification, req, scoped)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for notifications")

		return res, nil
	}

	total, err := s.Count(ctx, req, scoped)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, scoped)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, failure.Dependency(fmt.Errorf("failed to get notifications: %w", err)) // nolint:wrapcheck
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save notifications to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountNotification, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for notification count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, failure.Dependency(fmt.Errorf("failed to count notifications: %w", err)) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save notification count to cache")
		}
	}()

	return res, nil
}

// MarkRead flags a notification as read. Re-reading an already read
// notification is a no-op, not an error.
func (s *serviceImpl) MarkRead(ctx context.Context, id string) (res dto.NotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, err := principal(ctx)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	notification, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return res, failure.Dependency(fmt.Errorf("failed to get notification: %w", err)) // nolint:wrapcheck
	}

	// Someone else's notification reads the same as a missing one.
	if notification.ID == "" || notification.UserID != userID {
		return res, failure.NotFound("notification not found") // nolint:wrapcheck
	}

	if !notification.Read {
		mod := map[string]any{
			model.FieldRead:          true,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: userID,
		}

		if err = s.repo.Update(ctx, mod, filter); err != nil {
			log.Error().Err(err).Msg("failed to mark notification as read")

			return res, fmt.Errorf("failed to mark notification as read: %w", err)
		}

		notification.Read = true
		notification.ModifiedAt = timezone.Now()
		notification.ModifiedBy = userID
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllNotification)
		shared.InvalidateCaches(c, s.cache, cacheCountNotification)
	}()

	res.FromModel(notification)

	return res, nil
}

func principal(ctx context.Context) (string, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return "", failure.Unauthorized("missing authenticated principal") // nolint:wrapcheck
	}

	return userID, nil
}
