package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"queueup/config"
	"queueup/infras/otel/mocks"
	notificationMocks "queueup/internal/domains/notification/mocks"
	"queueup/internal/domains/notification/model"
	"queueup/internal/domains/notification/service"
	cacheMocks "queueup/shared/cache/mocks"
	"queueup/shared/constant"
	gDto "queueup/shared/dto"
	"queueup/shared/failure"
	gModel "queueup/shared/model"
	"queueup/shared/timezone"
)

const (
	userID         = "aaaaaaaa-1111-1111-1111-111111111111"
	notificationID = "88888888-8888-8888-8888-888888888888"
)

func newService(t *testing.T) (service.Notification, *notificationMocks.MockNotification, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func notificationFor(user string, read bool) model.Notification {
	return model.Notification{
		ID:            notificationID,
		UserID:        user,
		Type:          model.TypeStatusChanged,
		Title:         "Reservation confirmed",
		Message:       "Your reservation was confirmed by Budi Queuer",
		ReservationID: "55555555-5555-5555-5555-555555555555",
		Read:          read,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestNotificationService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Limit: 10, Page: 1}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "feed is scoped to the caller",
			ctx:  authCtx(),
			setupMock: func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Notification, error) {
						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "notifications.user_id")
						assert.Equal(t, userID, args[model.FieldUserID])

						return []model.Notification{notificationFor(userID, false)}, nil
					})
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantTotal: 1,
		},
		{
			name: "missing principal",
			ctx:  context.Background(),
			setupMock: func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache) {
			},
			wantErr: true,
		},
		{
			name: "repository error",
			ctx:  authCtx(),
			setupMock: func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.GetAll(tt.ctx, params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "marks an unread notification",
			ctx:  authCtx(),
			setupMock: func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(notificationFor(userID, false), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "already read is a no-op",
			ctx:  authCtx(),
			setupMock: func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(notificationFor(userID, true), nil)
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "foreign notification reads as not found",
			ctx:  authCtx(),
			setupMock: func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(notificationFor("someone-else", false), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "missing notification",
			ctx:  authCtx(),
			setupMock: func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Notification{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unreachable store maps to a dependency failure",
			ctx:  authCtx(),
			setupMock: func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Notification{}, errors.New("pq: connection refused"))
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name: "update error",
			ctx:  authCtx(),
			setupMock: func(repo *notificationMocks.MockNotification, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(notificationFor(userID, false), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.MarkRead(tt.ctx, notificationID)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, res.Read)
		})
	}
}
