package notification

import (
	"net/http"
	"queueup/infras/otel"
	"queueup/internal/domains/notification/model"
	"queueup/internal/domains/notification/service"
	"queueup/shared"
	"queueup/shared/constant"
	gDto "queueup/shared/dto"
	"queueup/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Patch("/{id}/read", handler.MarkNotificationRead)
	})
}

// GetNotifications retrieves the caller's notification feed.
// @Summary Get notifications
// @Description Retrieve the authenticated user's notifications with optional filtering and pagination.
// @Tags Notification
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param read query string false "Filter by read state (true or false)"
// @Success 200 {object} response.Data[dto.GetNotificationsResponse] "List of notifications"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	// Notifications have no date column, so the shared sort default does not apply.
	if r.URL.Query().Get(constant.RequestParamSortBy) == "" {
		queryParams.SortBy = constant.FieldCreatedAt
	}

	read := r.URL.Query().Get(model.FieldRead)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if read != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRead,
			Operator: gDto.FilterOperatorEq,
			Value:    shared.ConvertStringToBool(read),
			Table:    model.TableName,
		})
	}

	notifications, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}

// MarkNotificationRead flags a notification as read.
// @Summary Mark a notification as read
// @Description Mark one of the caller's notifications as read. Already read notifications are left unchanged.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Data[dto.NotificationResponse] "Updated notification"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/{id}/read [patch]
// @Security BearerAuth
func (handler *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkNotificationRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	notification, err := handler.service.MarkRead(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification as read")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Notification marked as read by user " + user)

	response.WithJSON(w, http.StatusOK, notification)
}
