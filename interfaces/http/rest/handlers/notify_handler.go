package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"nextsite-backend/application/ports"
	appservices "nextsite-backend/application/services"
	"nextsite-backend/infrastructure/observability"
	"nextsite-backend/pkg/common"
	apperrors "nextsite-backend/pkg/errors"
)

// NotifyHandler forwards portal notifications to the external relay.
type NotifyHandler struct {
	notify  *appservices.NotifyService
	metrics *observability.Metrics
	errors  *apperrors.ErrorHandler
	logger  *zap.Logger
}

// NewNotifyHandler creates a new notify handler
func NewNotifyHandler(
	notify *appservices.NotifyService,
	metrics *observability.Metrics,
	errorHandler *apperrors.ErrorHandler,
	logger *zap.Logger,
) *NotifyHandler {
	return &NotifyHandler{
		notify:  notify,
		metrics: metrics,
		errors:  errorHandler,
		logger:  logger,
	}
}

// NotifyRequest is the notification request body.
type NotifyRequest struct {
	Company string `json:"company"`
	Layout  string `json:"layout,omitempty"`
	Preview string `json:"preview,omitempty"`
}

// Notify handles POST /api/v1/notify.
func (h *NotifyHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var req NotifyRequest
	if err := common.ParseJSONBody(r, &req, 8<<10); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err := h.notify.Send(r.Context(), ports.NotifyMessage{
		Company: req.Company,
		Layout:  req.Layout,
		Preview: req.Preview,
	})
	if err != nil {
		h.metrics.NotifyRelayed.WithLabelValues("failed").Inc()
		h.errors.Handle(w, r, err)
		return
	}

	h.metrics.NotifyRelayed.WithLabelValues("sent").Inc()
	common.RespondJSON(w, http.StatusAccepted, map[string]interface{}{"relayed": true})
}
