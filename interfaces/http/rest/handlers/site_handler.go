package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	appservices "nextsite-backend/application/services"
	"nextsite-backend/domain/core/entities"
	"nextsite-backend/infrastructure/observability"
	"nextsite-backend/interfaces/render"
	"nextsite-backend/pkg/common"
	apperrors "nextsite-backend/pkg/errors"
)

// maxBriefBytes caps the request body. Briefs are small; anything larger is
// not a brief.
const maxBriefBytes = 64 << 10

// SiteHandler serves the generation endpoints.
type SiteHandler struct {
	generator *appservices.GeneratorService
	renderer  *render.Renderer
	metrics   *observability.Metrics
	errors    *apperrors.ErrorHandler
	logger    *zap.Logger
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(
	generator *appservices.GeneratorService,
	renderer *render.Renderer,
	metrics *observability.Metrics,
	errorHandler *apperrors.ErrorHandler,
	logger *zap.Logger,
) *SiteHandler {
	return &SiteHandler{
		generator: generator,
		renderer:  renderer,
		metrics:   metrics,
		errors:    errorHandler,
		logger:    logger,
	}
}

// decodeBrief accepts either a bare brief or one wrapped in a client_brief
// envelope, which is what older portal builds still send.
func decodeBrief(r *http.Request) (entities.ClientBrief, error) {
	var brief entities.ClientBrief

	body := http.MaxBytesReader(nil, r.Body, maxBriefBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		return brief, err
	}

	var wrapper struct {
		ClientBrief *entities.ClientBrief `json:"client_brief"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.ClientBrief != nil {
		return *wrapper.ClientBrief, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&brief)
	return brief, err
}

// GenerateSite handles POST /api/v1/sites/generate. The response body is the
// specification document itself, not an envelope.
func (h *SiteHandler) GenerateSite(w http.ResponseWriter, r *http.Request) {
	brief, err := decodeBrief(r)
	if err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	spec, err := h.generator.Generate(r.Context(), brief)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.metrics.SpecsGenerated.WithLabelValues(spec.Layout.Archetype).Inc()
	common.RespondRaw(w, http.StatusOK, spec)
}

// PreviewSite handles POST /api/v1/sites/preview. It generates the
// specification for the posted brief and returns a self-contained HTML page.
func (h *SiteHandler) PreviewSite(w http.ResponseWriter, r *http.Request) {
	brief, err := decodeBrief(r)
	if err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	spec, err := h.generator.Generate(r.Context(), brief)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	page, err := h.renderer.Page(spec)
	if err != nil {
		h.errors.Handle(w, r, apperrors.NewInternalError("preview rendering failed").WithCause(err))
		return
	}

	h.metrics.SpecsGenerated.WithLabelValues(spec.Layout.Archetype).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		h.logger.Warn("preview write failed", zap.Error(err))
	}
}
