package handlers

import (
	"net/http"

	"go.uber.org/zap"

	appservices "nextsite-backend/application/services"
	"nextsite-backend/infrastructure/observability"
	"nextsite-backend/pkg/auth"
	"nextsite-backend/pkg/common"
	apperrors "nextsite-backend/pkg/errors"
)

// AuthHandler serves portal login and logout.
type AuthHandler struct {
	auth          *appservices.AuthService
	sessions      *auth.SessionManager
	secureCookies bool
	metrics       *observability.Metrics
	errors        *apperrors.ErrorHandler
	logger        *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authService *appservices.AuthService,
	sessions *auth.SessionManager,
	secureCookies bool,
	metrics *observability.Metrics,
	errorHandler *apperrors.ErrorHandler,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		auth:          authService,
		sessions:      sessions,
		secureCookies: secureCookies,
		metrics:       metrics,
		errors:        errorHandler,
		logger:        logger,
	}
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := common.ParseJSONBody(r, &req, 4<<10); err != nil {
		h.errors.HandleStatus(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	token, err := h.auth.Login(r.Context(), req.Password)
	if err != nil {
		h.metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		h.errors.Handle(w, r, err)
		return
	}

	h.metrics.LoginAttempts.WithLabelValues("accepted").Inc()
	http.SetCookie(w, h.sessions.Cookie(token, h.secureCookies))
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"expires_in":    int(h.sessions.TTL().Seconds()),
	})
}

// Logout handles POST /api/v1/auth/logout by expiring the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
}
