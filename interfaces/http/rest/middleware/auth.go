package middleware

import (
	"net/http"

	"go.uber.org/zap"

	appservices "nextsite-backend/application/services"
	"nextsite-backend/pkg/auth"
	"nextsite-backend/pkg/common"
)

// NotifyTokenHeader is the shared-secret header accepted as an alternative
// to a portal session on the notify route, so automations can post
// notifications without a browser login.
const NotifyTokenHeader = "X-NB-Notify-Token"

// RequireSessionOrToken accepts either a valid portal session cookie or the
// configured notify token header. The token is read per request so
// configuration reloads take effect without a restart.
func RequireSessionOrToken(authService *appservices.AuthService, notifyToken func() string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := notifyToken(); token != "" && auth.ConstantTimeEquals(r.Header.Get(NotifyTokenHeader), token) {
				next.ServeHTTP(w, r.WithContext(common.WithAuthenticated(r.Context())))
				return
			}
			if hasValidSession(r, authService) {
				next.ServeHTTP(w, r.WithContext(common.WithAuthenticated(r.Context())))
				return
			}

			logger.Warn("rejected unauthenticated request",
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
			)
			common.RespondError(w, http.StatusUnauthorized, common.StandardErrorCodes.Unauthorized, "login required")
		})
	}
}

func hasValidSession(r *http.Request, authService *appservices.AuthService) bool {
	cookie, err := r.Cookie(auth.SessionCookie)
	if err != nil || cookie.Value == "" {
		return false
	}
	return authService.VerifySession(cookie.Value) == nil
}
