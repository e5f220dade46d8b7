package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/standup-lab/standup/pkg/domain/model/auth"
	"github.com/standup-lab/standup/pkg/usecase"
	"github.com/standup-lab/standup/pkg/utils/logging"
)

// bearerToken extracts the token from the Authorization header, falling
// back to the session cookie
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// authMiddleware is the session gate for protected routes. It verifies the
// token, resolves its subject against the user store (a valid token can
// outlive its user), and attaches the resolved identity to the context.
// Invalid and stale cookies are cleared so clients stop resending them.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw := bearerToken(r)
		if raw == "" {
			writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized: No token provided"})
			return
		}

		claims, err := s.tokens.Verify(raw)
		if err != nil {
			http.SetCookie(w, s.clearedCookie())
			writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized: Invalid or expired token"})
			return
		}

		user, err := s.uc.Auth.CurrentUser(ctx, claims.UserID)
		if err != nil {
			http.SetCookie(w, s.clearedCookie())
			handleError(ctx, w, usecase.ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(ctx, user)))
	})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
