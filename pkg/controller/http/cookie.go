package http

import (
	"net/http"

	"github.com/standup-lab/standup/pkg/service/token"
)

// cookieName is the session cookie carrying the signed token
const cookieName = "token"

func (s *Server) sessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(token.DefaultTTL.Seconds()),
	}
}

// clearedCookie expires the session cookie; used on logout and whenever a
// stale or forged cookie is seen so clients stop resending it
func (s *Server) clearedCookie() *http.Cookie {
	c := s.sessionCookie("")
	c.MaxAge = -1
	return c
}
