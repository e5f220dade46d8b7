package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/standup-lab/standup/pkg/service/token"
	"github.com/standup-lab/standup/pkg/usecase"
)

// Server is the HTTP surface of the service. Every route outside the
// public set (register, login, health) sits behind the session gate.
type Server struct {
	router       *chi.Mux
	uc           *usecase.UseCases
	tokens       *token.Service
	secureCookie bool
}

type Options func(*Server)

// WithSecureCookie marks the session cookie Secure; set in production
// deployments behind TLS
func WithSecureCookie(enabled bool) Options {
	return func(s *Server) {
		s.secureCookie = enabled
	}
}

func New(uc *usecase.UseCases, tokens *token.Service, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.registerHandler)
		r.Post("/login", s.loginHandler)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Get("/me", s.meHandler)
			r.Post("/logout", s.logoutHandler)
		})
	})

	r.Route("/daily-log", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Post("/", s.submitLogHandler)
		r.Get("/mine/today", s.mineTodayHandler)
		r.Get("/today", s.listTodayHandler)
		r.Post("/{logID}/comments", s.addCommentHandler)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
