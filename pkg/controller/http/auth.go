package http

import (
	"net/http"

	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/model/auth"
	"github.com/standup-lab/standup/pkg/usecase"
)

type userResponse struct {
	User *model.User `json:"user"`
}

type loginResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "Invalid input"})
		return
	}

	user, err := s.uc.Auth.Register(ctx, usecase.RegisterInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, userResponse{User: user})
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "Invalid input"})
		return
	}

	user, signed, err := s.uc.Auth.Login(ctx, usecase.LoginInput{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	// The token goes out twice: in the cookie for web clients and in the
	// body for bearer-token clients.
	http.SetCookie(w, s.sessionCookie(signed))
	writeJSON(ctx, w, http.StatusOK, loginResponse{User: user, Token: signed})
}

// logoutHandler clears the session cookie. Tokens are stateless, so this is
// a client-side convention: an already-issued token stays valid until it
// expires.
func (s *Server) logoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.clearedCookie())
	writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) meHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := auth.UserFromContext(ctx)
	if !ok {
		handleError(ctx, w, usecase.ErrUnauthenticated)
		return
	}

	writeJSON(ctx, w, http.StatusOK, userResponse{User: user})
}
