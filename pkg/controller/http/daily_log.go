package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/model/auth"
	"github.com/standup-lab/standup/pkg/domain/types"
	"github.com/standup-lab/standup/pkg/usecase"
)

type logResponse struct {
	Log *model.DailyLog `json:"log"`
}

type feedResponse struct {
	Logs []*model.FeedEntry `json:"logs"`
}

type commentResponse struct {
	Comment *model.CommentEntry `json:"comment"`
}

func (s *Server) submitLogHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := auth.UserFromContext(ctx)
	if !ok {
		handleError(ctx, w, usecase.ErrUnauthenticated)
		return
	}

	var body struct {
		Yesterday   string `json:"yesterday"`
		Today       string `json:"today"`
		Impediments string `json:"impediments"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "Invalid input"})
		return
	}

	log, err := s.uc.DailyLog.Submit(ctx, user.ID, usecase.SubmitInput{
		Yesterday:   body.Yesterday,
		Today:       body.Today,
		Impediments: body.Impediments,
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, logResponse{Log: log})
}

// mineTodayHandler returns the caller's log for today, or a null log when
// none exists yet. Absence is 200, not 404.
func (s *Server) mineTodayHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := auth.UserFromContext(ctx)
	if !ok {
		handleError(ctx, w, usecase.ErrUnauthenticated)
		return
	}

	log, err := s.uc.DailyLog.Mine(ctx, user.ID)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, logResponse{Log: log})
}

func (s *Server) listTodayHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := s.uc.DailyLog.ListToday(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, feedResponse{Logs: entries})
}

func (s *Server) addCommentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := auth.UserFromContext(ctx)
	if !ok {
		handleError(ctx, w, usecase.ErrUnauthenticated)
		return
	}

	logID := types.LogID(chi.URLParam(r, "logID"))

	var body struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "Invalid input"})
		return
	}

	comment, err := s.uc.DailyLog.AddComment(ctx, logID, user.ID, body.Text)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, commentResponse{Comment: comment})
}
