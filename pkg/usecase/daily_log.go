package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
)

// DailyLogUseCase implements submission and visibility of daily standup logs
type DailyLogUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func NewDailyLogUseCase(repo interfaces.Repository, opts ...DailyLogOption) *DailyLogUseCase {
	uc := &DailyLogUseCase{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// DailyLogOption is a functional option for DailyLogUseCase
type DailyLogOption func(*DailyLogUseCase)

// WithClock overrides the time source
func WithClock(now func() time.Time) DailyLogOption {
	return func(uc *DailyLogUseCase) {
		uc.now = now
	}
}

// SubmitInput is the payload for Submit
type SubmitInput struct {
	Yesterday   string
	Today       string
	Impediments string
}

func (x *SubmitInput) validate() error {
	v := newValidationError()
	if x.Yesterday == "" {
		v.Add("yesterday", "Yesterday's update cannot be empty")
	}
	if x.Today == "" {
		v.Add("today", "Today's plan cannot be empty")
	}
	return v.OrNil()
}

// Submit creates the caller's log for the current calendar day. The log's
// day is stored as start-of-day so same-day matching is stable. A second
// submission on the same day yields ErrAlreadySubmitted; the one-per-day
// invariant is enforced by the repository backend.
func (uc *DailyLogUseCase) Submit(ctx context.Context, userID types.UserID, input SubmitInput) (*model.DailyLog, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := uc.now()
	log := &model.DailyLog{
		ID:          types.NewLogID(),
		UserID:      userID,
		Day:         model.StartOfDay(now),
		Yesterday:   input.Yesterday,
		Today:       input.Today,
		Impediments: input.Impediments,
		CreatedAt:   now,
	}

	created, err := uc.repo.DailyLog().Create(ctx, log)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return nil, ErrAlreadySubmitted
		}
		return nil, goerr.Wrap(err, "failed to create daily log", goerr.V("user_id", userID))
	}

	return created, nil
}

// Mine returns the caller's log for the current calendar day, or nil when
// no log exists yet. Absence is not an error.
func (uc *DailyLogUseCase) Mine(ctx context.Context, userID types.UserID) (*model.DailyLog, error) {
	day := model.StartOfDay(uc.now())

	log, err := uc.repo.DailyLog().GetByUserAndDay(ctx, userID, day)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get daily log", goerr.V("user_id", userID))
	}

	return log, nil
}

// ListToday returns every log of the current calendar day, newest created
// first, each with its author's profile and its comments oldest first.
func (uc *DailyLogUseCase) ListToday(ctx context.Context) ([]*model.FeedEntry, error) {
	day := model.StartOfDay(uc.now())

	logs, err := uc.repo.DailyLog().ListByDay(ctx, day)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list daily logs")
	}

	profiles := map[types.UserID]*model.Profile{}
	profileOf := func(userID types.UserID) (*model.Profile, error) {
		if p, ok := profiles[userID]; ok {
			return p, nil
		}
		user, err := uc.repo.User().GetByID(ctx, userID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve author", goerr.V("user_id", userID))
		}
		p := user.Profile()
		profiles[userID] = p
		return p, nil
	}

	entries := make([]*model.FeedEntry, 0, len(logs))
	for _, log := range logs {
		author, err := profileOf(log.UserID)
		if err != nil {
			return nil, err
		}

		comments, err := uc.repo.DailyLog().ListComments(ctx, log.ID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list comments", goerr.V("log_id", log.ID))
		}

		commentEntries := make([]*model.CommentEntry, 0, len(comments))
		for _, c := range comments {
			commenter, err := profileOf(c.UserID)
			if err != nil {
				return nil, err
			}
			commentEntries = append(commentEntries, &model.CommentEntry{
				Comment: c,
				User:    commenter,
			})
		}

		entries = append(entries, &model.FeedEntry{
			DailyLog: log,
			User:     author,
			Comments: commentEntries,
		})
	}

	return entries, nil
}

// AddComment appends a comment to an existing log and returns it with the
// commenter's profile. A missing log yields ErrLogNotFound and creates
// nothing.
func (uc *DailyLogUseCase) AddComment(ctx context.Context, logID types.LogID, userID types.UserID, text string) (*model.CommentEntry, error) {
	v := newValidationError()
	if text == "" {
		v.Add("text", "Comment text cannot be empty")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:        types.NewCommentID(),
		LogID:     logID,
		UserID:    userID,
		Text:      text,
		CreatedAt: uc.now(),
	}

	created, err := uc.repo.DailyLog().AddComment(ctx, comment)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, goerr.Wrap(err, "failed to add comment", goerr.V("log_id", logID))
	}

	commenter, err := uc.repo.User().GetByID(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve commenter", goerr.V("user_id", userID))
	}

	return &model.CommentEntry{
		Comment: created,
		User:    commenter.Profile(),
	}, nil
}
