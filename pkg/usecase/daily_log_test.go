package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
	"github.com/standup-lab/standup/pkg/repository/memory"
	"github.com/standup-lab/standup/pkg/service/token"
	"github.com/standup-lab/standup/pkg/usecase"
)

func registerUser(t *testing.T, uc *usecase.UseCases, name, email string) types.UserID {
	t.Helper()
	user, err := uc.Auth.Register(context.Background(), usecase.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "password123",
	})
	gt.NoError(t, err).Required()
	return user.ID
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates log pinned to start of day", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 14, 45, 10, 0, time.UTC)
		uc := newTestUseCases(t, usecase.WithDailyLogOptions(
			usecase.WithClock(func() time.Time { return now }),
		))
		userID := registerUser(t, uc, "Alice Cooper", "alice@example.com")

		log, err := uc.DailyLog.Submit(ctx, userID, usecase.SubmitInput{
			Yesterday:   "Reviewed the login flow",
			Today:       "Wire up the comment form",
			Impediments: "Waiting on design feedback",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, log.ID.Validate())
		gt.Value(t, log.UserID).Equal(userID)
		gt.Bool(t, log.Day.Equal(model.StartOfDay(now))).True()
		gt.Value(t, log.Yesterday).Equal("Reviewed the login flow")
		gt.Value(t, log.Today).Equal("Wire up the comment form")
		gt.Value(t, log.Impediments).Equal("Waiting on design feedback")
	})

	t.Run("rejects a second log on the same day", func(t *testing.T) {
		uc := newTestUseCases(t)
		userID := registerUser(t, uc, "Alice Cooper", "alice@example.com")

		_, err := uc.DailyLog.Submit(ctx, userID, usecase.SubmitInput{
			Yesterday: "Reviewed the login flow",
			Today:     "Wire up the comment form",
		})
		gt.NoError(t, err).Required()

		_, err = uc.DailyLog.Submit(ctx, userID, usecase.SubmitInput{
			Yesterday: "Trying again",
			Today:     "Still trying",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrAlreadySubmitted)).True()
	})

	t.Run("allows logs on different days", func(t *testing.T) {
		repo := memory.New()
		tokens := token.New("test-secret")

		monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
		tuesday := monday.Add(24 * time.Hour)

		ucMon := usecase.New(repo, tokens, usecase.WithDailyLogOptions(
			usecase.WithClock(func() time.Time { return monday }),
		))
		ucTue := usecase.New(repo, tokens, usecase.WithDailyLogOptions(
			usecase.WithClock(func() time.Time { return tuesday }),
		))
		userID := registerUser(t, ucMon, "Alice Cooper", "alice@example.com")

		_, err := ucMon.DailyLog.Submit(ctx, userID, usecase.SubmitInput{
			Yesterday: "Weekend",
			Today:     "Monday plan",
		})
		gt.NoError(t, err).Required()

		_, err = ucTue.DailyLog.Submit(ctx, userID, usecase.SubmitInput{
			Yesterday: "Monday work",
			Today:     "Tuesday plan",
		})
		gt.NoError(t, err)
	})

	t.Run("allows different users on the same day", func(t *testing.T) {
		uc := newTestUseCases(t)
		alice := registerUser(t, uc, "Alice Cooper", "alice@example.com")
		bob := registerUser(t, uc, "Bob Marley", "bob@example.com")

		_, err := uc.DailyLog.Submit(ctx, alice, usecase.SubmitInput{
			Yesterday: "Alice's yesterday",
			Today:     "Alice's today",
		})
		gt.NoError(t, err).Required()

		_, err = uc.DailyLog.Submit(ctx, bob, usecase.SubmitInput{
			Yesterday: "Bob's yesterday",
			Today:     "Bob's today",
		})
		gt.NoError(t, err)
	})

	t.Run("rejects empty updates with per-field details", func(t *testing.T) {
		uc := newTestUseCases(t)
		userID := registerUser(t, uc, "Alice Cooper", "alice@example.com")

		_, err := uc.DailyLog.Submit(ctx, userID, usecase.SubmitInput{})
		gt.Error(t, err)

		var ve *usecase.ValidationError
		gt.Bool(t, errors.As(err, &ve)).True()
		gt.Array(t, ve.Fields["yesterday"]).Length(1)
		gt.Array(t, ve.Fields["today"]).Length(1)
	})

	t.Run("concurrent submissions yield exactly one log", func(t *testing.T) {
		uc := newTestUseCases(t)
		userID := registerUser(t, uc, "Alice Cooper", "alice@example.com")

		const attempts = 10
		var wg sync.WaitGroup
		errs := make([]error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = uc.DailyLog.Submit(ctx, userID, usecase.SubmitInput{
					Yesterday: "Racing",
					Today:     "Racing",
				})
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				gt.Bool(t, errors.Is(err, usecase.ErrAlreadySubmitted)).True()
			}
		}
		gt.Value(t, succeeded).Equal(1)
	})
}

func TestMine(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil without error when nothing was submitted", func(t *testing.T) {
		uc := newTestUseCases(t)
		userID := registerUser(t, uc, "Alice Cooper", "alice@example.com")

		log, err := uc.DailyLog.Mine(ctx, userID)
		gt.NoError(t, err).Required()
		gt.Bool(t, log == nil).True()
	})

	t.Run("returns today's log after submission", func(t *testing.T) {
		uc := newTestUseCases(t)
		userID := registerUser(t, uc, "Alice Cooper", "alice@example.com")

		submitted, err := uc.DailyLog.Submit(ctx, userID, usecase.SubmitInput{
			Yesterday: "Reviewed PRs",
			Today:     "Writing tests",
		})
		gt.NoError(t, err).Required()

		log, err := uc.DailyLog.Mine(ctx, userID)
		gt.NoError(t, err).Required()
		gt.Value(t, log.ID).Equal(submitted.ID)
	})

	t.Run("does not see yesterday's log", func(t *testing.T) {
		repo := memory.New()
		tokens := token.New("test-secret")

		monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
		tuesday := monday.Add(24 * time.Hour)

		ucMon := usecase.New(repo, tokens, usecase.WithDailyLogOptions(
			usecase.WithClock(func() time.Time { return monday }),
		))
		ucTue := usecase.New(repo, tokens, usecase.WithDailyLogOptions(
			usecase.WithClock(func() time.Time { return tuesday }),
		))
		userID := registerUser(t, ucMon, "Alice Cooper", "alice@example.com")

		_, err := ucMon.DailyLog.Submit(ctx, userID, usecase.SubmitInput{
			Yesterday: "Weekend",
			Today:     "Monday plan",
		})
		gt.NoError(t, err).Required()

		log, err := ucTue.DailyLog.Mine(ctx, userID)
		gt.NoError(t, err).Required()
		gt.Bool(t, log == nil).True()
	})
}

func TestListToday(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only today's logs, newest first, with author profiles", func(t *testing.T) {
		repo := memory.New()
		tokens := token.New("test-secret")

		base := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
		clock := base
		uc := usecase.New(repo, tokens, usecase.WithDailyLogOptions(
			usecase.WithClock(func() time.Time { return clock }),
		))
		alice := registerUser(t, uc, "Alice Cooper", "alice@example.com")
		bob := registerUser(t, uc, "Bob Marley", "bob@example.com")

		// Yesterday's log must not appear in today's feed
		ucYesterday := usecase.New(repo, tokens, usecase.WithDailyLogOptions(
			usecase.WithClock(func() time.Time { return base.Add(-24 * time.Hour) }),
		))
		_, err := ucYesterday.DailyLog.Submit(ctx, alice, usecase.SubmitInput{
			Yesterday: "Old news",
			Today:     "Old plan",
		})
		gt.NoError(t, err).Required()

		_, err = uc.DailyLog.Submit(ctx, alice, usecase.SubmitInput{
			Yesterday: "Reviewed PRs",
			Today:     "Writing tests",
		})
		gt.NoError(t, err).Required()

		clock = base.Add(time.Minute)
		bobLog, err := uc.DailyLog.Submit(ctx, bob, usecase.SubmitInput{
			Yesterday: "Design review",
			Today:     "Mockups",
		})
		gt.NoError(t, err).Required()

		entries, err := uc.DailyLog.ListToday(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(2)

		// Bob submitted later, so his log leads the feed
		gt.Value(t, entries[0].ID).Equal(bobLog.ID)
		gt.Value(t, entries[0].User.ID).Equal(bob)
		gt.Value(t, entries[0].User.Name).Equal("Bob Marley")
		gt.Value(t, entries[1].User.ID).Equal(alice)

		gt.Array(t, entries[0].Comments).Length(0)
	})

	t.Run("attaches comments oldest first with commenter profiles", func(t *testing.T) {
		base := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
		clock := base
		repo := memory.New()
		uc := usecase.New(repo, token.New("test-secret"), usecase.WithDailyLogOptions(
			usecase.WithClock(func() time.Time { return clock }),
		))
		alice := registerUser(t, uc, "Alice Cooper", "alice@example.com")
		bob := registerUser(t, uc, "Bob Marley", "bob@example.com")

		log, err := uc.DailyLog.Submit(ctx, alice, usecase.SubmitInput{
			Yesterday: "Reviewed PRs",
			Today:     "Writing tests",
		})
		gt.NoError(t, err).Required()

		_, err = uc.DailyLog.AddComment(ctx, log.ID, bob, "First comment")
		gt.NoError(t, err).Required()

		clock = base.Add(time.Minute)
		_, err = uc.DailyLog.AddComment(ctx, log.ID, alice, "Second comment")
		gt.NoError(t, err).Required()

		entries, err := uc.DailyLog.ListToday(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(1)

		comments := entries[0].Comments
		gt.Array(t, comments).Length(2)
		gt.Value(t, comments[0].Text).Equal("First comment")
		gt.Value(t, comments[0].User.Name).Equal("Bob Marley")
		gt.Value(t, comments[1].Text).Equal("Second comment")
		gt.Value(t, comments[1].User.Name).Equal("Alice Cooper")
	})

	t.Run("empty feed is an empty slice", func(t *testing.T) {
		uc := newTestUseCases(t)

		entries, err := uc.DailyLog.ListToday(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, entries).Length(0)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the comment with the commenter's profile", func(t *testing.T) {
		uc := newTestUseCases(t)
		alice := registerUser(t, uc, "Alice Cooper", "alice@example.com")
		bob := registerUser(t, uc, "Bob Marley", "bob@example.com")

		log, err := uc.DailyLog.Submit(ctx, alice, usecase.SubmitInput{
			Yesterday: "Reviewed PRs",
			Today:     "Writing tests",
		})
		gt.NoError(t, err).Required()

		comment, err := uc.DailyLog.AddComment(ctx, log.ID, bob, "Nice progress")
		gt.NoError(t, err).Required()

		gt.NoError(t, comment.ID.Validate())
		gt.Value(t, comment.LogID).Equal(log.ID)
		gt.Value(t, comment.Text).Equal("Nice progress")
		gt.Value(t, comment.User.ID).Equal(bob)
		gt.Value(t, comment.User.Name).Equal("Bob Marley")
	})

	t.Run("rejects comment on a missing log", func(t *testing.T) {
		uc := newTestUseCases(t)
		bob := registerUser(t, uc, "Bob Marley", "bob@example.com")

		_, err := uc.DailyLog.AddComment(ctx, types.NewLogID(), bob, "Into the void")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrLogNotFound)).True()
	})

	t.Run("rejects empty text before touching the store", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo, token.New("test-secret"))
		alice := registerUser(t, uc, "Alice Cooper", "alice@example.com")

		log, err := uc.DailyLog.Submit(ctx, alice, usecase.SubmitInput{
			Yesterday: "Reviewed PRs",
			Today:     "Writing tests",
		})
		gt.NoError(t, err).Required()

		_, err = uc.DailyLog.AddComment(ctx, log.ID, alice, "")
		gt.Error(t, err)

		var ve *usecase.ValidationError
		gt.Bool(t, errors.As(err, &ve)).True()
		gt.Array(t, ve.Fields["text"]).Length(1)

		comments, err := repo.DailyLog().ListComments(ctx, log.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, comments).Length(0)
	})
}
