package interfaces

import (
	"context"
	"time"

	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	User() UserRepository
	DailyLog() DailyLogRepository

	Close() error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user. Email uniqueness is enforced by the
	// backend; a duplicate returns ErrConflict and no row is created.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// GetByID retrieves a user by ID. Returns ErrNotFound when missing.
	GetByID(ctx context.Context, id types.UserID) (*model.User, error)

	// GetByEmail retrieves a user by exact email match. Returns ErrNotFound
	// when missing.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// DailyLogRepository defines the interface for daily log and comment access
type DailyLogRepository interface {
	// Create persists a new daily log. The (user, day) pair is unique and
	// enforced by the backend; a duplicate returns ErrConflict.
	Create(ctx context.Context, log *model.DailyLog) (*model.DailyLog, error)

	// Get retrieves a daily log by ID. Returns ErrNotFound when missing.
	Get(ctx context.Context, id types.LogID) (*model.DailyLog, error)

	// GetByUserAndDay retrieves a user's log for the given day (start of
	// day). Returns ErrNotFound when the user has not submitted yet.
	GetByUserAndDay(ctx context.Context, userID types.UserID, day time.Time) (*model.DailyLog, error)

	// ListByDay retrieves all logs whose day falls within [day, day+24h),
	// newest created first.
	ListByDay(ctx context.Context, day time.Time) ([]*model.DailyLog, error)

	// AddComment appends a comment to a log. Returns ErrNotFound when the
	// log does not exist; nothing is created in that case.
	AddComment(ctx context.Context, comment *model.Comment) (*model.Comment, error)

	// ListComments retrieves a log's comments, oldest first.
	ListComments(ctx context.Context, logID types.LogID) ([]*model.Comment, error)
}
