package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
)

// dayKey identifies one user's log slot for a calendar day
type dayKey struct {
	userID types.UserID
	day    time.Time
}

type dailyLogRepository struct {
	mu       sync.RWMutex
	logs     map[types.LogID]*model.DailyLog
	byDay    map[dayKey]types.LogID
	comments map[types.LogID][]*model.Comment
}

func newDailyLogRepository() *dailyLogRepository {
	return &dailyLogRepository{
		logs:     make(map[types.LogID]*model.DailyLog),
		byDay:    make(map[dayKey]types.LogID),
		comments: make(map[types.LogID][]*model.Comment),
	}
}

func copyLog(l *model.DailyLog) *model.DailyLog {
	copied := *l
	return &copied
}

func copyComment(c *model.Comment) *model.Comment {
	copied := *c
	return &copied
}

func (r *dailyLogRepository) Create(ctx context.Context, log *model.DailyLog) (*model.DailyLog, error) {
	if err := log.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid daily log")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey{userID: log.UserID, day: log.Day.UTC()}
	if _, exists := r.byDay[key]; exists {
		return nil, goerr.Wrap(interfaces.ErrConflict, "daily log already exists for this day",
			goerr.V("user_id", log.UserID), goerr.V("day", log.Day))
	}

	created := copyLog(log)
	r.logs[created.ID] = created
	r.byDay[key] = created.ID

	return copyLog(created), nil
}

func (r *dailyLogRepository) Get(ctx context.Context, id types.LogID) (*model.DailyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, exists := r.logs[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "daily log not found", goerr.V("log_id", id))
	}

	return copyLog(log), nil
}

func (r *dailyLogRepository) GetByUserAndDay(ctx context.Context, userID types.UserID, day time.Time) (*model.DailyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byDay[dayKey{userID: userID, day: day.UTC()}]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "daily log not found",
			goerr.V("user_id", userID), goerr.V("day", day))
	}

	return copyLog(r.logs[id]), nil
}

func (r *dailyLogRepository) ListByDay(ctx context.Context, day time.Time) ([]*model.DailyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := day
	end := day.Add(24 * time.Hour)

	logs := make([]*model.DailyLog, 0)
	for _, log := range r.logs {
		if !log.Day.Before(start) && log.Day.Before(end) {
			logs = append(logs, copyLog(log))
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})

	return logs, nil
}

func (r *dailyLogRepository) AddComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if err := comment.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid comment")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.logs[comment.LogID]; !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "daily log not found", goerr.V("log_id", comment.LogID))
	}

	created := copyComment(comment)
	r.comments[comment.LogID] = append(r.comments[comment.LogID], created)

	return copyComment(created), nil
}

func (r *dailyLogRepository) ListComments(ctx context.Context, logID types.LogID) ([]*model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comments := make([]*model.Comment, 0, len(r.comments[logID]))
	for _, c := range r.comments[logID] {
		comments = append(comments, copyComment(c))
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})

	return comments, nil
}
