package firestore

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	dailyLogsCollection    = "daily_logs"
	dailyLogDaysCollection = "daily_log_days"
	commentsCollection     = "comments"
)

type dailyLogRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newDailyLogRepository(client *firestore.Client) *dailyLogRepository {
	return &dailyLogRepository{client: client}
}

func (r *dailyLogRepository) collection(name string) *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + name)
}

// daySlot reserves one user's log slot for a calendar day; its document ID
// is userID_yyyymmdd, which makes the one-per-day check atomic
type daySlot struct {
	LogID string `firestore:"log_id"`
}

func daySlotID(userID types.UserID, day time.Time) string {
	return userID.String() + "_" + day.UTC().Format("20060102")
}

func (r *dailyLogRepository) Create(ctx context.Context, log *model.DailyLog) (*model.DailyLog, error) {
	if err := log.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid daily log")
	}

	slotRef := r.collection(dailyLogDaysCollection).Doc(daySlotID(log.UserID, log.Day))
	logRef := r.collection(dailyLogsCollection).Doc(log.ID.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(slotRef, daySlot{LogID: log.ID.String()}); err != nil {
			return err
		}
		return tx.Create(logRef, log)
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(interfaces.ErrConflict, "daily log already exists for this day",
				goerr.V("user_id", log.UserID), goerr.V("day", log.Day))
		}
		return nil, goerr.Wrap(err, "failed to create daily log in firestore")
	}

	created := *log
	return &created, nil
}

func (r *dailyLogRepository) Get(ctx context.Context, id types.LogID) (*model.DailyLog, error) {
	doc, err := r.collection(dailyLogsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "daily log not found", goerr.V("log_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get daily log from firestore")
	}

	var log model.DailyLog
	if err := doc.DataTo(&log); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal daily log")
	}

	return &log, nil
}

func (r *dailyLogRepository) GetByUserAndDay(ctx context.Context, userID types.UserID, day time.Time) (*model.DailyLog, error) {
	doc, err := r.collection(dailyLogDaysCollection).Doc(daySlotID(userID, day)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "daily log not found",
				goerr.V("user_id", userID), goerr.V("day", day))
		}
		return nil, goerr.Wrap(err, "failed to get day slot from firestore")
	}

	var slot daySlot
	if err := doc.DataTo(&slot); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal day slot")
	}

	return r.Get(ctx, types.LogID(slot.LogID))
}

func (r *dailyLogRepository) ListByDay(ctx context.Context, day time.Time) ([]*model.DailyLog, error) {
	start := day
	end := day.Add(24 * time.Hour)

	iter := r.collection(dailyLogsCollection).
		Where("day", ">=", start).
		Where("day", "<", end).
		Documents(ctx)
	defer iter.Stop()

	logs := make([]*model.DailyLog, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate daily logs")
		}

		var log model.DailyLog
		if err := doc.DataTo(&log); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal daily log")
		}
		logs = append(logs, &log)
	}

	// Sorted here rather than with OrderBy: a range filter on day plus an
	// order on created_at would require a composite index.
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})

	return logs, nil
}

func (r *dailyLogRepository) AddComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if err := comment.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid comment")
	}

	logRef := r.collection(dailyLogsCollection).Doc(comment.LogID.String())
	commentRef := logRef.Collection(commentsCollection).Doc(comment.ID.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(logRef); err != nil {
			return err
		}
		return tx.Create(commentRef, comment)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "daily log not found", goerr.V("log_id", comment.LogID))
		}
		return nil, goerr.Wrap(err, "failed to create comment in firestore")
	}

	created := *comment
	return &created, nil
}

func (r *dailyLogRepository) ListComments(ctx context.Context, logID types.LogID) ([]*model.Comment, error) {
	iter := r.collection(dailyLogsCollection).Doc(logID.String()).
		Collection(commentsCollection).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	comments := make([]*model.Comment, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate comments")
		}

		var comment model.Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal comment")
		}
		comments = append(comments, &comment)
	}

	return comments, nil
}
