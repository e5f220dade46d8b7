package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
)

type dailyLogRepository struct {
	db *sql.DB
}

func scanLog(row *sql.Row) (*model.DailyLog, error) {
	l := &model.DailyLog{}
	err := row.Scan(&l.ID, &l.UserID, &l.Day, &l.Yesterday, &l.Today, &l.Impediments, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *dailyLogRepository) Create(ctx context.Context, log *model.DailyLog) (*model.DailyLog, error) {
	if err := log.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid daily log")
	}

	const q = `
		INSERT INTO daily_logs (id, user_id, day, yesterday, today, impediments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, day, yesterday, today, impediments, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		log.ID, log.UserID, log.Day, log.Yesterday, log.Today, log.Impediments, log.CreatedAt)

	created, err := scanLog(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, goerr.Wrap(interfaces.ErrConflict, "daily log already exists for this day",
				goerr.V("user_id", log.UserID), goerr.V("day", log.Day))
		}
		return nil, goerr.Wrap(err, "failed to insert daily log")
	}

	return created, nil
}

func (r *dailyLogRepository) Get(ctx context.Context, id types.LogID) (*model.DailyLog, error) {
	const q = `
		SELECT id, user_id, day, yesterday, today, impediments, created_at
		FROM daily_logs WHERE id = $1
	`
	log, err := scanLog(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "daily log not found", goerr.V("log_id", id))
		}
		return nil, goerr.Wrap(err, "failed to query daily log")
	}
	return log, nil
}

func (r *dailyLogRepository) GetByUserAndDay(ctx context.Context, userID types.UserID, day time.Time) (*model.DailyLog, error) {
	const q = `
		SELECT id, user_id, day, yesterday, today, impediments, created_at
		FROM daily_logs WHERE user_id = $1 AND day = $2
	`
	log, err := scanLog(r.db.QueryRowContext(ctx, q, userID, day))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "daily log not found",
				goerr.V("user_id", userID), goerr.V("day", day))
		}
		return nil, goerr.Wrap(err, "failed to query daily log")
	}
	return log, nil
}

func (r *dailyLogRepository) ListByDay(ctx context.Context, day time.Time) ([]*model.DailyLog, error) {
	const q = `
		SELECT id, user_id, day, yesterday, today, impediments, created_at
		FROM daily_logs
		WHERE day >= $1 AND day < $2
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, day, day.Add(24*time.Hour))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query daily logs")
	}
	defer rows.Close()

	logs := make([]*model.DailyLog, 0)
	for rows.Next() {
		l := &model.DailyLog{}
		if err := rows.Scan(&l.ID, &l.UserID, &l.Day, &l.Yesterday, &l.Today, &l.Impediments, &l.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan daily log")
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate daily logs")
	}

	return logs, nil
}

func (r *dailyLogRepository) AddComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if err := comment.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid comment")
	}

	// The foreign key on log_id doubles as the existence check; a violation
	// means the target log is gone.
	const q = `
		INSERT INTO comments (id, log_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, log_id, user_id, text, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		comment.ID, comment.LogID, comment.UserID, comment.Text, comment.CreatedAt)

	created := &model.Comment{}
	if err := row.Scan(&created.ID, &created.LogID, &created.UserID, &created.Text, &created.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "daily log not found", goerr.V("log_id", comment.LogID))
		}
		return nil, goerr.Wrap(err, "failed to insert comment")
	}

	return created, nil
}

func (r *dailyLogRepository) ListComments(ctx context.Context, logID types.LogID) ([]*model.Comment, error) {
	const q = `
		SELECT id, log_id, user_id, text, created_at
		FROM comments WHERE log_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, q, logID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query comments")
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		c := &model.Comment{}
		if err := rows.Scan(&c.ID, &c.LogID, &c.UserID, &c.Text, &c.CreatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan comment")
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate comments")
	}

	return comments, nil
}
