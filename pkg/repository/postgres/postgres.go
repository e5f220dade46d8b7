package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
)

// Postgres is the relational repository. Uniqueness invariants live in
// unique indexes; a constraint violation surfaces as ErrConflict, so there
// is no check-then-create race.
type Postgres struct {
	db    *sql.DB
	users *userRepository
	logs  *dailyLogRepository
}

var _ interfaces.Repository = &Postgres{}

func New(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open postgres connection")
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to ping postgres")
	}

	return &Postgres{
		db:    db,
		users: &userRepository{db: db},
		logs:  &dailyLogRepository{db: db},
	}, nil
}

func (p *Postgres) User() interfaces.UserRepository {
	return p.users
}

func (p *Postgres) DailyLog() interfaces.DailyLogRepository {
	return p.logs
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_logs (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL REFERENCES users(id),
	day         TIMESTAMPTZ NOT NULL,
	yesterday   TEXT NOT NULL,
	today       TEXT NOT NULL,
	impediments TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL,
	UNIQUE (user_id, day)
);

CREATE TABLE IF NOT EXISTS comments (
	id         TEXT PRIMARY KEY,
	log_id     TEXT NOT NULL REFERENCES daily_logs(id),
	user_id    TEXT NOT NULL REFERENCES users(id),
	text       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_daily_logs_day ON daily_logs (day);
CREATE INDEX IF NOT EXISTS idx_comments_log_id ON comments (log_id, created_at);
`

// Migrate creates the schema, including the unique indexes that enforce the
// email and one-log-per-day invariants
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return goerr.Wrap(err, "failed to apply schema")
	}
	return nil
}
