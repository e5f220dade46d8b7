package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
)

type userRepository struct {
	db *sql.DB
}

func scanUser(row *sql.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := user.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user")
	}

	const q = `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, email, password_hash, role, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt)

	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, goerr.Wrap(interfaces.ErrConflict, "email already registered", goerr.V("email", user.Email))
		}
		return nil, goerr.Wrap(err, "failed to insert user")
	}

	return created, nil
}

func (r *userRepository) GetByID(ctx context.Context, id types.UserID) (*model.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users WHERE id = $1
	`
	user, err := scanUser(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("user_id", id))
		}
		return nil, goerr.Wrap(err, "failed to query user")
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users WHERE email = $1
	`
	user, err := scanUser(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("email", email))
		}
		return nil, goerr.Wrap(err, "failed to query user")
	}
	return user, nil
}
