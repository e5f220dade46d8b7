package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
)

type userRepository struct {
	mu      sync.RWMutex
	byID    map[types.UserID]*model.User
	byEmail map[string]types.UserID
}

func newUserRepository() *userRepository {
	return &userRepository{
		byID:    make(map[types.UserID]*model.User),
		byEmail: make(map[string]types.UserID),
	}
}

func copyUser(u *model.User) *model.User {
	copied := *u
	return &copied
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := user.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, goerr.Wrap(interfaces.ErrConflict, "email already registered", goerr.V("email", user.Email))
	}

	created := copyUser(user)
	r.byID[created.ID] = created
	r.byEmail[created.Email] = created.ID

	return copyUser(created), nil
}

func (r *userRepository) GetByID(ctx context.Context, id types.UserID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byID[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("user_id", id))
	}

	return copyUser(user), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byEmail[email]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("email", email))
	}

	return copyUser(r.byID[id]), nil
}
