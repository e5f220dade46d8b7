package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
	"github.com/standup-lab/standup/pkg/service/token"
)

// AuthUseCase implements registration, login and identity resolution
type AuthUseCase struct {
	repo   interfaces.Repository
	tokens *token.Service
	now    func() time.Time
}

func NewAuthUseCase(repo interfaces.Repository, tokens *token.Service, opts ...AuthOption) *AuthUseCase {
	uc := &AuthUseCase{
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// AuthOption is a functional option for AuthUseCase
type AuthOption func(*AuthUseCase)

// WithAuthClock overrides the time source
func WithAuthClock(now func() time.Time) AuthOption {
	return func(uc *AuthUseCase) {
		uc.now = now
	}
}

// RegisterInput is the payload for Register
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func (x *RegisterInput) validate() error {
	v := newValidationError()
	if len(x.Name) < 2 {
		v.Add("name", "Name must be at least 2 characters long")
	}
	if !validEmail(x.Email) {
		v.Add("email", "Invalid email address")
	}
	if len(x.Password) < 6 {
		v.Add("password", "Password must be at least 6 characters long")
	}
	if x.Role != "" {
		if err := types.Role(x.Role).Validate(); err != nil {
			v.Add("role", "Invalid role")
		}
	}
	return v.OrNil()
}

// Register validates the input, hashes the password and creates the user.
// A duplicate email yields ErrEmailTaken; uniqueness is enforced by the
// repository backend, not by a pre-check. The returned user carries no
// credential hash.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	role := types.Role(input.Role)
	if input.Role == "" {
		role = types.DefaultRole
	}

	hash, err := token.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	user := &model.User{
		ID:           types.NewUserID(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := uc.repo.User().Create(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, goerr.Wrap(err, "failed to create user")
	}

	return created.Sanitize(), nil
}

// LoginInput is the payload for Login
type LoginInput struct {
	Email    string
	Password string
}

func (x *LoginInput) validate() error {
	v := newValidationError()
	if !validEmail(x.Email) {
		v.Add("email", "Invalid email address")
	}
	if x.Password == "" {
		v.Add("password", "Password cannot be empty")
	}
	return v.OrNil()
}

// Login authenticates by email and password and issues a session token.
// Unknown email and wrong password produce the same ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*model.User, string, error) {
	if err := input.validate(); err != nil {
		return nil, "", err
	}

	user, err := uc.repo.User().GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", goerr.Wrap(err, "failed to look up user")
	}

	if !token.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	signed, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to issue token")
	}

	return user.Sanitize(), signed, nil
}

// CurrentUser resolves a user ID from verified claims to a sanitized user.
// A missing user means a valid token outlived its subject; the caller is
// unauthenticated.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID types.UserID) (*model.User, error) {
	user, err := uc.repo.User().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, goerr.Wrap(err, "failed to look up user", goerr.V("user_id", userID))
	}
	return user.Sanitize(), nil
}
