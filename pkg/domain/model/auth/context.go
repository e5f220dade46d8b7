package auth

import (
	"context"

	"github.com/standup-lab/standup/pkg/domain/model"
)

type ctxKey struct{}

// ContextWithUser attaches the authenticated user to the request context
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext retrieves the authenticated user from the context
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(*model.User)
	return user, ok
}
