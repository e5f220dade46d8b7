package auth

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/types"
)

// Claims is the verified content of a session token
type Claims struct {
	UserID    types.UserID
	Email     string
	Role      types.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Validate checks that the claims carry a subject
func (x *Claims) Validate() error {
	if err := x.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "claims have no subject")
	}
	return nil
}
