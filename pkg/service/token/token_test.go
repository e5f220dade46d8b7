package token_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
	"github.com/standup-lab/standup/pkg/service/token"
)

func testUser() *model.User {
	return &model.User{
		ID:    types.NewUserID(),
		Name:  "Alice Cooper",
		Email: "alice@example.com",
		Role:  types.RoleProjectManager,
	}
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	svc := token.New("test-secret", token.WithClock(func() time.Time { return now }))
	user := testUser()

	signed, err := svc.Issue(user)
	gt.NoError(t, err).Required()
	gt.String(t, signed).NotEqual("")

	claims, err := svc.Verify(signed)
	gt.NoError(t, err).Required()

	gt.Value(t, claims.UserID).Equal(user.ID)
	gt.Value(t, claims.Email).Equal(user.Email)
	gt.Value(t, claims.Role).Equal(user.Role)
	gt.Bool(t, claims.IssuedAt.Equal(now)).True()
	gt.Bool(t, claims.ExpiresAt.Equal(now.Add(token.DefaultTTL))).True()
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := token.New("secret-a")
	verifier := token.New("secret-b")

	signed, err := issuer.Issue(testUser())
	gt.NoError(t, err).Required()

	_, err = verifier.Verify(signed)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, token.ErrInvalidToken)).True()
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	issuer := token.New("test-secret",
		token.WithTTL(time.Hour),
		token.WithClock(func() time.Time { return issuedAt }),
	)
	signed, err := issuer.Issue(testUser())
	gt.NoError(t, err).Required()

	// Same secret, clock past the expiry
	verifier := token.New("test-secret",
		token.WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) }),
	)
	_, err = verifier.Verify(signed)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, token.ErrInvalidToken)).True()
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := token.New("test-secret")

	for _, raw := range []string{"", "not-a-token", "aaaa.bbbb.cccc"} {
		_, err := svc.Verify(raw)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, token.ErrInvalidToken)).True()
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := token.HashPassword("hunter2secret")
	gt.NoError(t, err).Required()
	gt.String(t, hash).NotEqual("hunter2secret")

	gt.Bool(t, token.VerifyPassword("hunter2secret", hash)).True()
	gt.Bool(t, token.VerifyPassword("wrong-password", hash)).False()
	gt.Bool(t, token.VerifyPassword("hunter2secret", "not-a-hash")).False()

	// Two hashes of the same password differ by salt but both verify
	hash2, err := token.HashPassword("hunter2secret")
	gt.NoError(t, err).Required()
	gt.String(t, hash2).NotEqual(hash)
	gt.Bool(t, token.VerifyPassword("hunter2secret", hash2)).True()
}
