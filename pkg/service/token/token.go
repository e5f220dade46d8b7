package token

import (
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/model/auth"
	"github.com/standup-lab/standup/pkg/domain/types"
)

// ErrInvalidToken is returned for every verification failure. Expired,
// malformed and forged tokens are indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTTL is the session token lifetime
const DefaultTTL = 24 * time.Hour

// Service issues and verifies signed session tokens. Tokens are stateless:
// validity is determined by signature and expiry alone, nothing is stored
// server-side.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option is a functional option for Service
type Option func(*Service)

// WithTTL overrides the token lifetime
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.ttl = ttl
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a token service with the given signing secret. The secret is
// copied once at construction and never read from elsewhere.
func New(secret string, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue creates a signed token binding the user's identity, email and role
func (s *Service) Issue(user *model.User) (string, error) {
	now := s.now()

	tok, err := jwt.NewBuilder().
		Subject(user.ID.String()).
		IssuedAt(now).
		Expiration(now.Add(s.ttl)).
		Claim("email", user.Email).
		Claim("role", user.Role.String()).
		Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build token")
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, s.secret))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign token")
	}

	return string(signed), nil
}

// Verify checks signature and expiry and returns the decoded claims. Every
// failure collapses to ErrInvalidToken.
func (s *Service) Verify(raw string) (*auth.Claims, error) {
	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, s.secret),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(s.now)),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims := &auth.Claims{
		UserID:    types.UserID(tok.Subject()),
		IssuedAt:  tok.IssuedAt(),
		ExpiresAt: tok.Expiration(),
	}
	if email, ok := tok.Get("email"); ok {
		if v, ok := email.(string); ok {
			claims.Email = v
		}
	}
	if role, ok := tok.Get("role"); ok {
		if v, ok := role.(string); ok {
			claims.Role = types.Role(v)
		}
	}

	if err := claims.Validate(); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
