package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/service/token"
	"github.com/standup-lab/standup/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// devTokenSecret is the fallback signing secret for local development only
const devTokenSecret = "standup-insecure-dev-secret"

// Auth holds CLI flags for session token configuration
type Auth struct {
	tokenSecret string
	env         string
}

// Flags returns CLI flags for auth configuration
func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "token-secret",
			Usage:       "Signing secret for session tokens (set a long random value in production)",
			Category:    "Authentication",
			Value:       devTokenSecret,
			Sources:     cli.EnvVars("STANDUP_TOKEN_SECRET"),
			Destination: &x.tokenSecret,
		},
		&cli.StringFlag{
			Name:        "env",
			Usage:       "Deployment environment (development or production)",
			Category:    "Authentication",
			Value:       "development",
			Sources:     cli.EnvVars("STANDUP_ENV"),
			Destination: &x.env,
		},
	}
}

func (x Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token-secret.len", len(x.tokenSecret)),
		slog.String("env", x.env),
	)
}

// IsProduction reports whether this is a production configuration
func (x *Auth) IsProduction() bool {
	return x.env == "production"
}

// Configure builds the token service. The secret is loaded once here and
// injected; nothing reads it from the environment afterwards. A production
// configuration still running on the development default is loudly flagged.
func (x *Auth) Configure() (*token.Service, error) {
	if x.tokenSecret == "" {
		return nil, goerr.New("token-secret must not be empty")
	}

	if x.IsProduction() && x.tokenSecret == devTokenSecret {
		logging.Default().Warn("token-secret is using the insecure development default in a production configuration; set STANDUP_TOKEN_SECRET to a long random value")
	}

	return token.New(x.tokenSecret), nil
}
