package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/repository/firestore"
	"github.com/standup-lab/standup/pkg/repository/memory"
	"github.com/standup-lab/standup/pkg/repository/postgres"
	"github.com/standup-lab/standup/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend    string
	projectID  string
	databaseID string
	postgresDSN string
}

// Flags returns CLI flags for repository configuration
func (x *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (memory, firestore or postgres)",
			Category:    "Repository",
			Value:       "memory",
			Sources:     cli.EnvVars("STANDUP_REPOSITORY_BACKEND"),
			Destination: &x.backend,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Category:    "Repository",
			Sources:     cli.EnvVars("STANDUP_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Category:    "Repository",
			Sources:     cli.EnvVars("STANDUP_FIRESTORE_DATABASE_ID"),
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "postgres-dsn",
			Usage:       "Postgres DSN (required when using postgres backend)",
			Category:    "Repository",
			Sources:     cli.EnvVars("STANDUP_POSTGRES_DSN"),
			Destination: &x.postgresDSN,
		},
	}
}

// Backend returns the configured backend type
func (x *Repository) Backend() string {
	return x.backend
}

// Configure initializes and returns a repository based on the configured
// backend. The caller is responsible for calling Close() on the returned
// repository.
func (x *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch x.backend {
	case "firestore":
		if x.projectID == "" {
			return nil, goerr.New("firestore-project-id is required when using firestore backend")
		}
		repo, err := firestore.New(ctx, x.projectID, x.databaseID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.Default().Info("Using Firestore repository",
			"project_id", x.projectID,
			"database_id", x.databaseID,
		)
		return repo, nil

	case "postgres":
		if x.postgresDSN == "" {
			return nil, goerr.New("postgres-dsn is required when using postgres backend")
		}
		repo, err := postgres.New(ctx, x.postgresDSN)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize postgres repository")
		}
		logging.Default().Info("Using Postgres repository")
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", x.backend))
	}
}
