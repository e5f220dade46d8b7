package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/repository/postgres"
	"github.com/standup-lab/standup/pkg/utils/logging"
	"github.com/standup-lab/standup/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var dsn string

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Create the Postgres schema, including the unique indexes enforcing email and one-log-per-day uniqueness",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "postgres-dsn",
				Usage:       "Postgres DSN (required)",
				Required:    true,
				Sources:     cli.EnvVars("STANDUP_POSTGRES_DSN"),
				Destination: &dsn,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := postgres.New(ctx, dsn)
			if err != nil {
				return goerr.Wrap(err, "failed to connect to postgres")
			}
			defer safe.Close(ctx, repo)

			if err := repo.Migrate(ctx); err != nil {
				return goerr.Wrap(err, "failed to apply migrations")
			}

			logging.Default().Info("Migration completed")
			return nil
		},
	}
}
