package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/m-mizutani/gt"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
	"github.com/standup-lab/standup/pkg/repository/firestore"
	"github.com/standup-lab/standup/pkg/repository/postgres"
)

func uniqueEmail() string {
	return fmt.Sprintf("user-%s@example.com", uuid.NewString())
}

func createTestUser(t *testing.T, repo interfaces.Repository, name string) *model.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user, err := repo.User().Create(context.Background(), &model.User{
		ID:           types.NewUserID(),
		Name:         name,
		Email:        uniqueEmail(),
		PasswordHash: "$2a$10$fake.hash.for.tests.only",
		Role:         types.RoleWebDeveloper,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	gt.NoError(t, err).Required()
	return user
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID,
		firestore.WithCollectionPrefix(fmt.Sprintf("test_%d_", time.Now().UnixNano())),
	)
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func newPostgresRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	repo, err := postgres.New(ctx, dsn)
	gt.NoError(t, err).Required()
	gt.NoError(t, repo.Migrate(ctx)).Required()

	// Each test starts from an empty database
	db, err := sql.Open("postgres", dsn)
	gt.NoError(t, err).Required()
	_, err = db.ExecContext(ctx, "TRUNCATE comments, daily_logs, users")
	gt.NoError(t, err).Required()
	gt.NoError(t, db.Close())

	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}
