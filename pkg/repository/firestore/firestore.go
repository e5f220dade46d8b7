package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
)

// Firestore is the Firestore-backed repository. Uniqueness invariants are
// enforced with deterministic document IDs created inside transactions, so
// concurrent duplicates fail at commit instead of racing a pre-check.
type Firestore struct {
	client *firestore.Client
	users  *userRepository
	logs   *dailyLogRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests sharing
// a project
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.users.collectionPrefix = prefix
		f.logs.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("project_id", projectID))
	}

	f := &Firestore{
		client: client,
		users:  newUserRepository(client),
		logs:   newDailyLogRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.users
}

func (f *Firestore) DailyLog() interfaces.DailyLogRepository {
	return f.logs
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
