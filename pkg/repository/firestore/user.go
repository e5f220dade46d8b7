package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/domain/model"
	"github.com/standup-lab/standup/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection      = "users"
	userEmailsCollection = "user_emails"
)

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{client: client}
}

func (r *userRepository) collection(name string) *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + name)
}

// emailSlot reserves an email address; its document ID is the email itself,
// which is what makes the uniqueness check atomic
type emailSlot struct {
	UserID string `firestore:"user_id"`
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := user.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user")
	}

	emailRef := r.collection(userEmailsCollection).Doc(user.Email)
	userRef := r.collection(usersCollection).Doc(user.ID.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(emailRef, emailSlot{UserID: user.ID.String()}); err != nil {
			return err
		}
		return tx.Create(userRef, user)
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(interfaces.ErrConflict, "email already registered", goerr.V("email", user.Email))
		}
		return nil, goerr.Wrap(err, "failed to create user in firestore")
	}

	created := *user
	return &created, nil
}

func (r *userRepository) GetByID(ctx context.Context, id types.UserID) (*model.User, error) {
	doc, err := r.collection(usersCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("user_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user from firestore")
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal user")
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	doc, err := r.collection(userEmailsCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("email", email))
		}
		return nil, goerr.Wrap(err, "failed to get email slot from firestore")
	}

	var slot emailSlot
	if err := doc.DataTo(&slot); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal email slot")
	}

	return r.GetByID(ctx, types.UserID(slot.UserID))
}
