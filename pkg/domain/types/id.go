package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// UserID represents a unique identifier for a user
type UserID string

// NewUserID generates a new random UserID
func NewUserID() UserID {
	return UserID(uuid.NewString())
}

// Validate checks if the UserID is valid
func (x UserID) Validate() error {
	if x == "" {
		return goerr.New("user ID cannot be empty")
	}
	return nil
}

// String returns the string representation of UserID
func (x UserID) String() string {
	return string(x)
}

// LogID represents a unique identifier for a daily log
type LogID string

// NewLogID generates a new random LogID
func NewLogID() LogID {
	return LogID(uuid.NewString())
}

// Validate checks if the LogID is valid
func (x LogID) Validate() error {
	if x == "" {
		return goerr.New("log ID cannot be empty")
	}
	return nil
}

// String returns the string representation of LogID
func (x LogID) String() string {
	return string(x)
}

// CommentID represents a unique identifier for a comment
type CommentID string

// NewCommentID generates a new random CommentID
func NewCommentID() CommentID {
	return CommentID(uuid.NewString())
}

// Validate checks if the CommentID is valid
func (x CommentID) Validate() error {
	if x == "" {
		return goerr.New("comment ID cannot be empty")
	}
	return nil
}

// String returns the string representation of CommentID
func (x CommentID) String() string {
	return string(x)
}
