package model

import (
	"time"

	"github.com/standup-lab/standup/pkg/domain/types"
)

// DailyLog is one user's standup entry for a single calendar day. Day is
// always the start instant of the local day so that same-day matching is a
// stable equality/range check.
type DailyLog struct {
	ID          types.LogID  `json:"id" firestore:"id"`
	UserID      types.UserID `json:"userId" firestore:"user_id"`
	Day         time.Time    `json:"date" firestore:"day"`
	Yesterday   string       `json:"yesterday" firestore:"yesterday"`
	Today       string       `json:"today" firestore:"today"`
	Impediments string       `json:"impediments" firestore:"impediments"`
	CreatedAt   time.Time    `json:"createdAt" firestore:"created_at"`
}

// Comment is an append-only remark on a daily log
type Comment struct {
	ID        types.CommentID `json:"id" firestore:"id"`
	LogID     types.LogID     `json:"logId" firestore:"log_id"`
	UserID    types.UserID    `json:"userId" firestore:"user_id"`
	Text      string          `json:"text" firestore:"text"`
	CreatedAt time.Time       `json:"createdAt" firestore:"created_at"`
}

// CommentEntry pairs a comment with its author's public profile
type CommentEntry struct {
	*Comment
	User *Profile `json:"user"`
}

// FeedEntry is a daily log with its author and comments, as shown in the
// team feed
type FeedEntry struct {
	*DailyLog
	User     *Profile        `json:"user"`
	Comments []*CommentEntry `json:"comments"`
}

// StartOfDay normalizes a timestamp to the start instant of its local day
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
