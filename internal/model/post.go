package model

import "time"

// Post statuses as exposed by the CMS.
const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPrivate = "private"
)

type Post struct {
	ID         int64
	Title      string
	Excerpt    string
	Content    string
	Status     string
	AuthorID   int64
	Link       string
	CreatedAt  time.Time
	ModifiedAt time.Time
}
