package model

import "time"

// Change kinds published on the change bus after a successful write.
const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
)

type Change struct {
	Resource string
	Kind     string
	ID       int64
	At       time.Time
}
