package cms

import (
	"errors"

	"pressdeck/pkg/pagination"
)

// Collection paths under the CMS REST base.
const (
	PostsEndpoint    = "/posts"
	ProfilesEndpoint = "/users"
)

var (
	ErrNotFound = errors.New("resource not found")
	ErrRemote   = errors.New("cms request failed")
	ErrDecode   = errors.New("cannot decode cms response")
)

type ListParams struct {
	pagination.PageRequest
	Search string
	Status string
}

// PostDraft is the writable representation sent on create.
type PostDraft struct {
	Title    string
	Content  string
	Excerpt  string
	Status   string
	AuthorID int64
}

// PostPatch is a partial update; nil fields are left untouched.
type PostPatch struct {
	Title   *string
	Content *string
	Excerpt *string
	Status  *string
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	Name  *string
	Email *string
}
