package service

type ListPostsRequest struct {
	Page    int `validate:"omitempty,gte=0"`
	PerPage int `validate:"omitempty,gte=0"`
	Search  string
	Status  string `validate:"omitempty,oneof=publish draft pending private"`
}

type CreatePostRequest struct {
	Title    string `validate:"required"`
	Content  string `validate:"required"`
	Excerpt  string
	Status   string `validate:"omitempty,oneof=publish draft pending private"`
	AuthorID int64  `validate:"omitempty,gt=0"`
}

type UpdatePostRequest struct {
	PostID  int64   `validate:"required,gt=0"`
	Title   *string `validate:"omitempty,min=1"`
	Content *string
	Excerpt *string
	Status  *string `validate:"omitempty,oneof=publish draft pending private"`
}

type ListProfilesRequest struct {
	Page    int
	PerPage int
	Search  string
}

type UpdateProfileRequest struct {
	ProfileID int64   `validate:"required,gt=0"`
	Name      *string `validate:"omitempty,min=1"`
	Email     *string `validate:"omitempty,email"`
}
