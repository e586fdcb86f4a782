package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/model"
	"pressdeck/pkg/pagination"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100

	ResourcePosts    = "posts"
	ResourceProfiles = "profiles"
)

//go:generate mockgen -source=posts.go -destination=./post_source_mock.go -package=service pressdeck/internal/service PostSource
type PostSource interface {
	ListPosts(ctx context.Context, params cms.ListParams) (pagination.Page[model.Post], error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	CreatePost(ctx context.Context, draft cms.PostDraft) (model.Post, error)
	UpdatePost(ctx context.Context, postID int64, patch cms.PostPatch) (model.Post, error)
}

type ChangeBus interface {
	Subscribe(ctx context.Context, resource string) (<-chan model.Change, error)
	Publish(ctx context.Context, change model.Change) error
}

type PostService struct {
	source PostSource
	bus    ChangeBus
}

func NewPostService(source PostSource, bus ChangeBus) *PostService {
	return &PostService{
		source: source,
		bus:    bus,
	}
}

func (s *PostService) ListPosts(ctx context.Context, req ListPostsRequest) (pagination.Page[model.Post], error) {
	if err := validator.New().Struct(req); err != nil {
		return pagination.Page[model.Post]{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	params := cms.ListParams{
		PageRequest: pagination.PageRequest{Page: req.Page, PerPage: req.PerPage}.Clamp(DefaultPerPage, MaxPerPage),
		Search:      req.Search,
		Status:      req.Status,
	}
	return s.source.ListPosts(ctx, params)
}

func (s *PostService) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	if postID <= 0 {
		return model.Post{}, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}
	return s.source.GetPostByID(ctx, postID)
}

func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (model.Post, error) {
	if err := validator.New().Struct(req); err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	post, err := s.source.CreatePost(ctx, cms.PostDraft{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Status:   req.Status,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return model.Post{}, err
	}
	s.publish(ctx, ResourcePosts, model.ChangeCreated, post.ID)
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, req UpdatePostRequest) (model.Post, error) {
	if err := validator.New().Struct(req); err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Title == nil && req.Content == nil && req.Excerpt == nil && req.Status == nil {
		return model.Post{}, fmt.Errorf("no fields to update: %w", ErrInvalidRequest)
	}
	post, err := s.source.UpdatePost(ctx, req.PostID, cms.PostPatch{
		Title:   req.Title,
		Content: req.Content,
		Excerpt: req.Excerpt,
		Status:  req.Status,
	})
	if err != nil {
		return model.Post{}, err
	}
	s.publish(ctx, ResourcePosts, model.ChangeUpdated, post.ID)
	return post, nil
}

func (s *PostService) ChangePostStatus(ctx context.Context, postID int64, status string) (model.Post, error) {
	return s.UpdatePost(ctx, UpdatePostRequest{PostID: postID, Status: &status})
}

func (s *PostService) publish(ctx context.Context, resource, kind string, id int64) {
	publishChange(ctx, s.bus, resource, kind, id)
}

// publishChange is best-effort: a write that succeeded against the CMS
// is reported even if nobody is listening.
func publishChange(ctx context.Context, bus ChangeBus, resource, kind string, id int64) {
	if bus == nil {
		return
	}
	_ = bus.Publish(ctx, model.Change{
		Resource: resource,
		Kind:     kind,
		ID:       id,
		At:       time.Now().UTC(),
	})
}
