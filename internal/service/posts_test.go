package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/model"
	"pressdeck/pkg/pagination"
)

func TestPostService_CreatePost(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name    string
		req     CreatePostRequest
		setup   func(src *MockPostSource, bus *MockChangeBus)
		wantErr error
	}{
		{
			name:    "validation error",
			req:     CreatePostRequest{},
			setup:   func(_ *MockPostSource, _ *MockChangeBus) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "unknown status",
			req:     CreatePostRequest{Title: "t", Content: "c", Status: "trash"},
			setup:   func(_ *MockPostSource, _ *MockChangeBus) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "source error publishes nothing",
			req:  CreatePostRequest{Title: "t", Content: "c", Status: "draft"},
			setup: func(src *MockPostSource, _ *MockChangeBus) {
				src.EXPECT().
					CreatePost(gomock.Any(), cms.PostDraft{Title: "t", Content: "c", Status: "draft"}).
					Return(model.Post{}, errors.New("cms fail"))
			},
			wantErr: errors.New("cms fail"),
		},
		{
			name: "success",
			req:  CreatePostRequest{Title: "t", Content: "c", Excerpt: "x", Status: "draft", AuthorID: 7},
			setup: func(src *MockPostSource, bus *MockChangeBus) {
				src.EXPECT().
					CreatePost(gomock.Any(), cms.PostDraft{Title: "t", Content: "c", Excerpt: "x", Status: "draft", AuthorID: 7}).
					Return(model.Post{ID: 10, Title: "t", Status: "draft", CreatedAt: now}, nil)
				bus.EXPECT().
					Publish(gomock.Any(), gomock.Cond(func(c model.Change) bool {
						return c.Resource == ResourcePosts && c.Kind == model.ChangeCreated && c.ID == 10
					})).
					Return(nil)
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			src := NewMockPostSource(ctrl)
			bus := NewMockChangeBus(ctrl)
			tt.setup(src, bus)

			svc := NewPostService(src, bus)
			got, err := svc.CreatePost(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidRequest) {
					require.ErrorIs(t, err, ErrInvalidRequest)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, int64(10), got.ID)
			require.WithinDuration(t, now, got.CreatedAt, time.Second)
		})
	}
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Parallel()

	title := "renamed"
	badStatus := "trash"
	status := model.StatusPublish

	tests := []struct {
		name    string
		req     UpdatePostRequest
		setup   func(src *MockPostSource, bus *MockChangeBus)
		wantErr error
	}{
		{
			name:    "missing id",
			req:     UpdatePostRequest{Title: &title},
			setup:   func(_ *MockPostSource, _ *MockChangeBus) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "no fields",
			req:     UpdatePostRequest{PostID: 10},
			setup:   func(_ *MockPostSource, _ *MockChangeBus) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "unknown status",
			req:     UpdatePostRequest{PostID: 10, Status: &badStatus},
			setup:   func(_ *MockPostSource, _ *MockChangeBus) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "source error publishes nothing",
			req:  UpdatePostRequest{PostID: 10, Title: &title},
			setup: func(src *MockPostSource, _ *MockChangeBus) {
				src.EXPECT().
					UpdatePost(gomock.Any(), int64(10), cms.PostPatch{Title: &title}).
					Return(model.Post{}, errors.New("cms fail"))
			},
			wantErr: errors.New("cms fail"),
		},
		{
			name: "success",
			req:  UpdatePostRequest{PostID: 10, Title: &title, Status: &status},
			setup: func(src *MockPostSource, bus *MockChangeBus) {
				src.EXPECT().
					UpdatePost(gomock.Any(), int64(10), cms.PostPatch{Title: &title, Status: &status}).
					Return(model.Post{ID: 10, Title: title, Status: status}, nil)
				bus.EXPECT().
					Publish(gomock.Any(), gomock.Cond(func(c model.Change) bool {
						return c.Resource == ResourcePosts && c.Kind == model.ChangeUpdated && c.ID == 10
					})).
					Return(nil)
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			src := NewMockPostSource(ctrl)
			bus := NewMockChangeBus(ctrl)
			tt.setup(src, bus)

			svc := NewPostService(src, bus)
			got, err := svc.UpdatePost(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidRequest) {
					require.ErrorIs(t, err, ErrInvalidRequest)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, "renamed", got.Title)
			require.Equal(t, model.StatusPublish, got.Status)
		})
	}
}

func TestPostService_ListPosts_ClampsPagination(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := NewMockPostSource(ctrl)

	src.EXPECT().
		ListPosts(gomock.Any(), cms.ListParams{
			PageRequest: pagination.PageRequest{Page: 1, PerPage: MaxPerPage},
			Status:      model.StatusDraft,
		}).
		Return(pagination.Page[model.Post]{}, nil)

	svc := NewPostService(src, nil)
	_, err := svc.ListPosts(context.Background(), ListPostsRequest{
		PerPage: 5000,
		Status:  model.StatusDraft,
	})
	require.NoError(t, err)
}

func TestPostService_ListPosts_InvalidStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewPostService(NewMockPostSource(ctrl), nil)
	_, err := svc.ListPosts(context.Background(), ListPostsRequest{Status: "trash"})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestPostService_GetPostByID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := NewMockPostSource(ctrl)

	svc := NewPostService(src, nil)

	_, err := svc.GetPostByID(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidRequest)

	src.EXPECT().
		GetPostByID(gomock.Any(), int64(5)).
		Return(model.Post{ID: 5, Title: "found"}, nil)

	got, err := svc.GetPostByID(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, "found", got.Title)
}

func TestPostService_ChangePostStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	src := NewMockPostSource(ctrl)
	bus := NewMockChangeBus(ctrl)

	svc := NewPostService(src, bus)

	_, err := svc.ChangePostStatus(context.Background(), 5, "trash")
	require.ErrorIs(t, err, ErrInvalidRequest)

	src.EXPECT().
		UpdatePost(gomock.Any(), int64(5), gomock.Cond(func(p cms.PostPatch) bool {
			return p.Status != nil && *p.Status == model.StatusPublish
		})).
		Return(model.Post{ID: 5, Status: model.StatusPublish}, nil)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.ChangePostStatus(context.Background(), 5, model.StatusPublish)
	require.NoError(t, err)
	require.Equal(t, model.StatusPublish, got.Status)
}
