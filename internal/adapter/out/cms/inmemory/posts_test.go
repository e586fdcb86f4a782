package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/model"
	"pressdeck/pkg/pagination"
)

func TestPostSource_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewPostSource()

	created, err := s.CreatePost(ctx, cms.PostDraft{Title: "t", Content: "c", AuthorID: 7})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, model.StatusDraft, created.Status)
	require.False(t, created.CreatedAt.IsZero())

	got, err := s.GetPostByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	_, err = s.GetPostByID(ctx, 99)
	require.ErrorIs(t, err, cms.ErrNotFound)
}

func TestPostSource_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewPostSource()
	created, err := s.CreatePost(ctx, cms.PostDraft{Title: "t", Content: "c"})
	require.NoError(t, err)

	title := "renamed"
	status := model.StatusPublish
	updated, err := s.UpdatePost(ctx, created.ID, cms.PostPatch{Title: &title, Status: &status})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Title)
	require.Equal(t, model.StatusPublish, updated.Status)
	require.Equal(t, "c", updated.Content)

	_, err = s.UpdatePost(ctx, 99, cms.PostPatch{Title: &title})
	require.ErrorIs(t, err, cms.ErrNotFound)
}

func TestPostSource_ListPosts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewPostSource()
	for _, draft := range []cms.PostDraft{
		{Title: "alpha", Content: "x", Status: model.StatusPublish},
		{Title: "beta", Content: "x", Status: model.StatusDraft},
		{Title: "gamma", Content: "x", Status: model.StatusPublish},
	} {
		_, err := s.CreatePost(ctx, draft)
		require.NoError(t, err)
	}

	page, err := s.ListPosts(ctx, cms.ListParams{
		PageRequest: pagination.PageRequest{Page: 1, PerPage: 2},
	})
	require.NoError(t, err)
	require.Equal(t, 2, page.Count)
	require.Equal(t, 3, page.TotalItems)
	require.Equal(t, 2, page.TotalPages)
	require.Equal(t, "gamma", page.Items[0].Title) // newest first
	require.True(t, page.HasNextPage())

	published, err := s.ListPosts(ctx, cms.ListParams{Status: model.StatusPublish})
	require.NoError(t, err)
	require.Equal(t, 2, published.TotalItems)

	searched, err := s.ListPosts(ctx, cms.ListParams{Search: "BET"})
	require.NoError(t, err)
	require.Equal(t, 1, searched.TotalItems)
	require.Equal(t, "beta", searched.Items[0].Title)

	beyond, err := s.ListPosts(ctx, cms.ListParams{
		PageRequest: pagination.PageRequest{Page: 5, PerPage: 2},
	})
	require.NoError(t, err)
	require.Zero(t, beyond.Count)
}
