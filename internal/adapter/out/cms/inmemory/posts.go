// Package inmemory is a CMS double for development and tests. It keeps
// collections in process memory behind the same source interfaces as
// the WordPress client.
package inmemory

import (
	"context"
	"strings"
	"sync"
	"time"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/model"
	"pressdeck/pkg/pagination"
)

type PostSource struct {
	mu     sync.RWMutex
	nextID int64
	posts  []model.Post
	byID   map[int64]int // index into posts
}

func NewPostSource(seed ...model.Post) *PostSource {
	s := &PostSource{
		nextID: 1,
		byID:   make(map[int64]int),
	}
	for _, p := range seed {
		p.ID = 0
		_, _ = s.CreatePost(context.Background(), cms.PostDraft{
			Title:    p.Title,
			Content:  p.Content,
			Excerpt:  p.Excerpt,
			Status:   p.Status,
			AuthorID: p.AuthorID,
		})
	}
	return s
}

func (s *PostSource) CreatePost(_ context.Context, draft cms.PostDraft) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := draft.Status
	if status == "" {
		status = model.StatusDraft
	}
	now := time.Now().UTC()
	post := model.Post{
		ID:         s.nextID,
		Title:      draft.Title,
		Content:    draft.Content,
		Excerpt:    draft.Excerpt,
		Status:     status,
		AuthorID:   draft.AuthorID,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	s.nextID++
	s.byID[post.ID] = len(s.posts)
	s.posts = append(s.posts, post)
	return post, nil
}

func (s *PostSource) GetPostByID(_ context.Context, postID int64) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[postID]
	if !ok {
		return model.Post{}, cms.ErrNotFound
	}
	return s.posts[idx], nil
}

func (s *PostSource) UpdatePost(_ context.Context, postID int64, patch cms.PostPatch) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[postID]
	if !ok {
		return model.Post{}, cms.ErrNotFound
	}
	p := s.posts[idx]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	p.ModifiedAt = time.Now().UTC()
	s.posts[idx] = p
	return p, nil
}

func (s *PostSource) ListPosts(_ context.Context, params cms.ListParams) (pagination.Page[model.Post], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.filter(params)
	req := params.PageRequest.Clamp(10, 100)

	total := len(matched)
	totalPages := (total + req.PerPage - 1) / req.PerPage

	start := (req.Page - 1) * req.PerPage
	if start > total {
		start = total
	}
	end := min(start+req.PerPage, total)

	items := make([]model.Post, end-start)
	copy(items, matched[start:end])

	return pagination.Page[model.Post]{
		Items:      items,
		Count:      len(items),
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// FetchPosts serves any post-shaped endpoint from the same collection;
// the double does not distinguish custom types.
func (s *PostSource) FetchPosts(_ context.Context, _ string) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter(cms.ListParams{}), nil
}

// filter assumes at least a read lock and returns newest-first matches.
func (s *PostSource) filter(params cms.ListParams) []model.Post {
	out := make([]model.Post, 0, len(s.posts))
	for i := len(s.posts) - 1; i >= 0; i-- {
		p := s.posts[i]
		if params.Status != "" && p.Status != params.Status {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, p)
	}
	return out
}
