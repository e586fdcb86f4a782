package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"pressdeck/internal/dashboard"
	"pressdeck/internal/model"
	"pressdeck/internal/service"
	"pressdeck/pkg/pagination"
)

type PostService interface {
	ListPosts(ctx context.Context, req service.ListPostsRequest) (pagination.Page[model.Post], error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	CreatePost(ctx context.Context, req service.CreatePostRequest) (model.Post, error)
	UpdatePost(ctx context.Context, req service.UpdatePostRequest) (model.Post, error)
	ChangePostStatus(ctx context.Context, postID int64, status string) (model.Post, error)
}

type ProfileService interface {
	ListProfiles(ctx context.Context, req service.ListProfilesRequest) (pagination.Page[model.Profile], error)
	GetProfileByID(ctx context.Context, profileID int64) (model.Profile, error)
	UpdateProfile(ctx context.Context, req service.UpdateProfileRequest) (model.Profile, error)
}

type Handler struct {
	posts    PostService
	profiles ProfileService
	dash     *dashboard.Dashboard
	site     SiteInfo
}

// SiteInfo feeds the RSS channel header.
type SiteInfo struct {
	Title       string
	Link        string
	Description string
}

func NewHandler(posts PostService, profiles ProfileService, dash *dashboard.Dashboard, site SiteInfo) *Handler {
	return &Handler{
		posts:    posts,
		profiles: profiles,
		dash:     dash,
		site:     site,
	}
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := service.ListPostsRequest{
		Page:    queryInt(q.Get("page")),
		PerPage: queryInt(q.Get("per_page")),
		Search:  q.Get("search"),
		Status:  q.Get("status"),
	}
	page, err := h.posts.ListPosts(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toPostPage(page))
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "postID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	post, err := h.posts.GetPostByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toPostDetail(post))
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var body createPostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, fmt.Errorf("%w: malformed body: %v", service.ErrInvalidRequest, err))
		return
	}
	post, err := h.posts.CreatePost(r.Context(), service.CreatePostRequest{
		Title:    body.Title,
		Content:  body.Content,
		Excerpt:  body.Excerpt,
		Status:   body.Status,
		AuthorID: body.AuthorID,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toPostDetail(post))
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "postID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body updatePostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, fmt.Errorf("%w: malformed body: %v", service.ErrInvalidRequest, err))
		return
	}
	post, err := h.posts.UpdatePost(r.Context(), service.UpdatePostRequest{
		PostID:  id,
		Title:   body.Title,
		Content: body.Content,
		Excerpt: body.Excerpt,
		Status:  body.Status,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toPostDetail(post))
}

func (h *Handler) changePostStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "postID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body changeStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, fmt.Errorf("%w: malformed body: %v", service.ErrInvalidRequest, err))
		return
	}
	post, err := h.posts.ChangePostStatus(r.Context(), id, body.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toPostDetail(post))
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.profiles.ListProfiles(r.Context(), service.ListProfilesRequest{
		Page:    queryInt(q.Get("page")),
		PerPage: queryInt(q.Get("per_page")),
		Search:  q.Get("search"),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toProfilePage(page))
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "profileID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	profile, err := h.profiles.GetProfileByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, ProfileRow(profile))
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "profileID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	var body updateProfileBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, fmt.Errorf("%w: malformed body: %v", service.ErrInvalidRequest, err))
		return
	}
	profile, err := h.profiles.UpdateProfile(r.Context(), service.UpdateProfileRequest{
		ProfileID: id,
		Name:      body.Name,
		Email:     body.Email,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, ProfileRow(profile))
}

func (h *Handler) dashboardSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.dash == nil {
		respondJSON(w, http.StatusOK, []dashboard.Snapshot{})
		return
	}
	respondJSON(w, http.StatusOK, h.dash.Snapshot())
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", service.ErrInvalidRequest, name)
	}
	return id, nil
}

func queryInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
