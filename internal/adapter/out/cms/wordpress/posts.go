package wordpress

import (
	"context"
	"fmt"
	"net/http"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/model"
	"pressdeck/pkg/pagination"
)

func (c *Client) ListPosts(ctx context.Context, params cms.ListParams) (pagination.Page[model.Post], error) {
	var payloads []postPayload
	header, err := c.do(ctx, http.MethodGet, cms.PostsEndpoint, listQuery(params), nil, &payloads)
	if err != nil {
		return pagination.Page[model.Post]{}, err
	}

	items := make([]model.Post, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, p.toModel())
	}
	totalItems, totalPages := collectionMeta(header)
	return pagination.Page[model.Post]{
		Items:      items,
		Count:      len(items),
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}, nil
}

func (c *Client) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	var payload postPayload
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", cms.PostsEndpoint, postID), nil, nil, &payload); err != nil {
		return model.Post{}, err
	}
	return payload.toModel(), nil
}

func (c *Client) CreatePost(ctx context.Context, draft cms.PostDraft) (model.Post, error) {
	body := postWriteBody{
		Title:   &draft.Title,
		Content: &draft.Content,
	}
	if draft.Excerpt != "" {
		body.Excerpt = &draft.Excerpt
	}
	if draft.Status != "" {
		body.Status = &draft.Status
	}
	if draft.AuthorID > 0 {
		body.Author = &draft.AuthorID
	}

	var payload postPayload
	if _, err := c.do(ctx, http.MethodPost, cms.PostsEndpoint, nil, body, &payload); err != nil {
		return model.Post{}, err
	}
	return payload.toModel(), nil
}

func (c *Client) UpdatePost(ctx context.Context, postID int64, patch cms.PostPatch) (model.Post, error) {
	body := postWriteBody{
		Title:   patch.Title,
		Content: patch.Content,
		Excerpt: patch.Excerpt,
		Status:  patch.Status,
	}

	var payload postPayload
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", cms.PostsEndpoint, postID), nil, body, &payload); err != nil {
		return model.Post{}, err
	}
	return payload.toModel(), nil
}

// FetchPosts issues a single GET against an arbitrary post-shaped
// collection endpoint (built-in or a registered custom type such as
// /projects). It backs the dashboard loaders.
func (c *Client) FetchPosts(ctx context.Context, endpoint string) ([]model.Post, error) {
	var payloads []postPayload
	if _, err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &payloads); err != nil {
		return nil, err
	}
	items := make([]model.Post, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, p.toModel())
	}
	return items, nil
}
