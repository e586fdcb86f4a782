package wordpress

import (
	"context"
	"fmt"
	"net/http"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/model"
	"pressdeck/pkg/pagination"
)

func (c *Client) ListProfiles(ctx context.Context, params cms.ListParams) (pagination.Page[model.Profile], error) {
	q := listQuery(params)
	q.Del("status") // users have no status filter

	var payloads []userPayload
	header, err := c.do(ctx, http.MethodGet, cms.ProfilesEndpoint, q, nil, &payloads)
	if err != nil {
		return pagination.Page[model.Profile]{}, err
	}

	items := make([]model.Profile, 0, len(payloads))
	for _, u := range payloads {
		items = append(items, u.toModel())
	}
	totalItems, totalPages := collectionMeta(header)
	return pagination.Page[model.Profile]{
		Items:      items,
		Count:      len(items),
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}, nil
}

func (c *Client) GetProfileByID(ctx context.Context, profileID int64) (model.Profile, error) {
	var payload userPayload
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", cms.ProfilesEndpoint, profileID), nil, nil, &payload); err != nil {
		return model.Profile{}, err
	}
	return payload.toModel(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, profileID int64, patch cms.ProfilePatch) (model.Profile, error) {
	body := userWriteBody{
		Name:  patch.Name,
		Email: patch.Email,
	}

	var payload userPayload
	if _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", cms.ProfilesEndpoint, profileID), nil, body, &payload); err != nil {
		return model.Profile{}, err
	}
	return payload.toModel(), nil
}

// FetchProfiles issues a single GET against a profile collection
// endpoint for the dashboard loaders.
func (c *Client) FetchProfiles(ctx context.Context, endpoint string) ([]model.Profile, error) {
	var payloads []userPayload
	if _, err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &payloads); err != nil {
		return nil, err
	}
	items := make([]model.Profile, 0, len(payloads))
	for _, u := range payloads {
		items = append(items, u.toModel())
	}
	return items, nil
}
