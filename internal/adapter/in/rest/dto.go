package rest

import (
	"time"

	"pressdeck/internal/model"
	"pressdeck/pkg/htmltext"
	"pressdeck/pkg/pagination"
)

const summaryLength = 160

type pageResponse struct {
	Items      any `json:"items"`
	Count      int `json:"count"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type postRow struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Status    string    `json:"status"`
	AuthorID  int64     `json:"author_id,omitempty"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type postDetail struct {
	postRow
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	ModifiedAt time.Time `json:"modified_at"`
}

// PostRow maps a post to its dashboard/list row.
func PostRow(p model.Post) any {
	return postRow{
		ID:        p.ID,
		Title:     htmltext.Flatten(p.Title),
		Summary:   htmltext.Summary(p.Excerpt, summaryLength),
		Status:    p.Status,
		AuthorID:  p.AuthorID,
		Link:      p.Link,
		CreatedAt: p.CreatedAt,
	}
}

func toPostDetail(p model.Post) postDetail {
	return postDetail{
		postRow:    PostRow(p).(postRow),
		Excerpt:    p.Excerpt,
		Content:    p.Content,
		ModifiedAt: p.ModifiedAt,
	}
}

type profileRow struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Slug      string   `json:"slug,omitempty"`
	Email     string   `json:"email,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	AvatarURL string   `json:"avatar_url,omitempty"`
}

// ProfileRow maps a profile to its dashboard/list row.
func ProfileRow(p model.Profile) any {
	return profileRow{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		Email:     p.Email,
		Roles:     p.Roles,
		AvatarURL: p.AvatarURL,
	}
}

func toPostPage(page pagination.Page[model.Post]) pageResponse {
	rows := make([]any, 0, len(page.Items))
	for _, p := range page.Items {
		rows = append(rows, PostRow(p))
	}
	return pageResponse{
		Items:      rows,
		Count:      page.Count,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}

func toProfilePage(page pagination.Page[model.Profile]) pageResponse {
	rows := make([]any, 0, len(page.Items))
	for _, p := range page.Items {
		rows = append(rows, ProfileRow(p))
	}
	return pageResponse{
		Items:      rows,
		Count:      page.Count,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}

type createPostBody struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt"`
	Status   string `json:"status"`
	AuthorID int64  `json:"author_id"`
}

type updatePostBody struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Excerpt *string `json:"excerpt"`
	Status  *string `json:"status"`
}

type changeStatusBody struct {
	Status string `json:"status"`
}

type updateProfileBody struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
