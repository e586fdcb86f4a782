package wordpress

import (
	"time"

	"pressdeck/internal/model"
)

// WordPress timestamps come without a zone marker; the *_gmt variants
// are always UTC.
const wpTimeLayout = "2006-01-02T15:04:05"

type renderedField struct {
	Rendered string `json:"rendered"`
}

type postPayload struct {
	ID          int64         `json:"id"`
	DateGMT     string        `json:"date_gmt"`
	ModifiedGMT string        `json:"modified_gmt"`
	Status      string        `json:"status"`
	Link        string        `json:"link"`
	Title       renderedField `json:"title"`
	Content     renderedField `json:"content"`
	Excerpt     renderedField `json:"excerpt"`
	Author      int64         `json:"author"`
}

func (p postPayload) toModel() model.Post {
	created, _ := time.ParseInLocation(wpTimeLayout, p.DateGMT, time.UTC)
	modified, _ := time.ParseInLocation(wpTimeLayout, p.ModifiedGMT, time.UTC)
	return model.Post{
		ID:         p.ID,
		Title:      p.Title.Rendered,
		Excerpt:    p.Excerpt.Rendered,
		Content:    p.Content.Rendered,
		Status:     p.Status,
		AuthorID:   p.Author,
		Link:       p.Link,
		CreatedAt:  created,
		ModifiedAt: modified,
	}
}

// postWriteBody is the writable shape; WordPress accepts plain strings
// for the rendered fields on write.
type postWriteBody struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Excerpt *string `json:"excerpt,omitempty"`
	Status  *string `json:"status,omitempty"`
	Author  *int64  `json:"author,omitempty"`
}

type userPayload struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	Email      string            `json:"email"`
	Roles      []string          `json:"roles"`
	AvatarURLs map[string]string `json:"avatar_urls"`
}

func (u userPayload) toModel() model.Profile {
	var avatar string
	// WordPress keys avatar sizes by pixel width; prefer the largest.
	for _, size := range []string{"96", "48", "24"} {
		if url, ok := u.AvatarURLs[size]; ok {
			avatar = url
			break
		}
	}
	return model.Profile{
		ID:        u.ID,
		Name:      u.Name,
		Slug:      u.Slug,
		Email:     u.Email,
		Roles:     u.Roles,
		AvatarURL: avatar,
	}
}

type userWriteBody struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
