package rest

import (
	"net/http"

	"github.com/gorilla/feeds"

	"pressdeck/internal/model"
	"pressdeck/internal/service"
	"pressdeck/pkg/htmltext"
)

const feedSize = 20

// feed republishes the most recent published posts as RSS.
func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	page, err := h.posts.ListPosts(r.Context(), service.ListPostsRequest{
		PerPage: feedSize,
		Status:  model.StatusPublish,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	feed := &feeds.Feed{
		Title:       h.site.Title,
		Link:        &feeds.Link{Href: h.site.Link},
		Description: h.site.Description,
	}
	for _, p := range page.Items {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          p.Link,
			Title:       htmltext.Flatten(p.Title),
			Link:        &feeds.Link{Href: p.Link},
			Description: htmltext.Summary(p.Excerpt, summaryLength),
			Created:     p.CreatedAt,
			Updated:     p.ModifiedAt,
		})
		if feed.Updated.Before(p.ModifiedAt) {
			feed.Updated = p.ModifiedAt
		}
	}

	rss, err := feed.ToRss()
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	_, _ = w.Write([]byte(rss))
}
