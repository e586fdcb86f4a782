package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/adapter/out/cms/inmemory"
	busmem "pressdeck/internal/adapter/out/pubsub/inmemory"
	"pressdeck/internal/dashboard"
	"pressdeck/internal/model"
	"pressdeck/internal/service"
)

type failingPostSource struct {
	service.PostSource
}

func (failingPostSource) CreatePost(context.Context, cms.PostDraft) (model.Post, error) {
	return model.Post{}, cms.ErrRemote
}

func seededPostSource(t *testing.T) *inmemory.PostSource {
	t.Helper()
	return inmemory.NewPostSource(
		model.Post{Title: "Hello world", Content: "<p>first</p>", Excerpt: "<p>The first post</p>", Status: model.StatusPublish},
		model.Post{Title: "Roadmap", Content: "<p>plans</p>", Status: model.StatusDraft},
	)
}

func newTestServer(t *testing.T, postSource service.PostSource) *httptest.Server {
	t.Helper()

	bus := busmem.New(4)
	posts := service.NewPostService(postSource, bus)
	profiles := service.NewProfileService(inmemory.NewProfileSource(
		model.Profile{ID: 1, Name: "Ada", Slug: "ada", Roles: []string{"administrator"}},
	), bus)

	h := NewHandler(posts, profiles, nil, SiteInfo{
		Title: "Pressdeck",
		Link:  "https://example.com",
	})
	srv := httptest.NewServer(NewRouter(h, nil))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHandler_ListPosts(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, seededPostSource(t))

	var page pageResponse
	resp := getJSON(t, srv.URL+"/api/posts?status=publish", &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, page.Count)

	rows := page.Items.([]any)
	row := rows[0].(map[string]any)
	require.Equal(t, "Hello world", row["title"])
	require.Equal(t, "The first post", row["summary"]) // markup stripped
}

func TestHandler_GetPost(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, seededPostSource(t))

	var detail map[string]any
	resp := getJSON(t, srv.URL+"/api/posts/1", &detail)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "<p>first</p>", detail["content"])

	resp = getJSON(t, srv.URL+"/api/posts/99", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = getJSON(t, srv.URL+"/api/posts/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_CreatePost(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, seededPostSource(t))

	resp, err := http.Post(srv.URL+"/api/posts", "application/json",
		strings.NewReader(`{"title":"New","content":"<p>body</p>","status":"draft"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var detail map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	require.Equal(t, "New", detail["title"])

	// Missing content: rejected before any write.
	resp, err = http.Post(srv.URL+"/api/posts", "application/json",
		strings.NewReader(`{"title":"No body"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_FailedWriteLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, failingPostSource{seededPostSource(t)})

	var before pageResponse
	getJSON(t, srv.URL+"/api/posts", &before)
	require.Equal(t, 2, before.Count)

	resp, err := http.Post(srv.URL+"/api/posts", "application/json",
		strings.NewReader(`{"title":"New","content":"x"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var errBody errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	require.NotEmpty(t, errBody.Error)

	var after pageResponse
	getJSON(t, srv.URL+"/api/posts", &after)
	require.Equal(t, before.Count, after.Count)
}

func TestHandler_UpdatePostStatus(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, seededPostSource(t))

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/posts/2/status",
		strings.NewReader(`{"status":"publish"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	require.Equal(t, "publish", detail["status"])
}

func TestHandler_Profiles(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, seededPostSource(t))

	var page pageResponse
	resp := getJSON(t, srv.URL+"/api/profiles", &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, page.Count)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/profiles/1",
		strings.NewReader(`{"name":"Ada Lovelace"}`))
	require.NoError(t, err)
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var row map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&row))
	require.Equal(t, "Ada Lovelace", row["name"])
}

func TestHandler_Feed(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, seededPostSource(t))

	resp, err := http.Get(srv.URL + "/feed")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "rss")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), "Hello world")
	require.NotContains(t, string(raw), "Roadmap") // drafts stay out
}

func TestHandler_DashboardSnapshot(t *testing.T) {
	t.Parallel()

	postSource := seededPostSource(t)
	bus := busmem.New(4)
	posts := service.NewPostService(postSource, bus)
	profiles := service.NewProfileService(inmemory.NewProfileSource(), bus)

	dash := dashboard.New(bus,
		dashboard.NewSection("recent-posts", service.ResourcePosts, cms.PostsEndpoint, postSource.FetchPosts, PostRow),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, dash.Start(ctx))
	dash.Wait(ctx)
	defer dash.Close()

	h := NewHandler(posts, profiles, dash, SiteInfo{})
	srv := httptest.NewServer(NewRouter(h, nil))
	t.Cleanup(srv.Close)

	var snaps []dashboard.Snapshot
	resp := getJSON(t, srv.URL+"/api/dashboard", &snaps)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, snaps, 1)
	require.Equal(t, "recent-posts", snaps[0].Name)
	require.False(t, snaps[0].Loading)
	require.Equal(t, 2, snaps[0].Count)
}
