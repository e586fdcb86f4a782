package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pressdeck/config"
	"pressdeck/internal/adapter/in/rest"
	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/adapter/out/cms/inmemory"
	"pressdeck/internal/adapter/out/cms/wordpress"
	busmem "pressdeck/internal/adapter/out/pubsub/inmemory"
	"pressdeck/internal/dashboard"
	"pressdeck/internal/model"
	"pressdeck/internal/service"
	"pressdeck/pkg/fetch"
	"pressdeck/pkg/logger"
	"pressdeck/pkg/metrics"
)

type App struct {
	cfg  config.Config
	srv  *http.Server
	dash *dashboard.Dashboard
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	var (
		postSource    service.PostSource
		profileSource service.ProfileSource
		fetchPosts    fetch.FetchFunc[model.Post]
		fetchProfiles fetch.FetchFunc[model.Profile]
	)

	switch cfg.SourceType {
	case "wordpress":
		client, err := wordpress.NewClient(wordpress.Config{
			BaseURL:     cfg.CMS.BaseURL,
			Username:    cfg.CMS.Username,
			AppPassword: cfg.CMS.AppPassword,
			Timeout:     time.Duration(cfg.CMS.TimeoutSeconds) * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("wordpress client: %w", err)
		}
		postSource, profileSource = client, client
		fetchPosts, fetchProfiles = client.FetchPosts, client.FetchProfiles

	default:
		posts := inmemory.NewPostSource()
		profiles := inmemory.NewProfileSource()
		postSource, profileSource = posts, profiles
		fetchPosts, fetchProfiles = posts.FetchPosts, profiles.FetchProfiles
	}

	bus := busmem.New(64)

	postSvc := service.NewPostService(postSource, bus)
	profileSvc := service.NewProfileService(profileSource, bus)

	sections := []dashboard.SectionView{
		dashboard.NewSection("recent-posts", service.ResourcePosts, cms.PostsEndpoint, fetchPosts, rest.PostRow),
		dashboard.NewSection("team", service.ResourceProfiles, cms.ProfilesEndpoint, fetchProfiles, rest.ProfileRow),
	}
	for _, custom := range cfg.Dashboard.CustomTypes {
		sections = append(sections, dashboard.NewSection(
			custom, service.ResourcePosts, "/"+custom, fetchPosts, rest.PostRow,
		))
	}
	dash := dashboard.New(bus, sections...)

	handler := rest.NewHandler(postSvc, profileSvc, dash, rest.SiteInfo{
		Title:       cfg.Site.Title,
		Link:        cfg.Site.Link,
		Description: cfg.Site.Description,
	})

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           rest.NewRouter(handler, metrics.Registry()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "source", cfg.SourceType)
	return &App{cfg: cfg, srv: srv, dash: dash}, nil
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := a.dash.Start(ctx); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = a.srv.Shutdown(shCtx)
		a.dash.Close()
		return nil

	case err := <-errCh:
		a.dash.Close()
		return err
	}
}
