// Package dashboard aggregates per-collection loaders into the admin
// overview: one section per content collection, refreshed when the
// change bus reports a write.
package dashboard

import (
	"context"

	"pressdeck/pkg/fetch"
)

// Snapshot is the JSON-ready projection of one section.
type Snapshot struct {
	Name     string `json:"name"`
	Resource string `json:"resource"`
	Endpoint string `json:"endpoint"`
	Loading  bool   `json:"loading"`
	Error    string `json:"error,omitempty"`
	Count    int    `json:"count"`
	Items    []any  `json:"items"`
}

// SectionView is the dashboard's handle on a section regardless of its
// item type.
type SectionView interface {
	Name() string
	Resource() string
	Load(ctx context.Context)
	Reload(ctx context.Context)
	Wait(ctx context.Context)
	Snapshot() Snapshot
	Close()
}

// RowFunc maps a fetched item to its presentation row.
type RowFunc[T any] func(T) any

type Section[T any] struct {
	name     string
	resource string
	endpoint string
	row      RowFunc[T]
	loader   *fetch.Loader[T]
}

// NewSection builds a section over a collection endpoint. resource is
// the change-bus topic whose events refresh it.
func NewSection[T any](name, resource, endpoint string, fn fetch.FetchFunc[T], row RowFunc[T]) *Section[T] {
	return &Section[T]{
		name:     name,
		resource: resource,
		endpoint: endpoint,
		row:      row,
		loader:   fetch.NewLoader(fn),
	}
}

func (s *Section[T]) Name() string     { return s.name }
func (s *Section[T]) Resource() string { return s.resource }

func (s *Section[T]) Load(ctx context.Context) {
	s.loader.Load(ctx, s.endpoint)
}

// SetEndpoint switches the section to a different collection endpoint;
// the loader cancels any in-flight fetch and fetches the new endpoint
// exactly once.
func (s *Section[T]) SetEndpoint(ctx context.Context, endpoint string) {
	s.endpoint = endpoint
	s.loader.Load(ctx, endpoint)
}

func (s *Section[T]) Reload(ctx context.Context) {
	s.loader.Reload(ctx)
}

func (s *Section[T]) Wait(ctx context.Context) {
	_, _ = s.loader.Wait(ctx)
}

func (s *Section[T]) Snapshot() Snapshot {
	res := s.loader.Result()
	snap := Snapshot{
		Name:     s.name,
		Resource: s.resource,
		Endpoint: s.endpoint,
		Loading:  res.State == fetch.StateLoading,
		Count:    len(res.Items),
		Items:    make([]any, 0, len(res.Items)),
	}
	if res.State == fetch.StateFailed && res.Err != nil {
		snap.Error = res.Err.Error()
	}
	for _, item := range res.Items {
		snap.Items = append(snap.Items, s.row(item))
	}
	return snap
}

func (s *Section[T]) Close() {
	s.loader.Close()
}
