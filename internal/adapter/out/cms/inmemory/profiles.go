package inmemory

import (
	"context"
	"sync"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/model"
	"pressdeck/pkg/pagination"
)

type ProfileSource struct {
	mu       sync.RWMutex
	profiles []model.Profile
	byID     map[int64]int
}

func NewProfileSource(seed ...model.Profile) *ProfileSource {
	s := &ProfileSource{byID: make(map[int64]int)}
	for i, p := range seed {
		if p.ID == 0 {
			p.ID = int64(i + 1)
		}
		s.byID[p.ID] = len(s.profiles)
		s.profiles = append(s.profiles, p)
	}
	return s
}

func (s *ProfileSource) GetProfileByID(_ context.Context, profileID int64) (model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[profileID]
	if !ok {
		return model.Profile{}, cms.ErrNotFound
	}
	return s.profiles[idx], nil
}

func (s *ProfileSource) UpdateProfile(_ context.Context, profileID int64, patch cms.ProfilePatch) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[profileID]
	if !ok {
		return model.Profile{}, cms.ErrNotFound
	}
	p := s.profiles[idx]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	s.profiles[idx] = p
	return p, nil
}

func (s *ProfileSource) ListProfiles(_ context.Context, params cms.ListParams) (pagination.Page[model.Profile], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req := params.PageRequest.Clamp(10, 100)
	total := len(s.profiles)
	totalPages := (total + req.PerPage - 1) / req.PerPage

	start := (req.Page - 1) * req.PerPage
	if start > total {
		start = total
	}
	end := min(start+req.PerPage, total)

	items := make([]model.Profile, end-start)
	copy(items, s.profiles[start:end])

	return pagination.Page[model.Profile]{
		Items:      items,
		Count:      len(items),
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// FetchProfiles backs the dashboard loader for the profiles section.
func (s *ProfileSource) FetchProfiles(_ context.Context, _ string) ([]model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out, nil
}
