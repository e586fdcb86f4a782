package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"pressdeck/internal/adapter/out/cms"
	"pressdeck/internal/model"
	"pressdeck/pkg/pagination"
)

//go:generate mockgen -source=profiles.go -destination=./profile_source_mock.go -package=service pressdeck/internal/service ProfileSource
type ProfileSource interface {
	ListProfiles(ctx context.Context, params cms.ListParams) (pagination.Page[model.Profile], error)
	GetProfileByID(ctx context.Context, profileID int64) (model.Profile, error)
	UpdateProfile(ctx context.Context, profileID int64, patch cms.ProfilePatch) (model.Profile, error)
}

type ProfileService struct {
	source ProfileSource
	bus    ChangeBus
}

func NewProfileService(source ProfileSource, bus ChangeBus) *ProfileService {
	return &ProfileService{
		source: source,
		bus:    bus,
	}
}

func (s *ProfileService) ListProfiles(ctx context.Context, req ListProfilesRequest) (pagination.Page[model.Profile], error) {
	params := cms.ListParams{
		PageRequest: pagination.PageRequest{Page: req.Page, PerPage: req.PerPage}.Clamp(DefaultPerPage, MaxPerPage),
		Search:      req.Search,
	}
	return s.source.ListProfiles(ctx, params)
}

func (s *ProfileService) GetProfileByID(ctx context.Context, profileID int64) (model.Profile, error) {
	if profileID <= 0 {
		return model.Profile{}, fmt.Errorf("profileID must be > 0: %w", ErrInvalidRequest)
	}
	return s.source.GetProfileByID(ctx, profileID)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (model.Profile, error) {
	if err := validator.New().Struct(req); err != nil {
		return model.Profile{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Name == nil && req.Email == nil {
		return model.Profile{}, fmt.Errorf("no fields to update: %w", ErrInvalidRequest)
	}
	profile, err := s.source.UpdateProfile(ctx, req.ProfileID, cms.ProfilePatch{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return model.Profile{}, err
	}
	publishChange(ctx, s.bus, ResourceProfiles, model.ChangeUpdated, profile.ID)
	return profile, nil
}
