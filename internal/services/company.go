package services

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"kasirpos/internal/models"
	"kasirpos/internal/storage"
	"kasirpos/internal/store"
)

// CompanyProfileService is the singleton pattern layered on the generic
// store: at most one record lives in the collection, id fixed to 1 once
// saved.
type CompanyProfileService struct {
	col *store.Collection[models.CompanyProfile, *models.CompanyProfile]
}

func NewCompanyProfileService(medium storage.Medium, key string) *CompanyProfileService {
	return &CompanyProfileService{col: store.NewCollection[models.CompanyProfile](medium, key)}
}

// Get returns the profile or nil when none has been saved yet.
func (s *CompanyProfileService) Get(ctx context.Context) (*models.CompanyProfile, error) {
	all, err := s.col.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

// Save merges the given profile onto any existing record, or creates it
// fresh (the store assigns id 1 on an empty collection).
func (s *CompanyProfileService) Save(ctx context.Context, p models.CompanyProfile) (*models.CompanyProfile, error) {
	existing, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		stampCreate(&p.CreatedAt, &p.UpdatedAt)
		return s.col.Add(ctx, p)
	}

	buf, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "encode profile")
	}
	var patch map[string]any
	if err := json.Unmarshal(buf, &patch); err != nil {
		return nil, errors.Wrap(err, "encode profile")
	}
	// Identity and creation time of the existing record win.
	delete(patch, "id")
	delete(patch, "created_at")
	return s.col.Update(ctx, existing.ID, stampUpdate(patch))
}

// Update patches the existing profile and returns nil when no profile has
// ever been saved. It must not auto-create.
func (s *CompanyProfileService) Update(ctx context.Context, patch map[string]any) (*models.CompanyProfile, error) {
	existing, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	return s.col.Update(ctx, existing.ID, stampUpdate(patch))
}
