// internal/services/listing_service.go
package services

import (
	"context"
	"errors"

	"github.com/ps-vitor/apartment-finder/internal/domain"
	"github.com/ps-vitor/apartment-finder/internal/repositories"
	"github.com/ps-vitor/apartment-finder/pkg/logger"
)

type ListingService struct {
	repo repositories.ListingRepository
	log  *logger.Logger
}

func NewListingService(repo repositories.ListingRepository, log *logger.Logger) *ListingService {
	if log == nil {
		log = logger.Discard()
	}
	return &ListingService{repo: repo, log: log}
}

// Fetch loads the listings document and tags the outcome. Missing and
// malformed files are results, not errors; any other failure is returned
// unclassified.
func (s *ListingService) Fetch(ctx context.Context) (domain.LoadResult, error) {
	doc, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		s.log.Debug("listings loaded")
		return domain.LoadResult{Status: domain.LoadOK, Document: doc}, nil
	case errors.Is(err, domain.ErrListingsNotFound):
		s.log.Warn(err)
		return domain.LoadResult{Status: domain.LoadMissing}, nil
	case errors.Is(err, domain.ErrListingsMalformed):
		s.log.Error(err)
		return domain.LoadResult{Status: domain.LoadMalformed}, nil
	default:
		return domain.LoadResult{}, err
	}
}
