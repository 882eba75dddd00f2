package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/repo"
)

// TripService implements business logic for saved-trip operations. Trips are
// created through the chat flow; this service covers reading them back and
// deleting them.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// GetByID returns the full itinerary snapshot for a saved trip.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return it, nil
}

// List returns saved-trip summaries, newest first.
func (s *TripService) List(ctx context.Context, page domain.PaginationParams) ([]domain.TripSummary, error) {
	summaries, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if summaries == nil {
		// Empty slice, not nil, so callers can safely range and encode it.
		summaries = []domain.TripSummary{}
	}
	return summaries, nil
}

// Delete removes a saved trip and (via cascade) its transcript.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}
