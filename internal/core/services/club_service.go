package services

import (
	"context"
	"errors"
	"log"

	"campushub/internal/adapters/persistence/models"
	"campushub/internal/adapters/persistence/repositories"
	"campushub/internal/core/domain"
	"campushub/internal/pkg/pagination"

	"gorm.io/gorm"
)

// ClubService handles the campus club directory and memberships
type ClubService struct {
	clubRepo repositories.ClubRepository
}

// NewClubService creates a new club service
func NewClubService(clubRepo repositories.ClubRepository) *ClubService {
	return &ClubService{clubRepo: clubRepo}
}

// List returns active clubs, optionally filtered by category
func (s *ClubService) List(ctx context.Context, category string, params *pagination.Params) ([]models.Club, int64, error) {
	if category != "" && !isKnownCategory(category) {
		return nil, 0, domain.ErrInvalidInput
	}
	return s.clubRepo.List(ctx, category, params.Offset, params.Limit)
}

// GetByID returns a club by ID
func (s *ClubService) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClubNotFound
		}
		return nil, err
	}
	return club, nil
}

// Join adds the user to a club
func (s *ClubService) Join(ctx context.Context, clubID, userID uint) (*models.ClubMembership, error) {
	club, err := s.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if !club.IsActive {
		return nil, domain.ErrClubInactive
	}

	m := &models.ClubMembership{ClubID: clubID, UserID: userID}
	if err := s.clubRepo.CreateMembership(ctx, m); err != nil {
		return nil, err
	}

	log.Printf("✅ Club joined: club=%d user=%d", clubID, userID)
	return m, nil
}

// Leave removes the user from a club
func (s *ClubService) Leave(ctx context.Context, clubID, userID uint) error {
	m, err := s.clubRepo.GetMembership(ctx, clubID, userID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotMember
	}
	return s.clubRepo.DeleteMembership(ctx, clubID, userID)
}

// GetMyClubs returns the user's club memberships
func (s *ClubService) GetMyClubs(ctx context.Context, userID uint) ([]models.ClubMembership, error) {
	return s.clubRepo.ListMembershipsByUser(ctx, userID)
}

func isKnownCategory(category string) bool {
	for _, c := range domain.ClubCategories {
		if string(c) == category {
			return true
		}
	}
	return false
}
