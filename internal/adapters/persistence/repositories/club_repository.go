package repositories

import (
	"context"
	"errors"

	"campushub/internal/adapters/persistence/models"
	"campushub/internal/core/domain"

	"gorm.io/gorm"
)

// clubRepository implements ClubRepository interface
type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

// List returns active clubs, optionally filtered by category, with pagination
func (r *clubRepository) List(ctx context.Context, category string, offset, limit int) ([]models.Club, int64, error) {
	var clubs []models.Club
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Club{}).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&clubs).Error
	return clubs, total, err
}

// GetByID gets a club by ID
func (r *clubRepository) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	var club models.Club
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// Count returns the total number of clubs
func (r *clubRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Club{}).Count(&count).Error
	return count, err
}

// Create creates a new club
func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

// GetMembership returns (nil, nil) when the user is not a member
func (r *clubRepository) GetMembership(ctx context.Context, clubID, userID uint) (*models.ClubMembership, error) {
	var m models.ClubMembership
	err := r.db.WithContext(ctx).Where("club_id = ? AND user_id = ?", clubID, userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// CreateMembership adds a user to a club
func (r *clubRepository) CreateMembership(ctx context.Context, m *models.ClubMembership) error {
	err := r.db.WithContext(ctx).Create(m).Error
	if isDuplicateKey(err) {
		return domain.ErrAlreadyMember
	}
	return err
}

// DeleteMembership removes a user from a club
func (r *clubRepository) DeleteMembership(ctx context.Context, clubID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Delete(&models.ClubMembership{}).Error
}

// ListMembershipsByUser returns a user's club memberships
func (r *clubRepository) ListMembershipsByUser(ctx context.Context, userID uint) ([]models.ClubMembership, error) {
	var memberships []models.ClubMembership
	err := r.db.WithContext(ctx).
		Preload("Club").
		Where("user_id = ?", userID).
		Order("joined_at DESC").
		Find(&memberships).Error
	return memberships, err
}
