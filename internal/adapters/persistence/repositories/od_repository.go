package repositories

import (
	"context"

	"campushub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// odRepository implements OdRepository interface
type odRepository struct {
	db *gorm.DB
}

// NewOdRepository creates a new OD request repository
func NewOdRepository(db *gorm.DB) OdRepository {
	return &odRepository{db: db}
}

// GetByID gets an OD request by ID
func (r *odRepository) GetByID(ctx context.Context, id string) (*models.OdRequest, error) {
	var od models.OdRequest
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Attendance").
		Where("id = ?", id).
		First(&od).Error
	if err != nil {
		return nil, err
	}
	return &od, nil
}

// ListByUser returns a user's OD requests, newest first
func (r *odRepository) ListByUser(ctx context.Context, userID uint) ([]models.OdRequest, error) {
	var requests []models.OdRequest
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ListByStatus returns OD requests in a given status with pagination
func (r *odRepository) ListByStatus(ctx context.Context, status string, offset, limit int) ([]models.OdRequest, int64, error) {
	var requests []models.OdRequest
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.OdRequest{}).
		Where("status = ?", status).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Attendance").
		Preload("User").
		Preload("User.Profile").
		Where("status = ?", status).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&requests).Error
	return requests, total, err
}

// UpdateFields applies a partial update to an OD request
func (r *odRepository) UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.OdRequest{}).Where("id = ?", id).Updates(updates).Error
}
