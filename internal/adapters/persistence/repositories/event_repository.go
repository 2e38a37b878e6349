package repositories

import (
	"context"
	"errors"

	"campushub/internal/adapters/persistence/models"
	"campushub/internal/core/domain"

	"gorm.io/gorm"
)

// eventRepository implements EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event
func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID gets an event by ID with its organizer
func (r *eventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Organizer").
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateFields applies a partial update to an event
func (r *eventRepository) UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Updates(updates).Error
}

// ListPublished returns published events, soonest first, optionally filtered by type
func (r *eventRepository) ListPublished(ctx context.Context, eventType string, offset, limit int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Event{}).Where("is_published = ?", true)
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Organizer").
		Order("start_date ASC, start_time ASC").
		Offset(offset).Limit(limit).
		Find(&events).Error
	return events, total, err
}

// ListByOrganizer returns all events owned by an organization, newest first
func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

// ============================================================
// Registration Queries
// ============================================================

// CountRegistrations counts active registrations for an event
func (r *eventRepository) CountRegistrations(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.EventRegistration{}).
		Where("event_id = ? AND status = ?", eventID, "registered").
		Count(&count).Error
	return count, err
}

// GetRegistration returns a user's registration for an event, (nil, nil) when absent
func (r *eventRepository) GetRegistration(ctx context.Context, eventID string, userID uint) (*models.EventRegistration, error) {
	var reg models.EventRegistration
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// CreateRegistration registers a user for an event
func (r *eventRepository) CreateRegistration(ctx context.Context, reg *models.EventRegistration) error {
	err := r.db.WithContext(ctx).Create(reg).Error
	if isDuplicateKey(err) {
		return domain.ErrDuplicateEntry
	}
	return err
}

// DeleteRegistration removes a user's registration
func (r *eventRepository) DeleteRegistration(ctx context.Context, eventID string, userID uint) error {
	return r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&models.EventRegistration{}).Error
}

// ListRegistrationsByUser returns a user's registrations with events preloaded
func (r *eventRepository) ListRegistrationsByUser(ctx context.Context, userID uint) ([]models.EventRegistration, error) {
	var regs []models.EventRegistration
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("registered_at DESC").
		Find(&regs).Error
	return regs, err
}

// ============================================================
// Bookmark Queries
// ============================================================

// GetBookmark returns a user's bookmark for an event, (nil, nil) when absent
func (r *eventRepository) GetBookmark(ctx context.Context, eventID string, userID uint) (*models.EventBookmark, error) {
	var bm models.EventBookmark
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&bm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bm, nil
}

// CreateBookmark bookmarks an event for a user
func (r *eventRepository) CreateBookmark(ctx context.Context, bm *models.EventBookmark) error {
	err := r.db.WithContext(ctx).Create(bm).Error
	if isDuplicateKey(err) {
		return domain.ErrDuplicateEntry
	}
	return err
}

// DeleteBookmark removes a user's bookmark
func (r *eventRepository) DeleteBookmark(ctx context.Context, eventID string, userID uint) error {
	return r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&models.EventBookmark{}).Error
}

// ListBookmarksByUser returns a user's bookmarks with events preloaded
func (r *eventRepository) ListBookmarksByUser(ctx context.Context, userID uint) ([]models.EventBookmark, error) {
	var bms []models.EventBookmark
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bms).Error
	return bms, err
}
