package repositories

import (
	"context"
	"errors"
	"time"

	"campushub/internal/adapters/persistence/models"
	"campushub/internal/core/domain"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// attendanceRepository implements AttendanceRepository interface
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// GetByEventAndUser returns the attendance record for a (event, user) pair,
// or (nil, nil) when none exists
func (r *attendanceRepository) GetByEventAndUser(ctx context.Context, eventID string, userID uint) (*models.EventAttendance, error) {
	var att models.EventAttendance
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// Create inserts a fresh entry record. The unique (event_id, user_id) index
// serializes racing first scans: exactly one insert wins, the loser gets
// domain.ErrDuplicateEntry and no partial row.
func (r *attendanceRepository) Create(ctx context.Context, att *models.EventAttendance) error {
	err := r.db.WithContext(ctx).Create(att).Error
	if isDuplicateKey(err) {
		return domain.ErrDuplicateEntry
	}
	return err
}

// CompleteWithOdRequest closes an open attendance record and, when od is
// non-nil, inserts the OD request inside the same transaction. The update is
// conditional on exit_time still being NULL, so a racing exit scan observes
// zero affected rows and gets domain.ErrAlreadyRecorded without mutating
// anything.
func (r *attendanceRepository) CompleteWithOdRequest(ctx context.Context, attendanceID string, updates map[string]interface{}, od *models.OdRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.EventAttendance{}).
			Where("id = ? AND exit_time IS NULL", attendanceID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyRecorded
		}

		if od != nil {
			if err := tx.Create(od).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByUser returns a user's attendance history, newest first
func (r *attendanceRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]models.EventAttendance, int64, error) {
	var records []models.EventAttendance
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.EventAttendance{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&records).Error
	return records, total, err
}

// ListByEvent returns the attendance roster for an event
func (r *attendanceRepository) ListByEvent(ctx context.Context, eventID string) ([]models.EventAttendance, error) {
	var records []models.EventAttendance
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("User.Profile").
		Where("event_id = ?", eventID).
		Order("entry_time ASC").
		Find(&records).Error
	return records, err
}

// InvalidateStaleEntries marks records that entered before the cutoff and
// never exited as invalid. Completed records are terminal and untouched.
func (r *attendanceRepository) InvalidateStaleEntries(ctx context.Context, enteredBefore time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.EventAttendance{}).
		Where("exit_time IS NULL AND entry_time IS NOT NULL AND entry_time < ?", enteredBefore).
		Update("status", domain.AttendanceInvalid)
	return res.RowsAffected, res.Error
}

// isDuplicateKey reports whether err is a MySQL unique-constraint violation
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
