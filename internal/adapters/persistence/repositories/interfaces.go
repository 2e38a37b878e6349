package repositories

import (
	"context"
	"time"

	"campushub/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateFields(ctx context.Context, id uint, updates map[string]interface{}) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByRegistrationNumber(ctx context.Context, regNo string) (bool, error)
	GetProfileByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uint, updates map[string]interface{}) error
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// EventRepository defines event repository interface
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error
	ListPublished(ctx context.Context, eventType string, offset, limit int) ([]models.Event, int64, error)
	ListByOrganizer(ctx context.Context, organizerID uint) ([]models.Event, error)

	CountRegistrations(ctx context.Context, eventID string) (int64, error)
	GetRegistration(ctx context.Context, eventID string, userID uint) (*models.EventRegistration, error)
	CreateRegistration(ctx context.Context, reg *models.EventRegistration) error
	DeleteRegistration(ctx context.Context, eventID string, userID uint) error
	ListRegistrationsByUser(ctx context.Context, userID uint) ([]models.EventRegistration, error)

	GetBookmark(ctx context.Context, eventID string, userID uint) (*models.EventBookmark, error)
	CreateBookmark(ctx context.Context, bm *models.EventBookmark) error
	DeleteBookmark(ctx context.Context, eventID string, userID uint) error
	ListBookmarksByUser(ctx context.Context, userID uint) ([]models.EventBookmark, error)
}

// AttendanceRepository defines the attendance record store.
// Both writes must fail cleanly (no partial record) on conflict:
// Create relies on the (event_id, user_id) unique index and
// CompleteWithOdRequest on a conditional update inside one transaction.
type AttendanceRepository interface {
	// GetByEventAndUser returns (nil, nil) when no record exists
	GetByEventAndUser(ctx context.Context, eventID string, userID uint) (*models.EventAttendance, error)
	// Create inserts a fresh entry record; a racing duplicate insert
	// returns domain.ErrDuplicateEntry
	Create(ctx context.Context, att *models.EventAttendance) error
	// CompleteWithOdRequest applies the exit patch to a record that is
	// still open (exit_time IS NULL) and, when od is non-nil, inserts the
	// OD request in the same transaction. A record already completed by a
	// racing scan returns domain.ErrAlreadyRecorded and writes nothing.
	CompleteWithOdRequest(ctx context.Context, attendanceID string, updates map[string]interface{}, od *models.OdRequest) error
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]models.EventAttendance, int64, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.EventAttendance, error)
	// InvalidateStaleEntries marks records still open past the cutoff as invalid
	InvalidateStaleEntries(ctx context.Context, enteredBefore time.Time) (int64, error)
}

// OdRepository defines the On-Duty request store
type OdRepository interface {
	GetByID(ctx context.Context, id string) (*models.OdRequest, error)
	ListByUser(ctx context.Context, userID uint) ([]models.OdRequest, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]models.OdRequest, int64, error)
	UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error
}

// ClubRepository defines the club directory store
type ClubRepository interface {
	List(ctx context.Context, category string, offset, limit int) ([]models.Club, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Club, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, club *models.Club) error

	GetMembership(ctx context.Context, clubID, userID uint) (*models.ClubMembership, error)
	CreateMembership(ctx context.Context, m *models.ClubMembership) error
	DeleteMembership(ctx context.Context, clubID, userID uint) error
	ListMembershipsByUser(ctx context.Context, userID uint) ([]models.ClubMembership, error)
}
