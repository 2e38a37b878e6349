package services

import (
	"context"
	"errors"
	"log"
	"time"

	"campushub/internal/adapters/persistence/models"
	"campushub/internal/adapters/persistence/repositories"
	"campushub/internal/core/domain"
	"campushub/internal/pkg/pagination"
	"campushub/internal/pkg/qrtoken"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// EventService handles event catalog, registration and QR issuance logic
type EventService struct {
	eventRepo repositories.EventRepository

	now func() time.Time
}

// NewEventService creates a new event service
func NewEventService(eventRepo repositories.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// CreateEventInput represents event creation input
type CreateEventInput struct {
	Title                    string `json:"title" validate:"required,min=3,max=200"`
	Description              string `json:"description" validate:"omitempty,max=5000"`
	EventType                string `json:"event_type" validate:"required,oneof=event hackathon"`
	StartDate                string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate                  string `json:"end_date" validate:"required,datetime=2006-01-02"`
	StartTime                string `json:"event_start_time" validate:"required,datetime=15:04"`
	EndTime                  string `json:"event_end_time" validate:"required,datetime=15:04"`
	VenueName                string `json:"venue_name" validate:"omitempty,max=200"`
	RegistrationLink         string `json:"registration_link" validate:"omitempty,url,max=255"`
	MaxParticipants          *int   `json:"max_participants" validate:"omitempty,gte=1"`
	MinimumAttendanceMinutes int    `json:"minimum_attendance_minutes" validate:"omitempty,gte=0"`
	IsOdEligible             bool   `json:"is_od_eligible"`
	QrEnabled                *bool  `json:"qr_enabled"`
	IsPublished              bool   `json:"is_published"`
	OrganizerName            string `json:"organizer_name" validate:"required,min=2,max=120"`
	BannerURL                string `json:"banner_url" validate:"omitempty,url,max=255"`
}

// Create creates a new event owned by the caller's organization
func (s *EventService) Create(ctx context.Context, organizerID uint, input *CreateEventInput) (*models.Event, error) {
	startDate, err := time.ParseInLocation("2006-01-02", input.StartDate, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	endDate, err := time.ParseInLocation("2006-01-02", input.EndDate, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	minimum := input.MinimumAttendanceMinutes
	if minimum == 0 {
		minimum = 45
	}
	if minimum < 15 {
		return nil, domain.ErrMinimumAttendance
	}

	qrEnabled := true
	if input.QrEnabled != nil {
		qrEnabled = *input.QrEnabled
	}

	event := &models.Event{
		ID:                       uuid.New().String(),
		Title:                    input.Title,
		EventType:                domain.EventType(input.EventType),
		StartDate:                startDate,
		EndDate:                  endDate,
		StartTime:                input.StartTime,
		EndTime:                  input.EndTime,
		MaxParticipants:          input.MaxParticipants,
		MinimumAttendanceMinutes: minimum,
		IsOdEligible:             input.IsOdEligible,
		QrEnabled:                qrEnabled,
		IsPublished:              input.IsPublished,
		OrganizerID:              &organizerID,
		OrganizerName:            input.OrganizerName,
	}
	if input.Description != "" {
		event.Description = &input.Description
	}
	if input.VenueName != "" {
		event.VenueName = &input.VenueName
	}
	if input.RegistrationLink != "" {
		event.RegistrationLink = &input.RegistrationLink
	}
	if input.BannerURL != "" {
		event.BannerURL = &input.BannerURL
	}

	// the window must be well formed before anything can be scanned against it
	if event.EndsAt().Before(event.StartsAt()) {
		return nil, domain.ErrInvalidEventWindow
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	log.Printf("✅ Event created: %s (%s) by organizer %d", event.Title, event.ID, organizerID)
	return event, nil
}

// GetByID returns an event. Unpublished events are only visible to their
// organizer and admins.
func (s *EventService) GetByID(ctx context.Context, id string, requesterID uint, role domain.Role) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	if !event.IsPublished && role != domain.RoleAdmin {
		if event.OrganizerID == nil || *event.OrganizerID != requesterID {
			return nil, domain.ErrEventNotFound
		}
	}

	return event, nil
}

// ListPublished returns published events, optionally filtered by type
func (s *EventService) ListPublished(ctx context.Context, eventType string, params *pagination.Params) ([]models.Event, int64, error) {
	return s.eventRepo.ListPublished(ctx, eventType, params.Offset, params.Limit)
}

// ListMyEvents returns events owned by the caller's organization
func (s *EventService) ListMyEvents(ctx context.Context, organizerID uint) ([]models.Event, error) {
	return s.eventRepo.ListByOrganizer(ctx, organizerID)
}

// UpdateEventInput represents a partial event update
type UpdateEventInput struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	VenueName   *string `json:"venue_name" validate:"omitempty,max=200"`
	IsPublished *bool   `json:"is_published"`
	QrEnabled   *bool   `json:"qr_enabled"`
	BannerURL   *string `json:"banner_url" validate:"omitempty,url,max=255"`
}

// Update applies a partial update to an event owned by the caller
func (s *EventService) Update(ctx context.Context, id string, requesterID uint, role domain.Role, input *UpdateEventInput) (*models.Event, error) {
	event, err := s.getOwnedEvent(ctx, id, requesterID, role)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.VenueName != nil {
		updates["venue_name"] = *input.VenueName
	}
	if input.IsPublished != nil {
		updates["is_published"] = *input.IsPublished
	}
	if input.QrEnabled != nil {
		updates["qr_enabled"] = *input.QrEnabled
	}
	if input.BannerURL != nil {
		updates["banner_url"] = *input.BannerURL
	}
	if len(updates) == 0 {
		return event, nil
	}

	if err := s.eventRepo.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(ctx, id)
}

// ============================================================
// Registration & Bookmarks
// ============================================================

// Register registers a user for a published event
func (s *EventService) Register(ctx context.Context, eventID string, userID uint) (*models.EventRegistration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	if !event.IsPublished {
		return nil, domain.ErrEventNotPublished
	}
	if event.WindowStatus(s.now()) == domain.WindowEnded {
		return nil, domain.ErrEventEnded
	}

	// capacity check
	if event.MaxParticipants != nil {
		count, err := s.eventRepo.CountRegistrations(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if count >= int64(*event.MaxParticipants) {
			return nil, domain.ErrEventFull
		}
	}

	reg := &models.EventRegistration{
		EventID: eventID,
		UserID:  userID,
		Status:  "registered",
	}
	if err := s.eventRepo.CreateRegistration(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, err
	}

	log.Printf("✅ Registration: event=%s user=%d", eventID, userID)
	return reg, nil
}

// CancelRegistration removes a user's registration
func (s *EventService) CancelRegistration(ctx context.Context, eventID string, userID uint) error {
	reg, err := s.eventRepo.GetRegistration(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if reg == nil {
		return domain.ErrNotRegistered
	}
	return s.eventRepo.DeleteRegistration(ctx, eventID, userID)
}

// ListMyRegistrations returns the user's event registrations
func (s *EventService) ListMyRegistrations(ctx context.Context, userID uint) ([]models.EventRegistration, error) {
	return s.eventRepo.ListRegistrationsByUser(ctx, userID)
}

// Bookmark saves an event to the user's bookmarks
func (s *EventService) Bookmark(ctx context.Context, eventID string, userID uint) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEventNotFound
		}
		return err
	}

	err := s.eventRepo.CreateBookmark(ctx, &models.EventBookmark{EventID: eventID, UserID: userID})
	if errors.Is(err, domain.ErrDuplicateEntry) {
		// bookmarking twice is a no-op
		return nil
	}
	return err
}

// Unbookmark removes an event from the user's bookmarks
func (s *EventService) Unbookmark(ctx context.Context, eventID string, userID uint) error {
	return s.eventRepo.DeleteBookmark(ctx, eventID, userID)
}

// ListMyBookmarks returns the user's bookmarked events
func (s *EventService) ListMyBookmarks(ctx context.Context, userID uint) ([]models.EventBookmark, error) {
	return s.eventRepo.ListBookmarksByUser(ctx, userID)
}

// ============================================================
// QR Issuance
// ============================================================

// QrPayloadResponse carries a freshly issued QR payload for a venue display
type QrPayloadResponse struct {
	EventID   string `json:"event_id"`
	Payload   string `json:"payload"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresIn int    `json:"expires_in_seconds"`
}

// IssueQrPayload issues a fresh QR payload for an event's venue display.
// Only the organizer or an admin may issue codes, and only while scanning
// is enabled.
func (s *EventService) IssueQrPayload(ctx context.Context, eventID string, requesterID uint, role domain.Role) (*QrPayloadResponse, error) {
	event, err := s.getOwnedEvent(ctx, eventID, requesterID, role)
	if err != nil {
		return nil, err
	}
	if !event.QrEnabled {
		return nil, domain.ErrScanDisabled
	}

	now := s.now()
	payload, err := qrtoken.Encode(event.ID, now)
	if err != nil {
		return nil, err
	}

	return &QrPayloadResponse{
		EventID:   event.ID,
		Payload:   payload,
		IssuedAt:  now.UnixMilli(),
		ExpiresIn: int(qrtoken.Freshness / time.Second),
	}, nil
}

// RenderQrPNG issues a fresh payload and renders it as a QR code image
func (s *EventService) RenderQrPNG(ctx context.Context, eventID string, requesterID uint, role domain.Role) ([]byte, error) {
	resp, err := s.IssueQrPayload(ctx, eventID, requesterID, role)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(resp.Payload, qrcode.Medium, 512)
}

// getOwnedEvent loads an event and enforces organizer/admin ownership
func (s *EventService) getOwnedEvent(ctx context.Context, eventID string, requesterID uint, role domain.Role) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	if role != domain.RoleAdmin {
		if event.OrganizerID == nil || *event.OrganizerID != requesterID {
			return nil, domain.ErrNotEventOrganizer
		}
	}
	return event, nil
}
