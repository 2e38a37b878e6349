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
	"gorm.io/gorm"
)

// AttendanceService drives the attendance scan lifecycle: one entry scan and
// one exit scan per (event, user), with the OD request emitted atomically on
// a qualifying exit.
type AttendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	eventRepo      repositories.EventRepository

	// now is swappable for tests
	now func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	eventRepo repositories.EventRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
		now:            time.Now,
	}
}

// ScanInput represents a submitted QR scan
type ScanInput struct {
	QrData string `json:"qr_data" validate:"required"`
}

// ScanResult represents the outcome of a successful scan
type ScanResult struct {
	Kind         domain.ScanKind         `json:"kind"`
	EventTitle   string                  `json:"event_title"`
	Attendance   *models.EventAttendance `json:"attendance"`
	TotalMinutes *int                    `json:"total_minutes,omitempty"`
	Status       domain.AttendanceStatus `json:"attendance_status"`
	OdCreated    bool                    `json:"od_created"`
	Message      string                  `json:"message"`
}

// ProcessScan validates a scanned QR payload and advances the user's
// attendance record by exactly one transition. The caller's identity is the
// userID parameter; the payload only names the event.
//
// Every precondition failure (bad token, stale token, unknown event, scanning
// disabled, outside the event window) rejects the scan before any write.
func (s *AttendanceService) ProcessScan(ctx context.Context, userID uint, rawPayload string) (*ScanResult, error) {
	now := s.now()

	// 1. Decode and freshness-check the payload — before any store access
	payload, err := qrtoken.Decode(rawPayload, now)
	if err != nil {
		if errors.Is(err, qrtoken.ErrExpired) {
			return nil, domain.ErrScanExpired
		}
		return nil, domain.ErrTokenMalformed
	}

	// 2. Resolve the event
	event, err := s.eventRepo.GetByID(ctx, payload.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	if !event.QrEnabled {
		return nil, domain.ErrScanDisabled
	}

	// 3. Event window gate
	switch event.WindowStatus(now) {
	case domain.WindowNotStarted:
		return nil, domain.ErrEventNotStarted
	case domain.WindowEnded:
		return nil, domain.ErrEventEnded
	}

	// 4. Load the record and dispatch on its lifecycle state
	att, err := s.attendanceRepo.GetByEventAndUser(ctx, event.ID, userID)
	if err != nil {
		return nil, err
	}

	switch att.State() {
	case domain.StateAbsent:
		return s.recordEntry(ctx, event, userID, now)
	case domain.StateEntered:
		return s.recordExit(ctx, event, att, now)
	case domain.StateCompleted:
		return nil, domain.ErrAlreadyRecorded
	}

	return nil, domain.ErrInternalServer
}

// recordEntry applies the Absent → Entered transition
func (s *AttendanceService) recordEntry(ctx context.Context, event *models.Event, userID uint, now time.Time) (*ScanResult, error) {
	att := &models.EventAttendance{
		ID:          uuid.New().String(),
		EventID:     event.ID,
		UserID:      userID,
		EntryTime:   &now,
		QrScanCount: 1,
		Status:      domain.AttendancePending,
	}

	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		// a racing scan from another device already created the record
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, domain.ErrAlreadyRecorded
		}
		return nil, err
	}

	log.Printf("✅ Entry scan recorded: event=%s user=%d", event.ID, userID)

	return &ScanResult{
		Kind:       domain.ScanEntry,
		EventTitle: event.Title,
		Attendance: att,
		Status:     domain.AttendancePending,
		Message:    "Entry recorded. Scan again when leaving to complete attendance.",
	}, nil
}

// recordExit applies the Entered → Completed transition and, when the event
// is OD eligible and the stay met the minimum, emits the OD request in the
// same transaction as the attendance update.
func (s *AttendanceService) recordExit(ctx context.Context, event *models.Event, att *models.EventAttendance, now time.Time) (*ScanResult, error) {
	totalMinutes := int(now.Sub(*att.EntryTime) / time.Minute)

	status := domain.AttendancePending
	if totalMinutes >= event.MinimumAttendanceMinutes {
		status = domain.AttendanceVerified
	}

	updates := map[string]interface{}{
		"exit_time":     now,
		"total_minutes": totalMinutes,
		"qr_scan_count": att.QrScanCount + 1,
		"status":        status,
	}

	var od *models.OdRequest
	if event.IsOdEligible && totalMinutes >= event.MinimumAttendanceMinutes {
		od = &models.OdRequest{
			ID:           uuid.New().String(),
			UserID:       att.UserID,
			EventID:      event.ID,
			AttendanceID: &att.ID,
			ClassDate:    event.StartDate,
			Status:       domain.OdPending,
		}
	}

	if err := s.attendanceRepo.CompleteWithOdRequest(ctx, att.ID, updates, od); err != nil {
		return nil, err
	}

	att.ExitTime = &now
	att.TotalMinutes = &totalMinutes
	att.QrScanCount++
	att.Status = status

	log.Printf("✅ Exit scan recorded: event=%s user=%d minutes=%d status=%s od=%t",
		event.ID, att.UserID, totalMinutes, status, od != nil)

	message := "Attendance completed."
	if status == domain.AttendanceVerified {
		message = "Attendance verified."
		if od != nil {
			message = "Attendance verified. OD request submitted for approval."
		}
	}

	return &ScanResult{
		Kind:         domain.ScanExit,
		EventTitle:   event.Title,
		Attendance:   att,
		TotalMinutes: &totalMinutes,
		Status:       status,
		OdCreated:    od != nil,
		Message:      message,
	}, nil
}

// GetMyAttendance returns the user's attendance history
func (s *AttendanceService) GetMyAttendance(ctx context.Context, userID uint, params *pagination.Params) ([]models.EventAttendance, int64, error) {
	return s.attendanceRepo.ListByUser(ctx, userID, params.Offset, params.Limit)
}

// GetEventAttendance returns the roster for an event. Only the event's
// organizer (or an admin) may read it.
func (s *AttendanceService) GetEventAttendance(ctx context.Context, eventID string, requesterID uint, role domain.Role) ([]models.EventAttendance, error) {
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

	return s.attendanceRepo.ListByEvent(ctx, eventID)
}

// InvalidateStaleEntries closes out records that never got an exit scan for
// events long over, marking them invalid. Returns how many were swept.
func (s *AttendanceService) InvalidateStaleEntries(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := s.now().Add(-olderThan)
	return s.attendanceRepo.InvalidateStaleEntries(ctx, cutoff)
}
