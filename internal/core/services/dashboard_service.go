package services

import (
	"context"

	"campushub/internal/adapters/persistence/repositories"
	"campushub/internal/core/domain"
)

// DashboardService assembles role-shaped activity summaries
type DashboardService struct {
	eventRepo      repositories.EventRepository
	attendanceRepo repositories.AttendanceRepository
	odRepo         repositories.OdRepository
	clubRepo       repositories.ClubRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	eventRepo repositories.EventRepository,
	attendanceRepo repositories.AttendanceRepository,
	odRepo repositories.OdRepository,
	clubRepo repositories.ClubRepository,
) *DashboardService {
	return &DashboardService{
		eventRepo:      eventRepo,
		attendanceRepo: attendanceRepo,
		odRepo:         odRepo,
		clubRepo:       clubRepo,
	}
}

// GetDashboard returns a summary shaped by the caller's role
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint, role domain.Role) (map[string]interface{}, error) {
	switch role {
	case domain.RoleOrganization:
		return s.organizerDashboard(ctx, userID)
	default:
		return s.studentDashboard(ctx, userID)
	}
}

// studentDashboard summarizes a student's registrations, attendance and OD requests
func (s *DashboardService) studentDashboard(ctx context.Context, userID uint) (map[string]interface{}, error) {
	registrations, err := s.eventRepo.ListRegistrationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	attendance, attendanceTotal, err := s.attendanceRepo.ListByUser(ctx, userID, 0, 10)
	if err != nil {
		return nil, err
	}

	odRequests, err := s.odRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var verified, odApproved, odPending int
	for _, a := range attendance {
		if a.Status == domain.AttendanceVerified {
			verified++
		}
	}
	for _, od := range odRequests {
		switch od.Status {
		case domain.OdApproved:
			odApproved++
		case domain.OdPending:
			odPending++
		}
	}

	memberships, err := s.clubRepo.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"registered_events":   len(registrations),
		"attendance_total":    attendanceTotal,
		"attendance_verified": verified,
		"recent_attendance":   attendance,
		"od_total":            len(odRequests),
		"od_approved":         odApproved,
		"od_pending":          odPending,
		"clubs_joined":        len(memberships),
	}, nil
}

// organizerDashboard summarizes an organizer's events and their turnout
func (s *DashboardService) organizerDashboard(ctx context.Context, organizerID uint) (map[string]interface{}, error) {
	events, err := s.eventRepo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]map[string]interface{}, 0, len(events))
	for _, e := range events {
		regCount, err := s.eventRepo.CountRegistrations(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, map[string]interface{}{
			"event_id":      e.ID,
			"title":         e.Title,
			"start_date":    e.StartDate.Format("2006-01-02"),
			"is_published":  e.IsPublished,
			"registrations": regCount,
		})
	}

	return map[string]interface{}{
		"events_total": len(events),
		"events":       summaries,
	}, nil
}
