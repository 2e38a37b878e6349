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

	"gorm.io/gorm"
)

// OdService handles the On-Duty approval workflow. Requests are only ever
// created by the attendance pipeline; faculty approve or reject them here.
type OdService struct {
	odRepo repositories.OdRepository

	now func() time.Time
}

// NewOdService creates a new OD service
func NewOdService(odRepo repositories.OdRepository) *OdService {
	return &OdService{
		odRepo: odRepo,
		now:    time.Now,
	}
}

// RejectInput represents an OD rejection
type RejectInput struct {
	Reason string `json:"reason" validate:"required,min=3,max=255"`
}

// GetMyRequests returns the caller's OD requests
func (s *OdService) GetMyRequests(ctx context.Context, userID uint) ([]models.OdRequest, error) {
	return s.odRepo.ListByUser(ctx, userID)
}

// GetPending returns pending OD requests for faculty review
func (s *OdService) GetPending(ctx context.Context, params *pagination.Params) ([]models.OdRequest, int64, error) {
	return s.odRepo.ListByStatus(ctx, string(domain.OdPending), params.Offset, params.Limit)
}

// Approve approves a pending OD request
func (s *OdService) Approve(ctx context.Context, id string, facultyID uint) (*models.OdRequest, error) {
	od, err := s.getPendingRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	updates := map[string]interface{}{
		"status":      domain.OdApproved,
		"faculty_id":  facultyID,
		"approved_at": now,
	}
	if err := s.odRepo.UpdateFields(ctx, od.ID, updates); err != nil {
		return nil, err
	}

	log.Printf("✅ OD request approved: %s by faculty %d", od.ID, facultyID)
	return s.odRepo.GetByID(ctx, od.ID)
}

// Reject rejects a pending OD request with a reason
func (s *OdService) Reject(ctx context.Context, id string, facultyID uint, input *RejectInput) (*models.OdRequest, error) {
	od, err := s.getPendingRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":           domain.OdRejected,
		"faculty_id":       facultyID,
		"rejection_reason": input.Reason,
	}
	if err := s.odRepo.UpdateFields(ctx, od.ID, updates); err != nil {
		return nil, err
	}

	log.Printf("✅ OD request rejected: %s by faculty %d", od.ID, facultyID)
	return s.odRepo.GetByID(ctx, od.ID)
}

func (s *OdService) getPendingRequest(ctx context.Context, id string) (*models.OdRequest, error) {
	od, err := s.odRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOdRequestNotFound
		}
		return nil, err
	}
	if od.Status != domain.OdPending {
		return nil, domain.ErrOdNotPending
	}
	return od, nil
}
