package handlers

import (
	"errors"

	"campushub/internal/core/domain"
	"campushub/internal/core/services"
	"campushub/internal/pkg/response"
	"campushub/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ScanHandler handles QR attendance scans
type ScanHandler struct {
	attendanceService *services.AttendanceService
}

// NewScanHandler creates a new scan handler
func NewScanHandler(attendanceService *services.AttendanceService) *ScanHandler {
	return &ScanHandler{attendanceService: attendanceService}
}

// Scan processes a QR attendance scan
// @Summary Submit an attendance QR scan
// @Description First scan records entry, second scan records exit and verifies attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ScanInput true "Scanned QR data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 410 {object} response.Response
// @Router /scan [post]
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.ScanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.attendanceService.ProcessScan(c.Context(), userID, input.QrData)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenMalformed):
			return response.BadRequest(c, "Invalid QR code format")
		case errors.Is(err, domain.ErrScanExpired):
			return response.Gone(c, "QR code has expired, please scan the current code")
		case errors.Is(err, domain.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, domain.ErrScanDisabled):
			return response.Forbidden(c, "QR attendance is not enabled for this event")
		case errors.Is(err, domain.ErrEventNotStarted):
			return response.BadRequest(c, "Event has not started yet")
		case errors.Is(err, domain.ErrEventEnded):
			return response.Gone(c, "Event has already ended")
		case errors.Is(err, domain.ErrAlreadyRecorded):
			return response.Conflict(c, "Attendance already recorded for this event")
		default:
			return response.InternalServerError(c, "Failed to process scan")
		}
	}

	return response.Success(c, result.Message, result)
}
