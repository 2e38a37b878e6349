package handlers

import (
	"errors"

	"campushub/internal/core/domain"
	"campushub/internal/core/services"
	"campushub/internal/pkg/pagination"
	"campushub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles attendance history endpoints
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// GetMyAttendance returns the caller's attendance history
// @Summary Get own attendance history
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /attendance/my [get]
func (h *AttendanceHandler) GetMyAttendance(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)
	records, total, err := h.attendanceService.GetMyAttendance(c.Context(), userID, params)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve attendance history")
	}

	return response.Success(c, "Attendance history retrieved", pagination.NewResponse(records, params, total))
}

// GetEventAttendance returns the roster for an event (organizer/admin)
// @Summary Get event attendance roster
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id}/attendance [get]
func (h *AttendanceHandler) GetEventAttendance(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(domain.Role)

	records, err := h.attendanceService.GetEventAttendance(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, domain.ErrNotEventOrganizer):
			return response.Forbidden(c, "Only the event organizer can view the roster")
		default:
			return response.InternalServerError(c, "Failed to retrieve roster")
		}
	}

	return response.Success(c, "Roster retrieved", fiber.Map{
		"event_id":   c.Params("id"),
		"attendance": records,
	})
}
