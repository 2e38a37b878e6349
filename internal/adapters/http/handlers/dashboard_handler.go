package handlers

import (
	"campushub/internal/core/domain"
	"campushub/internal/core/services"
	"campushub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the role-shaped dashboard endpoint
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns an activity summary for the caller
// @Summary Get dashboard
// @Description Returns a summary shaped by the caller's role
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(domain.Role)

	summary, err := h.dashboardService.GetDashboard(c.Context(), userID, role)
	if err != nil {
		return response.InternalServerError(c, "Failed to build dashboard")
	}

	return response.Success(c, "Dashboard retrieved", summary)
}
