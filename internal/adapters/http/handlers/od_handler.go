package handlers

import (
	"errors"

	"campushub/internal/core/domain"
	"campushub/internal/core/services"
	"campushub/internal/pkg/pagination"
	"campushub/internal/pkg/response"
	"campushub/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// OdHandler handles On-Duty workflow endpoints
type OdHandler struct {
	odService *services.OdService
}

// NewOdHandler creates a new OD handler
func NewOdHandler(odService *services.OdService) *OdHandler {
	return &OdHandler{odService: odService}
}

// GetMyRequests returns the caller's OD requests
// @Summary List own OD requests
// @Tags OD
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /od/my [get]
func (h *OdHandler) GetMyRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	requests, err := h.odService.GetMyRequests(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve OD requests")
	}

	return response.Success(c, "OD requests retrieved", requests)
}

// GetPending returns pending OD requests for faculty review
// @Summary List pending OD requests
// @Tags OD
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /od/pending [get]
func (h *OdHandler) GetPending(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	requests, total, err := h.odService.GetPending(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve pending requests")
	}

	return response.Success(c, "Pending OD requests retrieved", pagination.NewResponse(requests, params, total))
}

// Approve approves a pending OD request
// @Summary Approve OD request
// @Tags OD
// @Produce json
// @Security BearerAuth
// @Param id path string true "OD request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /od/{id}/approve [put]
func (h *OdHandler) Approve(c *fiber.Ctx) error {
	facultyID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	od, err := h.odService.Approve(c.Context(), c.Params("id"), facultyID)
	if err != nil {
		return h.odError(c, err, "Failed to approve OD request")
	}

	return response.Success(c, "OD request approved", od)
}

// Reject rejects a pending OD request
// @Summary Reject OD request
// @Tags OD
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "OD request ID"
// @Param body body services.RejectInput true "Rejection reason"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /od/{id}/reject [put]
func (h *OdHandler) Reject(c *fiber.Ctx) error {
	facultyID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.RejectInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	od, err := h.odService.Reject(c.Context(), c.Params("id"), facultyID, &input)
	if err != nil {
		return h.odError(c, err, "Failed to reject OD request")
	}

	return response.Success(c, "OD request rejected", od)
}

func (h *OdHandler) odError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrOdRequestNotFound):
		return response.NotFound(c, "OD request not found")
	case errors.Is(err, domain.ErrOdNotPending):
		return response.Conflict(c, "OD request is not pending")
	default:
		return response.InternalServerError(c, fallback)
	}
}
