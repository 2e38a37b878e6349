package handlers

import (
	"errors"
	"strconv"

	"campushub/internal/core/domain"
	"campushub/internal/core/services"
	"campushub/internal/pkg/pagination"
	"campushub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClubHandler handles club directory endpoints
type ClubHandler struct {
	clubService *services.ClubService
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubService *services.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// List returns the club directory
// @Summary List clubs
// @Tags Clubs
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /clubs [get]
func (h *ClubHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	category := c.Query("category")

	clubs, total, err := h.clubService.List(c.Context(), category, params)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Unknown club category")
		}
		return response.InternalServerError(c, "Failed to retrieve clubs")
	}

	return response.Success(c, "Clubs retrieved", pagination.NewResponse(clubs, params, total))
}

// Get returns a single club
// @Summary Get club by ID
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clubs/{id} [get]
func (h *ClubHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid club ID")
	}

	club, err := h.clubService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrClubNotFound) {
			return response.NotFound(c, "Club not found")
		}
		return response.InternalServerError(c, "Failed to retrieve club")
	}

	return response.Success(c, "Club retrieved", club)
}

// Join adds the caller to a club
// @Summary Join club
// @Tags Clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /clubs/{id}/join [post]
func (h *ClubHandler) Join(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid club ID")
	}

	m, err := h.clubService.Join(c.Context(), uint(id), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClubNotFound):
			return response.NotFound(c, "Club not found")
		case errors.Is(err, domain.ErrClubInactive):
			return response.Forbidden(c, "Club is not active")
		case errors.Is(err, domain.ErrAlreadyMember):
			return response.Conflict(c, "Already a member of this club")
		default:
			return response.InternalServerError(c, "Failed to join club")
		}
	}

	return response.Created(c, "Club joined successfully", m)
}

// Leave removes the caller from a club
// @Summary Leave club
// @Tags Clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clubs/{id}/leave [delete]
func (h *ClubHandler) Leave(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid club ID")
	}

	if err := h.clubService.Leave(c.Context(), uint(id), userID); err != nil {
		if errors.Is(err, domain.ErrNotMember) {
			return response.NotFound(c, "Not a member of this club")
		}
		return response.InternalServerError(c, "Failed to leave club")
	}

	return response.Success(c, "Club left successfully", nil)
}

// GetMyClubs returns the caller's club memberships
// @Summary List own club memberships
// @Tags Clubs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /clubs/my [get]
func (h *ClubHandler) GetMyClubs(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	memberships, err := h.clubService.GetMyClubs(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve memberships")
	}

	return response.Success(c, "Memberships retrieved", memberships)
}
