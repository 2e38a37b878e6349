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

// EventHandler handles event catalog, registration and QR endpoints
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create creates a new event
// @Summary Create event
// @Description Create a new event (organizer or admin)
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateEventInput true "Event data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	event, err := h.eventService.Create(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format")
		case errors.Is(err, domain.ErrInvalidEventWindow):
			return response.BadRequest(c, "Event end must not be before event start")
		case errors.Is(err, domain.ErrMinimumAttendance):
			return response.BadRequest(c, "Minimum attendance must be at least 15 minutes")
		default:
			return response.InternalServerError(c, "Failed to create event")
		}
	}

	return response.Created(c, "Event created successfully", event)
}

// List returns published events
// @Summary List published events
// @Tags Events
// @Produce json
// @Param type query string false "Event type filter (event|hackathon)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	eventType := c.Query("type")

	events, total, err := h.eventService.ListPublished(c.Context(), eventType, params)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve events")
	}

	return response.Success(c, "Events retrieved", pagination.NewResponse(events, params, total))
}

// Get returns a single event
// @Summary Get event by ID
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(domain.Role)

	event, err := h.eventService.GetByID(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to retrieve event")
	}

	return response.Success(c, "Event retrieved", event)
}

// ListMine returns the caller's own events (organizer)
// @Summary List own events
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /events/mine [get]
func (h *EventHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	events, err := h.eventService.ListMyEvents(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve events")
	}

	return response.Success(c, "Events retrieved", events)
}

// Update applies a partial update to an event
// @Summary Update event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body services.UpdateEventInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(domain.Role)

	var input services.UpdateEventInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	event, err := h.eventService.Update(c.Context(), c.Params("id"), userID, role, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, domain.ErrNotEventOrganizer):
			return response.Forbidden(c, "Only the event organizer can update this event")
		default:
			return response.InternalServerError(c, "Failed to update event")
		}
	}

	return response.Success(c, "Event updated successfully", event)
}

// Register registers the caller for an event
// @Summary Register for event
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /events/{id}/register [post]
func (h *EventHandler) Register(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	reg, err := h.eventService.Register(c.Context(), c.Params("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			return response.NotFound(c, "Event not found")
		case errors.Is(err, domain.ErrEventNotPublished):
			return response.Forbidden(c, "Event is not open for registration")
		case errors.Is(err, domain.ErrEventEnded):
			return response.Gone(c, "Event has already ended")
		case errors.Is(err, domain.ErrEventFull):
			return response.Conflict(c, "Event has reached maximum participants")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			return response.Conflict(c, "Already registered for this event")
		default:
			return response.InternalServerError(c, "Failed to register")
		}
	}

	return response.Created(c, "Registered successfully", reg)
}

// CancelRegistration cancels the caller's registration
// @Summary Cancel event registration
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id}/register [delete]
func (h *EventHandler) CancelRegistration(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.eventService.CancelRegistration(c.Context(), c.Params("id"), userID); err != nil {
		if errors.Is(err, domain.ErrNotRegistered) {
			return response.NotFound(c, "Not registered for this event")
		}
		return response.InternalServerError(c, "Failed to cancel registration")
	}

	return response.Success(c, "Registration cancelled", nil)
}

// ListMyRegistrations returns the caller's registrations
// @Summary List own event registrations
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /events/registrations/my [get]
func (h *EventHandler) ListMyRegistrations(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	regs, err := h.eventService.ListMyRegistrations(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve registrations")
	}

	return response.Success(c, "Registrations retrieved", regs)
}

// Bookmark saves an event to the caller's bookmarks
// @Summary Bookmark event
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id}/bookmark [post]
func (h *EventHandler) Bookmark(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.eventService.Bookmark(c.Context(), c.Params("id"), userID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to bookmark event")
	}

	return response.Success(c, "Event bookmarked", nil)
}

// Unbookmark removes an event from the caller's bookmarks
// @Summary Remove event bookmark
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.Response
// @Router /events/{id}/bookmark [delete]
func (h *EventHandler) Unbookmark(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.eventService.Unbookmark(c.Context(), c.Params("id"), userID); err != nil {
		return response.InternalServerError(c, "Failed to remove bookmark")
	}

	return response.Success(c, "Bookmark removed", nil)
}

// ListMyBookmarks returns the caller's bookmarked events
// @Summary List own bookmarks
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /events/bookmarks/my [get]
func (h *EventHandler) ListMyBookmarks(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	bookmarks, err := h.eventService.ListMyBookmarks(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve bookmarks")
	}

	return response.Success(c, "Bookmarks retrieved", bookmarks)
}

// IssueQr issues a fresh QR payload for the venue display
// @Summary Issue attendance QR payload
// @Description Returns a short-lived QR payload for the venue display (organizer/admin)
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id}/qr [get]
func (h *EventHandler) IssueQr(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(domain.Role)

	qr, err := h.eventService.IssueQrPayload(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return h.qrError(c, err)
	}

	return response.Success(c, "QR payload issued", qr)
}

// QrImage renders the current QR payload as a PNG
// @Summary Render attendance QR code image
// @Tags Events
// @Produce png
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {string} binary "PNG image"
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /events/{id}/qr.png [get]
func (h *EventHandler) QrImage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(domain.Role)

	png, err := h.eventService.RenderQrPNG(c.Context(), c.Params("id"), userID, role)
	if err != nil {
		return h.qrError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *EventHandler) qrError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return response.NotFound(c, "Event not found")
	case errors.Is(err, domain.ErrNotEventOrganizer):
		return response.Forbidden(c, "Only the event organizer can issue QR codes")
	case errors.Is(err, domain.ErrScanDisabled):
		return response.Forbidden(c, "QR attendance is not enabled for this event")
	default:
		return response.InternalServerError(c, "Failed to issue QR code")
	}
}
