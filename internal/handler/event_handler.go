package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campushub/internal/auth"
	"campushub/internal/httperr"
	"campushub/internal/model"
	"campushub/internal/schema"
	"campushub/internal/service"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// CreateEventResponse represents the creation response.
type CreateEventResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Event   model.EventProjection `json:"event"`
}

// Create godoc
// @Summary Create an event
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schema.CreateEventRequest true "Event data"
// @Success 201 {object} CreateEventResponse
// @Failure 400 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /event [post]
func (h *EventHandler) Create(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req schema.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	projection, err := h.eventService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreateEventResponse{
		Success: true,
		Message: "Event created successfully",
		Event:   *projection,
	})
}

// List godoc
// @Summary List events with pagination and filters
// @Tags event
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param tag query string false "Filter by tag"
// @Param upcoming query string false "Only future events when 'true'"
// @Success 200 {object} httperr.Envelope
// @Failure 401 {object} httperr.Envelope
// @Router /event [get]
func (h *EventHandler) List(c echo.Context) error {
	var query schema.ListEventsQuery
	if err := c.Bind(&query); err != nil {
		return httperr.BadRequest("Invalid query parameters")
	}
	query.Normalize()

	page, err := h.eventService.List(c.Request().Context(), &query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, httperr.Envelope{Success: true, Data: page})
}

// Get godoc
// @Summary Fetch a single event
// @Tags event
// @Produce json
// @Param eventId path string true "Event id"
// @Success 200 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /event/{eventId} [get]
func (h *EventHandler) Get(c echo.Context) error {
	view, err := h.eventService.Get(c.Request().Context(), c.Param("eventId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, httperr.Envelope{Success: true, Data: view})
}

// Join godoc
// @Summary Join an event
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schema.JoinEventRequest true "Event id"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /event/join [post]
func (h *EventHandler) Join(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req schema.JoinEventRequest
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if req.EventID == "" {
		return httperr.BadRequest("Event ID is required")
	}

	if err := h.eventService.Join(c.Request().Context(), userID, req.EventID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, httperr.OK("You successfully joined the event"))
}

// Leave godoc
// @Summary Leave an event
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body schema.JoinEventRequest true "Event id"
// @Success 200 {object} httperr.Envelope
// @Failure 400 {object} httperr.Envelope
// @Failure 404 {object} httperr.Envelope
// @Router /event/leave [post]
func (h *EventHandler) Leave(c echo.Context) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req schema.JoinEventRequest
	if err := c.Bind(&req); err != nil {
		return httperr.BadRequest("Invalid request body")
	}
	if req.EventID == "" {
		return httperr.BadRequest("Event ID is required")
	}

	if err := h.eventService.Leave(c.Request().Context(), userID, req.EventID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, httperr.OK("You successfully left the event"))
}
