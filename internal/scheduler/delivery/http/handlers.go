package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AI-Agents-Org/scheduler-agent/pkg/response"
)

// List godoc
// @Summary     List calendar events
// @Description Resolves a date expression and lists events across all configured calendars.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       specificDate query string false "Date expression (today, tomorrow, amanhã, or YYYY-MM-DD)"
// @Param       maxResults   query int    false "Max events per calendar (default: 7)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduler/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListEvents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a calendar event
// @Description Creates an event on the target calendar. Start and end accept ISO datetimes or natural language.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduler/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Availability godoc
// @Summary     Check slot availability
// @Description Checks a time slot against every configured calendar and returns any conflicting events.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       body body availabilityReq true "Slot to check"
// @Success     200 {object} availabilityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduler/availability [POST]
func (h *handler) Availability(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAvailabilityReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CheckAvailability(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckAvailability: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAvailabilityResp(output))
}

// Now godoc
// @Summary     Current date
// @Description Returns the current date and full datetime in the configured timezone.
// @Tags        Scheduler
// @Produce     json
// @Success     200 {object} nowResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduler/now [GET]
func (h *handler) Now(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CurrentDate(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CurrentDate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newNowResp(output))
}
