package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the list events query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateReq binds and validates the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAvailabilityReq binds and validates the availability request body.
func (h *handler) processAvailabilityReq(c *gin.Context) (availabilityReq, error) {
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
