package http

import (
	"github.com/gin-gonic/gin"
)

// processFetchReq binds and validates the fetch request body.
func (h *handler) processFetchReq(c *gin.Context) (fetchReq, error) {
	var req fetchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processProbeReq binds and validates the login probe query parameters.
func (h *handler) processProbeReq(c *gin.Context) (probeReq, error) {
	var req probeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
