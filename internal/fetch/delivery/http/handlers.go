package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pronote-gateway/pkg/response"
)

// Fetch godoc
// @Summary     Fetch the full Pronote snapshot
// @Description Logs into the portal with the supplied credentials and returns grades, timetable and homework as one normalized envelope. Individual sections that time out or fail are reported in meta and never fail the request.
// @Tags        Pronote
// @Accept      json
// @Produce     json
// @Param       body body fetchReq true "Portal credentials and optional date range"
// @Success     200 {object} fetch.Envelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     502 {object} response.Resp "Portal unreachable"
// @Router      /api/v1/pronote/fetch [POST]
func (h *handler) Fetch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFetchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	env, err := h.uc.Fetch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Fetch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// The envelope goes out verbatim, no wrapper.
	c.JSON(http.StatusOK, env)
}

// ProbeLogin godoc
// @Summary     Probe portal credentials
// @Description Attempts a portal login under the login budget without fetching any data.
// @Tags        Pronote
// @Accept      json
// @Produce     json
// @Param       username query string true "Portal username"
// @Param       password query string true "Portal password"
// @Success     200 {object} probeResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     504 {object} response.Resp "Login timed out"
// @Router      /api/v1/pronote/probe/login [GET]
func (h *handler) ProbeLogin(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProbeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ProbeLogin(ctx, req.Username, req.Password)
	if err != nil {
		h.l.Errorf(ctx, "uc.ProbeLogin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newProbeResp(out))
}

// Ping godoc
// @Summary     Service ping
// @Description Reports service liveness, serving mode and whether lesson content is included.
// @Tags        Pronote
// @Produce     json
// @Success     200 {object} pingResp
// @Router      /ping [GET]
func (h *handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, h.newPingResp())
}
