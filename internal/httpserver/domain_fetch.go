package httpserver

import (
	"context"

	fetchHTTP "pronote-gateway/internal/fetch/delivery/http"
	fetchUC "pronote-gateway/internal/fetch/usecase"
	"pronote-gateway/internal/middleware"
	"pronote-gateway/pkg/timebox"

	"github.com/gin-gonic/gin"
)

// setupFetchDomain initializes the fetch domain and registers its routes.
//
// The worker pool is shared across requests so a burst of fetches cannot
// open an unbounded number of portal sessions at once.
func (srv HTTPServer) setupFetchDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	p := srv.cfg.Pronote

	// 1. Worker pool
	runner := timebox.NewRunner(p.WorkerCapacity)

	// 2. UseCase
	uc := fetchUC.New(srv.l, srv.portal, runner, srv.metrics, fetchUC.Budgets{
		Login:    p.Timeouts.Login,
		Notes:    p.Timeouts.Notes,
		Lessons:  p.Timeouts.Lessons,
		Next7:    p.Timeouts.Next7,
		Homework: p.Timeouts.Homework,
	}, p.Mock, p.IncludeContent)

	// 3. HTTP Handler
	h := fetchHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/pronote/*, plus the bare /ping probe
	fetchHTTP.RegisterRoutes(api.Group("/pronote"), h, mw)
	srv.gin.GET("/ping", h.Ping)

	if p.Mock {
		srv.l.Infof(ctx, "Fetch domain registered in MOCK mode")
	} else {
		srv.l.Infof(ctx, "Fetch domain registered against %s", srv.portal.SchoolURL())
	}
	return nil
}
