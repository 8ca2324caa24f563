package http

import (
	"github.com/gin-gonic/gin"

	"pronote-gateway/internal/fetch"
	"pronote-gateway/pkg/log"
)

// Handler is the public interface for the fetch HTTP delivery layer.
type Handler interface {
	Fetch(c *gin.Context)
	ProbeLogin(c *gin.Context)
	Ping(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc fetch.UseCase
}

// New creates a new HTTP handler for the fetch domain.
func New(l log.Logger, uc fetch.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
