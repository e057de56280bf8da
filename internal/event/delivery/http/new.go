package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"brme/internal/event"
	"brme/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Resolve(c *gin.Context)
	Create(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  event.UseCase
	now func() time.Time
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}
