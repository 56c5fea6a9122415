package http

import (
	"github.com/gin-gonic/gin"

	"abe-voice/internal/skill"
	"abe-voice/pkg/log"
)

// Handler is the public interface for the skill webhook.
type Handler interface {
	HandleAlexa(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc skill.UseCase
}

// New creates a new HTTP handler for the skill domain.
func New(l log.Logger, uc skill.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
