package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"abe-voice/internal/model"
)

// processAlexaReq binds the platform request body. Unreadable JSON counts as a malformed request.
func (h *handler) processAlexaReq(c *gin.Context) (model.Envelope, error) {
	var env model.Envelope
	if err := c.ShouldBindJSON(&env); err != nil {
		return env, fmt.Errorf("%w: %v", model.ErrMalformedRequest, err)
	}
	return env, nil
}
