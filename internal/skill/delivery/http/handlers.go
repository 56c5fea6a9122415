package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"abe-voice/internal/skill"
)

// HandleAlexa godoc
// @Summary     Voice skill webhook
// @Description Answers launch and intent requests with a plain-text speech envelope. Always responds 200.
// @Tags        Skill
// @Accept      json
// @Produce     json
// @Param       body body     model.Envelope true "Platform request"
// @Success     200  {object} skill.Response
// @Failure     403  {object} response.Resp "IP not whitelisted"
// @Failure     429  {object} response.Resp "Rate limit exceeded"
// @Router      /webhook/alexa [POST]
func (h *handler) HandleAlexa(c *gin.Context) {
	ctx := c.Request.Context()

	env, err := h.processAlexaReq(c)
	if err != nil {
		h.l.Warnf(ctx, "skill.delivery.HandleAlexa: %v", err)
		c.JSON(http.StatusOK, h.mapError(ctx, err))
		return
	}

	output, err := h.uc.Dispatch(ctx, skill.DispatchInput{Envelope: env})
	if err != nil {
		h.l.Warnf(ctx, "uc.Dispatch: %v", err)
		c.JSON(http.StatusOK, h.mapError(ctx, err))
		return
	}

	h.l.Infof(ctx, "skill.delivery.HandleAlexa: outcome=%s kind=%q events=%d", output.Outcome, output.Kind, output.Events)
	c.JSON(http.StatusOK, output.Response)
}
