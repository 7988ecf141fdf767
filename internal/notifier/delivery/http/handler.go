package http

import (
	"github.com/gin-gonic/gin"

	"todo-backend/pkg/response"
)

type runResp struct {
	Sent int `json:"sent"`
}

// RunNow godoc
// @Summary     Trigger the due-task notifier
// @Description Runs one notifier cycle immediately. Intended for the external scheduler; guarded by the internal key.
// @Tags        Internal
// @Produce     json
// @Param       X-Internal-Key header string true "Internal shared key"
// @Success     200 {object} runResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /internal/notify-due-tasks [POST]
func (h *handler) RunNow(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Run(ctx)
	if err != nil {
		h.l.Errorf(ctx, "notifier run failed: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, runResp{Sent: out.Sent})
}
