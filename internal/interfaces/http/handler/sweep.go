package handler

import (
	"context"

	leasingapp "github.com/assetledger/backend/internal/application/leasing"
	"github.com/gin-gonic/gin"
)

// SweepRunner runs one lease expiry and overdue payment sweep
type SweepRunner interface {
	Run(ctx context.Context) (*leasingapp.SweepResult, error)
}

// SweepHandler exposes an on-demand sweep
type SweepHandler struct {
	BaseHandler
	runner SweepRunner
}

// NewSweepHandler creates a new SweepHandler
func NewSweepHandler(runner SweepRunner) *SweepHandler {
	return &SweepHandler{runner: runner}
}

// Run godoc
// @ID           runSweep
// @Summary      Run the lease expiry and overdue payment sweeps now
// @Description  Returns skipped=true when another instance holds the sweep lock.
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[leasingapp.SweepResult]
// @Failure      500 {object} ErrorResponse
// @Router       /sweeps/run [post]
func (h *SweepHandler) Run(c *gin.Context) {
	result, err := h.runner.Run(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
