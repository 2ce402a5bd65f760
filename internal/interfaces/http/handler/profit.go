package handler

import (
	profitshareapp "github.com/assetledger/backend/internal/application/profitshare"
	"github.com/gin-gonic/gin"
)

// ProfitHandler handles profit standard and distribution endpoints
type ProfitHandler struct {
	BaseHandler
	service *profitshareapp.Service
}

// NewProfitHandler creates a new ProfitHandler
func NewProfitHandler(service *profitshareapp.Service) *ProfitHandler {
	return &ProfitHandler{service: service}
}

// AddStandard godoc
// @ID           addProfitStandard
// @Summary      Add a profit standard to an investment
// @Description  Windows of standards on the same investment may not overlap.
// @Tags         profits
// @Accept       json
// @Produce      json
// @Param        id      path string                                true "Investment ID" format(uuid)
// @Param        request body profitshareapp.CreateStandardRequest true "Standard"
// @Success      201 {object} APIResponse[profitshareapp.StandardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /investments/{id}/standards [post]
func (h *ProfitHandler) AddStandard(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req profitshareapp.CreateStandardRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.service.AddStandard(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListStandards godoc
// @ID           listProfitStandards
// @Summary      List the profit standards of an investment
// @Tags         profits
// @Produce      json
// @Param        id path string true "Investment ID" format(uuid)
// @Success      200 {object} APIResponse[[]profitshareapp.StandardResponse]
// @Router       /investments/{id}/standards [get]
func (h *ProfitHandler) ListStandards(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.ListStandards(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Distribute godoc
// @ID           distributeProfit
// @Summary      Split the share of a paid rental payment across members
// @Description  Without a standard_id the standard valid on the payment date is used. manual_amount overrides the computed share.
// @Tags         profits
// @Accept       json
// @Produce      json
// @Param        id      path string                            true "Payment ID" format(uuid)
// @Param        request body profitshareapp.DistributeRequest true "Members and options"
// @Success      201 {object} APIResponse[profitshareapp.DistributionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /payments/{id}/profits [post]
func (h *ProfitHandler) Distribute(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req profitshareapp.DistributeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Distribute(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListByPayment godoc
// @ID           listPaymentProfits
// @Summary      List the member profits of a rental payment
// @Tags         profits
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} APIResponse[[]profitshareapp.MemberProfitResponse]
// @Router       /payments/{id}/profits [get]
func (h *ProfitHandler) ListByPayment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.ListByPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByMember godoc
// @ID           listMemberProfits
// @Summary      List the profits owed or paid to a member
// @Tags         profits
// @Produce      json
// @Param        id path string true "Member ID" format(uuid)
// @Success      200 {object} APIResponse[[]profitshareapp.MemberProfitResponse]
// @Router       /members/{id}/profits [get]
func (h *ProfitHandler) ListByMember(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.ListByMember(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkPaid godoc
// @ID           payMemberProfit
// @Summary      Mark a member profit as paid out
// @Tags         profits
// @Produce      json
// @Param        id path string true "Profit ID" format(uuid)
// @Success      200 {object} APIResponse[profitshareapp.MemberProfitResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /profits/{id}/pay [post]
func (h *ProfitHandler) MarkPaid(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.MarkProfitPaid(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
