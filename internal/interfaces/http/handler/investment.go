package handler

import (
	leasingapp "github.com/assetledger/backend/internal/application/leasing"
	"github.com/gin-gonic/gin"
)

// InvestmentHandler handles investment and lease endpoints
type InvestmentHandler struct {
	BaseHandler
	investments *leasingapp.InvestmentService
	leases      *leasingapp.LeaseService
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(investments *leasingapp.InvestmentService, leases *leasingapp.LeaseService) *InvestmentHandler {
	return &InvestmentHandler{
		investments: investments,
		leases:      leases,
	}
}

// Create godoc
// @ID           createInvestment
// @Summary      Create an investment
// @Description  Type selects the payload: movable takes "movable", immovable takes "immovable".
// @Tags         investments
// @Accept       json
// @Produce      json
// @Param        request body leasingapp.CreateInvestmentRequest true "Investment"
// @Success      201 {object} APIResponse[leasingapp.InvestmentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /investments [post]
func (h *InvestmentHandler) Create(c *gin.Context) {
	var req leasingapp.CreateInvestmentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.investments.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID godoc
// @ID           getInvestment
// @Summary      Get an investment
// @Tags         investments
// @Produce      json
// @Param        id path string true "Investment ID" format(uuid)
// @Success      200 {object} APIResponse[leasingapp.InvestmentResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /investments/{id} [get]
func (h *InvestmentHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.investments.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByCompany godoc
// @ID           listCompanyInvestments
// @Summary      List a company's investments
// @Tags         investments
// @Produce      json
// @Param        id path string true "Company ID" format(uuid)
// @Success      200 {object} APIResponse[[]leasingapp.InvestmentResponse]
// @Router       /companies/{id}/investments [get]
func (h *InvestmentHandler) ListByCompany(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.investments.ListByCompany(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Activate godoc
// @ID           activateInvestment
// @Summary      Activate a pending investment
// @Tags         investments
// @Produce      json
// @Param        id path string true "Investment ID" format(uuid)
// @Success      200 {object} APIResponse[leasingapp.InvestmentResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /investments/{id}/activate [post]
func (h *InvestmentHandler) Activate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.investments.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ChangeStatus godoc
// @ID           changeInvestmentStatus
// @Summary      Move an investment to another lifecycle status
// @Tags         investments
// @Accept       json
// @Produce      json
// @Param        id      path string                                   true "Investment ID" format(uuid)
// @Param        request body leasingapp.ChangeInvestmentStatusRequest true "Target status"
// @Success      200 {object} APIResponse[leasingapp.InvestmentResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /investments/{id}/status [post]
func (h *InvestmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req leasingapp.ChangeInvestmentStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.investments.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteInvestment
// @Summary      Delete an investment without leases, payments or standards
// @Tags         investments
// @Param        id path string true "Investment ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /investments/{id} [delete]
func (h *InvestmentHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.investments.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateLease godoc
// @ID           createLease
// @Summary      Sign a lease on an active investment
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "Investment ID" format(uuid)
// @Param        request body leasingapp.CreateLeaseRequest true "Lease"
// @Success      201 {object} APIResponse[leasingapp.LeaseResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /investments/{id}/leases [post]
func (h *InvestmentHandler) CreateLease(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req leasingapp.CreateLeaseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.leases.Create(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListLeases godoc
// @ID           listLeases
// @Summary      List the leases of an investment
// @Tags         leases
// @Produce      json
// @Param        id path string true "Investment ID" format(uuid)
// @Success      200 {object} APIResponse[[]leasingapp.LeaseResponse]
// @Router       /investments/{id}/leases [get]
func (h *InvestmentHandler) ListLeases(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.leases.ListByInvestment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// TerminateLease godoc
// @ID           terminateLease
// @Summary      End an active lease early
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        id      path string                           true "Lease ID" format(uuid)
// @Param        request body leasingapp.TerminateLeaseRequest true "Effective date"
// @Success      200 {object} APIResponse[leasingapp.LeaseResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /leases/{id}/terminate [post]
func (h *InvestmentHandler) TerminateLease(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req leasingapp.TerminateLeaseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.leases.Terminate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
