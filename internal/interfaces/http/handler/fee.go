package handler

import (
	feeapp "github.com/assetledger/backend/internal/application/fee"
	"github.com/gin-gonic/gin"
)

// FeeHandler handles fee setting and fee record endpoints
type FeeHandler struct {
	BaseHandler
	ledger *feeapp.LedgerService
}

// NewFeeHandler creates a new FeeHandler
func NewFeeHandler(ledger *feeapp.LedgerService) *FeeHandler {
	return &FeeHandler{ledger: ledger}
}

// ListFeeSettingsQuery filters fee settings
type ListFeeSettingsQuery struct {
	ActiveOnly bool `form:"active_only"`
}

// CreateSetting godoc
// @ID           createFeeSetting
// @Summary      Create a fee setting
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        request body feeapp.CreateFeeSettingRequest true "Fee setting"
// @Success      201 {object} APIResponse[feeapp.FeeSettingResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /fee-settings [post]
func (h *FeeHandler) CreateSetting(c *gin.Context) {
	var req feeapp.CreateFeeSettingRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.ledger.CreateSetting(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListSettings godoc
// @ID           listFeeSettings
// @Summary      List fee settings
// @Tags         fees
// @Produce      json
// @Param        active_only query bool false "Only active settings"
// @Success      200 {object} APIResponse[[]feeapp.FeeSettingResponse]
// @Router       /fee-settings [get]
func (h *FeeHandler) ListSettings(c *gin.Context) {
	var q ListFeeSettingsQuery
	if !h.bindQuery(c, &q) {
		return
	}

	resp, err := h.ledger.ListSettings(c.Request.Context(), q.ActiveOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateRecord godoc
// @ID           createFeeRecord
// @Summary      Raise a fee for a member and period
// @Description  The amount is copied from the setting. One record per member and period.
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        request body feeapp.CreateFeeRecordRequest true "Fee record"
// @Success      201 {object} APIResponse[feeapp.FeeRecordResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /fee-records [post]
func (h *FeeHandler) CreateRecord(c *gin.Context) {
	var req feeapp.CreateFeeRecordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.ledger.CreateFeeRecord(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetRecord godoc
// @ID           getFeeRecord
// @Summary      Get a fee record
// @Tags         fees
// @Produce      json
// @Param        id path string true "Fee record ID" format(uuid)
// @Success      200 {object} APIResponse[feeapp.FeeRecordResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /fee-records/{id} [get]
func (h *FeeHandler) GetRecord(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.ledger.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByMember godoc
// @ID           listMemberFeeRecords
// @Summary      List a member's fee records with the outstanding total
// @Tags         fees
// @Produce      json
// @Param        id path string true "Member ID" format(uuid)
// @Success      200 {object} APIResponse[feeapp.MemberFeesResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /members/{id}/fee-records [get]
func (h *FeeHandler) ListByMember(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.ledger.ListByMember(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Pay godoc
// @ID           payFeeRecord
// @Summary      Settle a fee record
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Fee record ID" format(uuid)
// @Param        request body feeapp.MarkFeePaidRequest true "Payment"
// @Success      200 {object} APIResponse[feeapp.FeeRecordResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /fee-records/{id}/pay [post]
func (h *FeeHandler) Pay(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req feeapp.MarkFeePaidRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.ledger.MarkPaid(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel godoc
// @ID           cancelFeeRecord
// @Summary      Cancel an unpaid fee record
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "Fee record ID" format(uuid)
// @Param        request body feeapp.CancelFeeRecordRequest true "Reason"
// @Success      200 {object} APIResponse[feeapp.FeeRecordResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /fee-records/{id}/cancel [post]
func (h *FeeHandler) Cancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req feeapp.CancelFeeRecordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.ledger.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
