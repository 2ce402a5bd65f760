package handler

import (
	leasingapp "github.com/assetledger/backend/internal/application/leasing"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles rental payment endpoints
type PaymentHandler struct {
	BaseHandler
	tracker *leasingapp.PaymentTracker
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(tracker *leasingapp.PaymentTracker) *PaymentHandler {
	return &PaymentHandler{tracker: tracker}
}

// Schedule godoc
// @ID           schedulePayment
// @Summary      Schedule the rent of one month
// @Description  The amount is the sum of the rents of every lease whose term overlaps the month. The due date defaults to the month's last day.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id      path string                            true "Investment ID" format(uuid)
// @Param        request body leasingapp.SchedulePaymentRequest true "Period"
// @Success      201 {object} APIResponse[leasingapp.PaymentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /investments/{id}/payments [post]
func (h *PaymentHandler) Schedule(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req leasingapp.SchedulePaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.tracker.ScheduleForPeriod(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ScheduleRange godoc
// @ID           schedulePaymentRange
// @Summary      Schedule every missing month in a range
// @Description  Months already scheduled or without an active lease are reported as skipped.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id      path string                          true "Investment ID" format(uuid)
// @Param        request body leasingapp.ScheduleRangeRequest true "From and to, YYYY-MM"
// @Success      200 {object} APIResponse[leasingapp.ScheduleRangeResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /investments/{id}/payments/range [post]
func (h *PaymentHandler) ScheduleRange(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req leasingapp.ScheduleRangeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.tracker.ScheduleRange(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByInvestment godoc
// @ID           listPayments
// @Summary      List the rental payments of an investment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Investment ID" format(uuid)
// @Success      200 {object} APIResponse[[]leasingapp.PaymentResponse]
// @Router       /investments/{id}/payments [get]
func (h *PaymentHandler) ListByInvestment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.tracker.ListByInvestment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Summary godoc
// @ID           paymentSummary
// @Summary      Totals per payment status for an investment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Investment ID" format(uuid)
// @Success      200 {object} APIResponse[leasingapp.PaymentSummaryResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /investments/{id}/payments/summary [get]
func (h *PaymentHandler) Summary(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.tracker.Summary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByID godoc
// @ID           getPayment
// @Summary      Get a rental payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} APIResponse[leasingapp.PaymentResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.tracker.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Record godoc
// @ID           recordPayment
// @Summary      Record that a pending or overdue payment was paid
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id      path string                          true "Payment ID" format(uuid)
// @Param        request body leasingapp.RecordPaymentRequest true "Method and date"
// @Success      200 {object} APIResponse[leasingapp.PaymentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /payments/{id}/record [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req leasingapp.RecordPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.tracker.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel godoc
// @ID           cancelPayment
// @Summary      Cancel an unpaid rental payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id      path string                          true "Payment ID" format(uuid)
// @Param        request body leasingapp.CancelPaymentRequest true "Reason"
// @Success      200 {object} APIResponse[leasingapp.PaymentResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /payments/{id}/cancel [post]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req leasingapp.CancelPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.tracker.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
