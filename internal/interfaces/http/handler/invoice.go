package handler

import (
	invoiceapp "github.com/assetledger/backend/internal/application/invoice"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice and receipt endpoints
type InvoiceHandler struct {
	BaseHandler
	service *invoiceapp.Service
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(service *invoiceapp.Service) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// RenderQuery selects the copy to render
type RenderQuery struct {
	Copy string `form:"copy" binding:"required,oneof=stub receipt accounting"`
}

// Issue godoc
// @ID           issueInvoice
// @Summary      Issue the invoice of a paid rental payment
// @Description  One invoice per payment. An empty invoice_number takes the next number of the type's yearly sequence.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Payment ID" format(uuid)
// @Param        request body invoiceapp.IssueInvoiceRequest true "Buyer and type"
// @Success      201 {object} APIResponse[invoiceapp.InvoiceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /payments/{id}/invoice [post]
func (h *InvoiceHandler) Issue(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req invoiceapp.IssueInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Issue(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByPayment godoc
// @ID           getPaymentInvoice
// @Summary      Get the invoice of a rental payment
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} APIResponse[invoiceapp.InvoiceResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /payments/{id}/invoice [get]
func (h *InvoiceHandler) GetByPayment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByPayment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByID godoc
// @ID           getInvoice
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} APIResponse[invoiceapp.InvoiceResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Render godoc
// @ID           renderInvoice
// @Summary      Lay out one copy of an invoice for printing
// @Tags         invoices
// @Produce      json
// @Param        id   path  string true "Invoice ID" format(uuid)
// @Param        copy query string true "Copy" Enums(stub, receipt, accounting)
// @Success      200 {object} APIResponse[invoice.Rendered]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /invoices/{id}/render [get]
func (h *InvoiceHandler) Render(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var q RenderQuery
	if !h.bindQuery(c, &q) {
		return
	}

	resp, err := h.service.Render(c.Request.Context(), id, q.Copy)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Print godoc
// @ID           printInvoice
// @Summary      Record that a copy of an invoice was printed
// @Description  Reprinting a copy already printed leaves the invoice unchanged.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Invoice ID" format(uuid)
// @Param        request body invoiceapp.PrintInvoiceRequest true "Copy"
// @Success      200 {object} APIResponse[invoiceapp.InvoiceResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /invoices/{id}/print [post]
func (h *InvoiceHandler) Print(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req invoiceapp.PrintInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.service.MarkPrinted(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Void godoc
// @ID           voidInvoice
// @Summary      Void an issued invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "Invoice ID" format(uuid)
// @Param        request body invoiceapp.VoidInvoiceRequest true "Reason"
// @Success      200 {object} APIResponse[invoiceapp.InvoiceResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /invoices/{id}/void [post]
func (h *InvoiceHandler) Void(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req invoiceapp.VoidInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Void(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
