package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type BillingController struct {
	BillingSvc *services.BillingService
	Session    *FrontDeskSession
}

func NewBillingController(billing *services.BillingService, session *FrontDeskSession) *BillingController {
	return &BillingController{BillingSvc: billing, Session: session}
}

type addItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type discountRequest struct {
	Percent *float64 `json:"percent" binding:"required"`
}

type paymentRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

type invoiceResponse struct {
	models.InvoiceTotals
	Summary string `json:"summary"`
}

func (ctrl *BillingController) invoiceView() invoiceResponse {
	inv := ctrl.Session.Invoice
	return invoiceResponse{InvoiceTotals: inv.Totals(), Summary: inv.Summary()}
}

// GetStayQuote (GET /api/billing/rooms/:number)
func (ctrl *BillingController) GetStayQuote(c *gin.Context) {
	number, ok := intParam(c, "number")
	if !ok {
		return
	}

	quote, found := ctrl.BillingSvc.GenerateBill(number)
	if !found {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("No bill for room %d: room missing or not occupied", number))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, quote)
}

// GetInvoice (GET /api/billing/invoice)
func (ctrl *BillingController) GetInvoice(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.invoiceView())
}

// AddInvoiceItem (POST /api/billing/invoice/items)
func (ctrl *BillingController) AddInvoiceItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid item payload: "+err.Error())
		return
	}

	if !ctrl.Session.Invoice.AddItem(req.Name, req.Price, req.Quantity) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Item needs a name, a non-negative price and a positive quantity")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.invoiceView())
}

// ApplyDiscount (POST /api/billing/invoice/discount)
func (ctrl *BillingController) ApplyDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid discount payload: "+err.Error())
		return
	}

	if !ctrl.Session.Invoice.ApplyDiscount(*req.Percent) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Discount percent must be between 0 and 100")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.invoiceView())
}

// ProcessPayment (POST /api/billing/invoice/payment). An insufficient
// amount is still a 200: the result carries the shortfall.
func (ctrl *BillingController) ProcessPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment payload: "+err.Error())
		return
	}

	result := ctrl.Session.Invoice.ProcessPayment(*req.Amount)
	utils.JSONSuccess(c, http.StatusOK, result)
}

// ResetInvoice (DELETE /api/billing/invoice)
func (ctrl *BillingController) ResetInvoice(c *gin.Context) {
	ctrl.Session.Invoice.Reset()
	utils.JSONSuccess(c, http.StatusOK, ctrl.invoiceView())
}
