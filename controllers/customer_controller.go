package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

type createCustomerRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// ListCustomers (GET /api/customers)
func (ctrl *CustomerController) ListCustomers(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.CustomerSvc.List())
}

// CreateCustomer (POST /api/customers)
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload: "+err.Error())
		return
	}

	customer, ok, err := ctrl.CustomerSvc.Add(req.Name, req.Contact, req.Email)
	if err != nil {
		log.Printf("❌ customer creation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save customer")
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Name and contact are required and no field may contain a line break")
		return
	}

	log.Printf("✅ customer %d created", customer.ID)
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

// GetCustomer (GET /api/customers/:id)
func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	customer, found := ctrl.CustomerSvc.GetByID(id)
	if !found {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Customer %d not found", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// DeleteCustomer (DELETE /api/customers/:id)
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	removed, err := ctrl.CustomerSvc.Delete(id)
	if err != nil {
		log.Printf("❌ customer %d deletion failed: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Customer %d not found", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
