package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type RoomController struct {
	RoomSvc   *services.RoomService
	ReportSvc *services.ReportService
}

func NewRoomController(rooms *services.RoomService, reports *services.ReportService) *RoomController {
	return &RoomController{RoomSvc: rooms, ReportSvc: reports}
}

type bookRoomRequest struct {
	CustomerID *int `json:"customerId" binding:"required"`
}

// ListAvailable (GET /api/rooms/available)
func (ctrl *RoomController) ListAvailable(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.RoomSvc.ListAvailable())
}

// ListOccupied (GET /api/rooms/occupied) includes the guest name of each
// room, "Unknown" when the customer was deleted.
func (ctrl *RoomController) ListOccupied(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.ReportSvc.OccupiedBoard())
}

// GetRoom (GET /api/rooms/:number)
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	number, ok := intParam(c, "number")
	if !ok {
		return
	}

	room, found := ctrl.RoomSvc.GetByNumber(number)
	if !found {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room %d not found", number))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// BookRoom (POST /api/rooms/:number/book)
func (ctrl *RoomController) BookRoom(c *gin.Context) {
	number, ok := intParam(c, "number")
	if !ok {
		return
	}

	var req bookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}

	booked, err := ctrl.RoomSvc.Book(number, *req.CustomerID)
	if err != nil {
		log.Printf("❌ booking room %d failed: %v", number, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save booking")
		return
	}
	if !booked {
		if _, exists := ctrl.RoomSvc.GetByNumber(number); !exists {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room %d not found", number))
			return
		}
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf("Room %d is already booked", number))
		return
	}

	room, _ := ctrl.RoomSvc.GetByNumber(number)
	utils.JSONSuccess(c, http.StatusOK, room)
}

// CheckOutRoom (POST /api/rooms/:number/checkout)
func (ctrl *RoomController) CheckOutRoom(c *gin.Context) {
	number, ok := intParam(c, "number")
	if !ok {
		return
	}

	done, err := ctrl.RoomSvc.CheckOut(number)
	if err != nil {
		log.Printf("❌ check-out of room %d failed: %v", number, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save check-out")
		return
	}
	if !done {
		if _, exists := ctrl.RoomSvc.GetByNumber(number); !exists {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room %d not found", number))
			return
		}
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf("Room %d is not occupied", number))
		return
	}

	room, _ := ctrl.RoomSvc.GetByNumber(number)
	utils.JSONSuccess(c, http.StatusOK, room)
}
