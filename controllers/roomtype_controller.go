package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

// GetRoomTypes (GET /api/room-types)
func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.RoomTypeSvc.GetAll())
}
