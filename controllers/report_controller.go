package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

type ReportController struct {
	ReportSvc *services.ReportService
	Events    services.ActivityLog
}

func NewReportController(reports *services.ReportService, events services.ActivityLog) *ReportController {
	return &ReportController{ReportSvc: reports, Events: events}
}

// GetOccupancy (GET /api/reports/occupancy)
func (ctrl *ReportController) GetOccupancy(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.ReportSvc.Occupancy())
}

// GetActivity (GET /api/reports/activity?limit=50)
func (ctrl *ReportController) GetActivity(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	events, err := ctrl.Events.Recent(limit)
	if err != nil {
		log.Printf("❌ loading activity failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load activity")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, events)
}
