package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"drone-fleet-manager/internal/usecase/audit"
	"drone-fleet-manager/pkg/utils"
)

type AuditHandler struct {
	service *audit.Service
}

func NewAuditHandler(service *audit.Service) *AuditHandler {
	return &AuditHandler{service: service}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/audits/recent", h.GetRecentAudits)
	router.GET("/drones/:droneId/audits", h.GetDroneAudits)
}

func (h *AuditHandler) GetDroneAudits(c *gin.Context) {
	droneID, err := uuid.Parse(c.Param("droneId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid drone ID")
		return
	}

	result, err := h.service.GetDroneAudits(c.Request.Context(), droneID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AuditHandler) GetRecentAudits(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	result, err := h.service.GetRecentAudits(c.Request.Context(), limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
