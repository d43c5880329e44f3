package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"drone-fleet-manager/internal/usecase/medication"
	"drone-fleet-manager/pkg/utils"
)

type MedicationHandler struct {
	service *medication.Service
}

func NewMedicationHandler(service *medication.Service) *MedicationHandler {
	return &MedicationHandler{service: service}
}

func (h *MedicationHandler) RegisterRoutes(router *gin.RouterGroup) {
	medications := router.Group("/medications")
	{
		medications.GET("", h.ListMedications)
		medications.GET("/:medicationId", h.GetMedication)
	}
}

func (h *MedicationHandler) ListMedications(c *gin.Context) {
	result, err := h.service.ListMedications(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *MedicationHandler) GetMedication(c *gin.Context) {
	medicationID, err := uuid.Parse(c.Param("medicationId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid medication ID")
		return
	}

	result, err := h.service.GetMedication(c.Request.Context(), medicationID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
