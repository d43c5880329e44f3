package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"drone-fleet-manager/internal/usecase/drone"
	"drone-fleet-manager/pkg/utils"
)

type DroneHandler struct {
	service *drone.Service
}

func NewDroneHandler(service *drone.Service) *DroneHandler {
	return &DroneHandler{service: service}
}

func (h *DroneHandler) RegisterRoutes(router *gin.RouterGroup) {
	drones := router.Group("/drones")
	{
		// /available must be registered before /:droneId
		drones.GET("/available", h.GetAvailableDrones)
		drones.POST("", h.RegisterDrone)
		drones.GET("", h.GetAllDrones)
		drones.GET("/:droneId", h.GetDrone)
		drones.DELETE("/:droneId", h.DeleteDrone)
		drones.POST("/:droneId/load", h.LoadMedication)
		drones.GET("/:droneId/medications", h.GetLoadedMedications)
		drones.GET("/:droneId/battery", h.GetBatteryLevel)
		drones.PATCH("/:droneId/state", h.UpdateState)
	}
}

func (h *DroneHandler) RegisterDrone(c *gin.Context) {
	var req drone.RegisterDroneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RegisterDrone(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Drone registered successfully", result)
}

func (h *DroneHandler) GetAllDrones(c *gin.Context) {
	result, err := h.service.GetAllDrones(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DroneHandler) GetDrone(c *gin.Context) {
	droneID, err := uuid.Parse(c.Param("droneId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid drone ID")
		return
	}

	result, err := h.service.GetDroneByID(c.Request.Context(), droneID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DroneHandler) GetAvailableDrones(c *gin.Context) {
	result, err := h.service.GetAvailableDrones(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DroneHandler) LoadMedication(c *gin.Context) {
	droneID, err := uuid.Parse(c.Param("droneId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid drone ID")
		return
	}

	var req drone.LoadMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.LoadMedication(c.Request.Context(), droneID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Medication loaded successfully", result)
}

func (h *DroneHandler) GetLoadedMedications(c *gin.Context) {
	droneID, err := uuid.Parse(c.Param("droneId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid drone ID")
		return
	}

	result, err := h.service.GetLoadedMedications(c.Request.Context(), droneID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DroneHandler) GetBatteryLevel(c *gin.Context) {
	droneID, err := uuid.Parse(c.Param("droneId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid drone ID")
		return
	}

	result, err := h.service.GetBatteryLevel(c.Request.Context(), droneID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DroneHandler) UpdateState(c *gin.Context) {
	droneID, err := uuid.Parse(c.Param("droneId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid drone ID")
		return
	}

	var req drone.UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateState(c.Request.Context(), droneID, req.State)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Drone state updated successfully", result)
}

func (h *DroneHandler) DeleteDrone(c *gin.Context) {
	droneID, err := uuid.Parse(c.Param("droneId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid drone ID")
		return
	}

	if err := h.service.DeleteDrone(c.Request.Context(), droneID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Drone deleted successfully", nil)
}
