package httpHandler

import (
	"net/http"

	"agriwise-server/entities"
	"agriwise-server/services"
	"agriwise-server/usecases"

	"github.com/gin-gonic/gin"
)

type SensorHandler struct {
	useCase *usecases.SensorService
	alerts  *services.AlertService
}

func NewSensorHandler(useCase *usecases.SensorService, alerts *services.AlertService) *SensorHandler {
	return &SensorHandler{useCase: useCase, alerts: alerts}
}

// CreateSensor handles POST /api/sensors
func (h *SensorHandler) CreateSensor(c *gin.Context) {
	var sensor entities.Sensor
	if err := c.ShouldBindJSON(&sensor); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	user := currentUser(c)
	if err := h.useCase.CreateSensor(&sensor, user.ID); err != nil {
		respondError(c, err)
		return
	}

	if h.alerts != nil {
		h.alerts.Observe(&sensor)
	}
	respond(c, http.StatusCreated, true, "Sensor created successfully", sensor)
}

// GetSensors handles GET /api/sensors and GET /api/sensors/user
func (h *SensorHandler) GetSensors(c *gin.Context) {
	user := currentUser(c)
	sensors, err := h.useCase.ListSensors(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Sensors fetched successfully", sensors)
}

// GetSensorByID handles GET /api/sensors/:id
func (h *SensorHandler) GetSensorByID(c *gin.Context) {
	user := currentUser(c)
	sensor, err := h.useCase.GetSensor(c.Param("id"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Sensor fetched successfully", sensor)
}

// UpdateSensor handles PUT /api/sensors/:id. Fresh readings run through the
// alert sweep after a successful write.
func (h *SensorHandler) UpdateSensor(c *gin.Context) {
	var sensor entities.Sensor
	if err := c.ShouldBindJSON(&sensor); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}
	sensor.ID = c.Param("id")

	user := currentUser(c)
	updated, err := h.useCase.UpdateSensor(&sensor, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.alerts != nil {
		h.alerts.Observe(updated)
	}
	respond(c, http.StatusOK, true, "Sensor updated successfully", updated)
}

// UpdateSensorStatus handles PATCH /api/sensors/:id/status
func (h *SensorHandler) UpdateSensorStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid status value", nil)
		return
	}

	user := currentUser(c)
	sensor, err := h.useCase.SetSensorStatus(c.Param("id"), user.ID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.alerts != nil {
		h.alerts.Observe(sensor)
	}
	respond(c, http.StatusOK, true, "Sensor status updated successfully", sensor)
}

// DeleteSensor handles DELETE /api/sensors/:id
func (h *SensorHandler) DeleteSensor(c *gin.Context) {
	user := currentUser(c)
	if err := h.useCase.DeleteSensor(c.Param("id"), user.ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Sensor deleted successfully", nil)
}
