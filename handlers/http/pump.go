package httpHandler

import (
	"net/http"

	"agriwise-server/entities"
	"agriwise-server/usecases"

	"github.com/gin-gonic/gin"
)

type PumpHandler struct {
	useCase *usecases.PumpService
}

func NewPumpHandler(useCase *usecases.PumpService) *PumpHandler {
	return &PumpHandler{useCase: useCase}
}

// CreatePump handles POST /api/pumps
func (h *PumpHandler) CreatePump(c *gin.Context) {
	var pump entities.Pump
	if err := c.ShouldBindJSON(&pump); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	user := currentUser(c)
	if err := h.useCase.CreatePump(&pump, user.ID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, true, "Pump created successfully", pump)
}

// GetPumps handles GET /api/pumps and GET /api/pumps/user. Listing is always
// scoped to the acting user; there is no administrative bypass.
func (h *PumpHandler) GetPumps(c *gin.Context) {
	user := currentUser(c)
	pumps, err := h.useCase.ListPumps(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Pumps fetched successfully", pumps)
}

// GetPumpByID handles GET /api/pumps/:id
func (h *PumpHandler) GetPumpByID(c *gin.Context) {
	user := currentUser(c)
	pump, err := h.useCase.GetPump(c.Param("id"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Pump fetched successfully", pump)
}

// UpdatePump handles PUT /api/pumps/:id
func (h *PumpHandler) UpdatePump(c *gin.Context) {
	var pump entities.Pump
	if err := c.ShouldBindJSON(&pump); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}
	pump.ID = c.Param("id")

	user := currentUser(c)
	updated, err := h.useCase.UpdatePump(&pump, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Pump updated successfully", updated)
}

// UpdatePumpStatus handles PATCH /api/pumps/:id/status
func (h *PumpHandler) UpdatePumpStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid status value", nil)
		return
	}

	user := currentUser(c)
	pump, err := h.useCase.SetPumpStatus(c.Param("id"), user.ID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Pump status updated successfully", pump)
}

// DeletePump handles DELETE /api/pumps/:id
func (h *PumpHandler) DeletePump(c *gin.Context) {
	user := currentUser(c)
	if err := h.useCase.DeletePump(c.Param("id"), user.ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Pump deleted successfully", nil)
}
