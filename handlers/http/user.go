package httpHandler

import (
	"net/http"

	"agriwise-server/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserService
}

func NewUserHandler(useCase *usecases.UserService) *UserHandler {
	return &UserHandler{useCase: useCase}
}

type updateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// selfOnly reports whether the path id belongs to the acting user. Another
// user's id is reported as not found, never forbidden.
func selfOnly(c *gin.Context) bool {
	user := currentUser(c)
	if c.Param("id") != user.ID {
		respond(c, http.StatusNotFound, false, "User not found", nil)
		return false
	}
	return true
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	if !selfOnly(c) {
		return
	}
	user, err := h.useCase.GetUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "User fetched successfully", user)
}

// UpdateUser handles PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	if !selfOnly(c) {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	user, err := h.useCase.UpdateUser(c.Param("id"), req.Name, req.Email, req.PhoneNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "User updated successfully", user)
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if !selfOnly(c) {
		return
	}
	if err := h.useCase.DeleteUser(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "User deleted successfully", nil)
}
