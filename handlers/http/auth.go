package httpHandler

import (
	"errors"
	"net/http"

	"agriwise-server/usecases"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase *usecases.AuthService
}

func NewAuthHandler(useCase *usecases.AuthService) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type resetPasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	user, token, err := h.useCase.Register(req.Name, req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, usecases.ErrDuplicateEmail) {
			respond(c, http.StatusBadRequest, false, "Email already registered", nil)
			return
		}
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, true, "Registration successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	user, token, err := h.useCase.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, true, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout handles GET /api/auth/logout. Tokens are stateless; the client just
// discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.useCase.Logout()
	respond(c, http.StatusOK, true, "Logout successful", nil)
}

// UpdatePassword handles PUT /api/auth/updatepassword
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	user := currentUser(c)
	token, err := h.useCase.ChangePassword(user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			respond(c, http.StatusUnauthorized, false, "Current password is incorrect", nil)
			return
		}
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, true, "Password updated successfully", gin.H{"token": token})
}

// ForgotPassword handles POST /api/auth/forgotpassword
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	if err := h.useCase.ForgotPassword(req.Email); err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			respond(c, http.StatusNotFound, false, "No user found with this email", nil)
			return
		}
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, true, "Reset email sent successfully", nil)
}

// ResetPassword handles PUT /api/auth/resetpassword/:resettoken
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	err := h.useCase.ResetPassword(c.Param("resettoken"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			respond(c, http.StatusUnauthorized, false, "Current password is incorrect", nil)
			return
		}
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, true, "Password reset successfully", nil)
}
