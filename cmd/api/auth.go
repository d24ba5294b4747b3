package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skireis/internal/auth"
)

// LoginRequest carries the organizer's credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// handleLogin godoc
// @Summary Organizer login
// @Description Exchange the organizer credentials for a bearer token that unlocks
// @Description roster mutations
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Organizer credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (app *App) handleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, expiresAt, err := app.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		app.logger.Error("failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}
