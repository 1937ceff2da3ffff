package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Health godoc
// @Summary Liveness check
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/health [get]
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Success: true, Message: "ok"})
}
