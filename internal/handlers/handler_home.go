package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description Returns OK when the server and its data store are reachable.
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {object} dto.ErrorResponse
// @Router /health [get]
func getHealth(health portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			if err := health.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "Database unavailable: " + err.Error()})
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}

// getHome godoc
// @Summary Show the API banner.
// @Tags root
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Finance Tracker API"})
}
