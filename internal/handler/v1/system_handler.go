package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/response"
)

type SystemService interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Reset(ctx context.Context) (domain.Snapshot, error)
}

type SystemHandler struct {
	svc SystemService
}

func NewSystemHandler(svc SystemService) *SystemHandler {
	return &SystemHandler{svc: svc}
}

func (h *SystemHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/data", h.Data)
	rg.POST("/reset", h.Reset)
}

func (h *SystemHandler) Data(c *gin.Context) {
	snap, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, snap, "")
}

func (h *SystemHandler) Reset(c *gin.Context) {
	snap, err := h.svc.Reset(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, snap, "Data reset successfully")
}

// Health is a liveness probe. It does not touch the store.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": response.Timestamp(),
	})
}
