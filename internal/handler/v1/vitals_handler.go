package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/vitals"
)

type VitalsService interface {
	GetVitals(ctx context.Context) (vitals.Snapshot, error)
	RecordVitals(ctx context.Context, cmd *vitals.UpdateVitalsCommand) (vitals.Snapshot, error)
}

type VitalsHandler struct {
	svc VitalsService
}

func NewVitalsHandler(svc VitalsService) *VitalsHandler {
	return &VitalsHandler{svc: svc}
}

func (h *VitalsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/vitals", h.Get)
	rg.POST("/vitals", h.Update)
}

func (h *VitalsHandler) Get(c *gin.Context) {
	v, err := h.svc.GetVitals(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, v, "")
}

func (h *VitalsHandler) Update(c *gin.Context) {
	var cmd vitals.UpdateVitalsCommand
	if !bindObject(c, &cmd, "vitals") {
		return
	}

	v, err := h.svc.RecordVitals(c.Request.Context(), &cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, v, "Vitals updated successfully")
}
