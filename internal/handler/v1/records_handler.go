package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/records"
)

type RecordsService interface {
	GetRecords(ctx context.Context) (records.Bundle, error)
	UpdatePCP(ctx context.Context, cmd *records.UpdatePhysicianCommand) (records.Physician, error)
	ScheduleAppointment(ctx context.Context, cmd *records.CreateAppointmentCommand) (records.Appointment, error)
}

type RecordsHandler struct {
	svc RecordsService
}

func NewRecordsHandler(svc RecordsService) *RecordsHandler {
	return &RecordsHandler{svc: svc}
}

func (h *RecordsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/records", h.Get)
	rg.POST("/records/pcp", h.UpdatePCP)
	rg.POST("/records/appointments", h.CreateAppointment)
}

func (h *RecordsHandler) Get(c *gin.Context) {
	b, err := h.svc.GetRecords(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, b, "")
}

func (h *RecordsHandler) UpdatePCP(c *gin.Context) {
	var cmd records.UpdatePhysicianCommand
	if !bindObject(c, &cmd, "physician") {
		return
	}

	pcp, err := h.svc.UpdatePCP(c.Request.Context(), &cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, pcp, "Primary care physician updated successfully")
}

func (h *RecordsHandler) CreateAppointment(c *gin.Context) {
	var cmd records.CreateAppointmentCommand
	if !bindObject(c, &cmd, "appointment") {
		return
	}

	a, err := h.svc.ScheduleAppointment(c.Request.Context(), &cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, a, "Appointment created successfully")
}
