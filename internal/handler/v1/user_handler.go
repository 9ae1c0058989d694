package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/domain/user"
)

type UserService interface {
	GetUser(ctx context.Context) (user.Profile, error)
	UpdateUser(ctx context.Context, cmd *user.UpdateProfileCommand) (user.Profile, error)
	ShareMedicalRecords(ctx context.Context, ids []int64) ([]user.MedicalRecord, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/user", h.Get)
	rg.POST("/user", h.Update)
	rg.POST("/user/medical-records", h.ShareMedicalRecords)
}

func (h *UserHandler) Get(c *gin.Context) {
	p, err := h.svc.GetUser(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p, "")
}

func (h *UserHandler) Update(c *gin.Context) {
	var cmd user.UpdateProfileCommand
	if !bindObject(c, &cmd, "user") {
		return
	}

	p, err := h.svc.UpdateUser(c.Request.Context(), &cmd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p, "User updated successfully")
}

type shareRecordsRequest struct {
	RecordIDs *[]int64 `json:"recordIds"`
}

// ShareMedicalRecords replaces the set of records visible to emergency
// responders. An empty list revokes sharing for every record.
func (h *UserHandler) ShareMedicalRecords(c *gin.Context) {
	var req shareRecordsRequest
	if !bindObject(c, &req, "medical record") {
		return
	}
	if req.RecordIDs == nil {
		respondError(c, http.StatusBadRequest, "Invalid medical record data", "recordIds is required")
		return
	}

	recs, err := h.svc.ShareMedicalRecords(c.Request.Context(), *req.RecordIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, recs, "Medical records updated successfully")
}
