package v1

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/response"
)

func respondOK(c *gin.Context, data any, message string) {
	response.OK(c, http.StatusOK, data, message)
}

func respondCreated(c *gin.Context, data any, message string) {
	response.OK(c, http.StatusCreated, data, message)
}

func respondError(c *gin.Context, status int, errMsg, message string) {
	response.Abort(c, status, errMsg, message)
}

func respondServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusServiceUnavailable, "Request cancelled", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// bindObject decodes the request body into obj. The body must be a JSON
// object; anything else (missing, null, array, scalar) or a field of the
// wrong type answers 400 "Invalid <kind> data".
func bindObject(c *gin.Context, obj any, kind string) bool {
	invalid := "Invalid " + kind + " data"

	body, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, invalid, err.Error())
		return false
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		respondError(c, http.StatusBadRequest, invalid, "request body must be a JSON object")
		return false
	}

	if err := binding.JSON.BindBody(body, obj); err != nil {
		respondError(c, http.StatusBadRequest, invalid, err.Error())
		return false
	}

	return true
}
