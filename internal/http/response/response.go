package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficiolab/promarket-backend/internal/domain/engine"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondFromError maps a canonical domain error onto its HTTP status.
// Storage failures surface a generic message; the detailed cause stays in
// the service logs.
func RespondFromError(c *gin.Context, err error) {
	code := engine.CodeOf(err)
	switch code {
	case engine.CodeValidation:
		RespondError(c, http.StatusBadRequest, string(code), err)
	case engine.CodeCardinalityExceeded:
		RespondError(c, http.StatusUnprocessableEntity, string(code), err)
	case engine.CodeNotFound:
		RespondError(c, http.StatusNotFound, string(code), err)
	case engine.CodeConflict:
		RespondError(c, http.StatusConflict, string(code), err)
	default:
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{
			Error: APIError{
				Message: "internal error",
				Code:    string(engine.CodeStorage),
			},
		})
	}
}
