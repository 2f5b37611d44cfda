package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable error codes. Clients branch on these, never on messages.
const (
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidDateRange     = "INVALID_DATE_RANGE"
	CodeEquipmentUnavailable = "EQUIPMENT_UNAVAILABLE"
	CodeIllegalTransition    = "ILLEGAL_TRANSITION"
	CodeNotEditable          = "NOT_EDITABLE"
	CodeNotDeletable         = "NOT_DELETABLE"
	CodeIdentifierExhausted  = "IDENTIFIER_EXHAUSTED"
	CodeValidation           = "VALIDATION_ERROR"
	CodeIdempotencyConflict  = "IDEMPOTENCY_CONFLICT"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeInternal             = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
