package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heartlinkhq/admin-console/pkg/errors"
)

// Response is the envelope every API endpoint answers with. The same shape is
// decoded on the client side, so Data stays raw until the caller knows the
// concrete type.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Pagination is the metadata block attached to server-paginated list responses.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// PagedBody is the body of a server-paginated list endpoint.
type PagedBody struct {
	Data       json.RawMessage `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// NewPagination computes the metadata for a page of a known total.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

// RespondWithSuccess sends a success envelope
func RespondWithSuccess(c *gin.Context, data interface{}) {
	raw, _ := json.Marshal(data)
	c.JSON(http.StatusOK, Response{Success: true, Data: raw})
}

// RespondWithMessage sends a success envelope carrying a user-facing message
func RespondWithMessage(c *gin.Context, data interface{}, message string) {
	var raw json.RawMessage
	if data != nil {
		raw, _ = json.Marshal(data)
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: raw, Message: message})
}

// RespondWithError sends an error envelope with a status derived from the error code
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.CodeOf(err) {
	case errors.ErrValidation, errors.ErrApplication:
		status = http.StatusBadRequest
	case errors.ErrNotFound:
		status = http.StatusNotFound
	case errors.ErrUnauthorized:
		status = http.StatusUnauthorized
	}
	c.JSON(status, Response{Success: false, Message: errors.MessageOf(err), Error: errors.MessageOf(err)})
}

// RespondWithPagination sends a server-paginated list envelope
func RespondWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	raw, _ := json.Marshal(data)
	body, _ := json.Marshal(PagedBody{Data: raw, Pagination: NewPagination(page, limit, total)})
	c.JSON(http.StatusOK, Response{Success: true, Data: body})
}
