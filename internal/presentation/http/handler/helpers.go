package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/response"
	"github.com/sangkips/marketplace-api/pkg/apperror"
)

// pathID parses the named path parameter as a UUID, writing a validation
// error when it is malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.NewFieldError(name, "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// bindQuery binds query parameters into dst
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return false
	}
	return true
}

// bindJSON binds the request body into dst
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
