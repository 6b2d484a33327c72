package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketd/internal/shared/constants"
	"ticketd/internal/shared/errors"
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "user_id").
// entityName is used in error messages (e.g., "ticket", "user").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ParsePageQuery parses the "page" query parameter, defaulting to the first page.
func ParsePageQuery(c *gin.Context) int {
	if val := c.Query("page"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return constants.DefaultPage
}
