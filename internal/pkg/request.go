package pkg

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
)

// ParseIDParam extracts a positive numeric id from the named route parameter.
// A malformed or missing value is an InvalidState error, not a 404: the route
// matched, the input did not.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, domain.NewAppError(domain.CodeInvalidState, "invalid id parameter", nil)
	}
	return uint(v), nil
}
