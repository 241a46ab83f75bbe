package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
)

// IDExtractor pulls the target resource id out of a request. Policies take
// one explicitly instead of string-matching on paths, so each route declares
// where its id lives.
type IDExtractor func(c *gin.Context) (uint, bool)

// PathID extracts a numeric id from the named route parameter.
func PathID(param string) IDExtractor {
	return func(c *gin.Context) (uint, bool) {
		return parseUint(c.Param(param))
	}
}

// QueryID extracts a numeric id from the named query parameter.
func QueryID(param string) IDExtractor {
	return func(c *gin.Context) (uint, bool) {
		return parseUint(c.Query(param))
	}
}

// RequireRole rejects requests whose subject does not hold the given role.
// The rejection status is 401, matching the admin-only resource gate.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := GetSubject(c)
		if !ok {
			pkg.Abort(c, domain.ErrUnauthorized)
			return
		}
		if subject.Role != role {
			pkg.Abort(c, domain.NewAppError(domain.CodeUnauthorized, "administrator role required", nil))
			return
		}
		c.Next()
	}
}

// SelfOrAdmin rejects requests targeting another user's resource unless the
// subject is an administrator. Rejection is 403: the caller is authenticated
// but lacks ownership.
func SelfOrAdmin(extract IDExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := GetSubject(c)
		if !ok {
			pkg.Abort(c, domain.ErrUnauthorized)
			return
		}
		if subject.IsAdministrator() {
			c.Next()
			return
		}

		targetID, ok := extract(c)
		if !ok || targetID != subject.UserID {
			pkg.Abort(c, domain.NewAppError(domain.CodeForbidden, "you do not have permission over this resource", nil))
			return
		}
		c.Next()
	}
}

func parseUint(s string) (uint, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
