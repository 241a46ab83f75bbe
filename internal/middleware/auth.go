package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/pkg"
)

const subjectContextKey = "authSubject"

// Authenticate requires a valid Bearer token and stores the extracted
// subject in the gin context for downstream policies and handlers.
func Authenticate(tokens domain.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			pkg.Abort(c, domain.NewAppError(domain.CodeUnauthorized, "missing authorization header", nil))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			pkg.Abort(c, domain.NewAppError(domain.CodeUnauthorized, "invalid authorization header", nil))
			return
		}

		subject, err := tokens.Parse(parts[1])
		if err != nil {
			pkg.Abort(c, err)
			return
		}

		c.Set(subjectContextKey, subject)
		c.Next()
	}
}

// GetSubject extracts the authenticated subject from the gin context.
func GetSubject(c *gin.Context) (domain.Subject, bool) {
	v, exists := c.Get(subjectContextKey)
	if !exists {
		return domain.Subject{}, false
	}
	subject, ok := v.(domain.Subject)
	return subject, ok
}

// SetSubject stores a subject in the gin context. Intended for tests that
// exercise handlers without running the Authenticate middleware.
func SetSubject(c *gin.Context, subject domain.Subject) {
	c.Set(subjectContextKey, subject)
}
