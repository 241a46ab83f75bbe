package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
)

type stubTokens struct {
	subject domain.Subject
	err     error
}

func (s stubTokens) Generate(userID uint, role string, expiry time.Duration) (string, error) {
	return "", nil
}

func (s stubTokens) Parse(token string) (domain.Subject, error) { return s.subject, s.err }

func newProbeEngine(ts domain.TokenService, seen *domain.Subject) *gin.Engine {
	r := gin.New()
	r.GET("/probe", Authenticate(ts), func(c *gin.Context) {
		if subject, ok := GetSubject(c); ok {
			*seen = subject
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := stubTokens{subject: domain.Subject{UserID: 7, Role: domain.RoleUser}}

	t.Run("missing header", func(t *testing.T) {
		var seen domain.Subject
		w := httptest.NewRecorder()
		newProbeEngine(tokens, &seen).ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		var seen domain.Subject
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Basic abc123")
		newProbeEngine(tokens, &seen).ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		var seen domain.Subject
		bad := stubTokens{err: domain.NewAppError(domain.CodeUnauthorized, "invalid token", nil)}
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer bad")
		newProbeEngine(bad, &seen).ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("valid token stores subject", func(t *testing.T) {
		var seen domain.Subject
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", "Bearer good")
		newProbeEngine(tokens, &seen).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if seen.UserID != 7 || seen.Role != domain.RoleUser {
			t.Errorf("subject = %+v, want uid 7 User", seen)
		}
	})
}
