package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
	"github.com/somosmas/ong-api/internal/pkg"
)

// AuthHandler handles authentication requests.
type AuthHandler struct {
	svc *AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc *AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

// Register handles POST /api/v1/auth/register. Non-fatal warnings, such as a
// failed welcome email, ride in the envelope's errors list.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	result, warnings, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.SuccessWithWarnings(c, result, warnings)
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	result, err := h.svc.Me(c.Request.Context(), subject)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}
