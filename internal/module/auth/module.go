package auth

import "github.com/gin-gonic/gin"

// AuthModule implements the app.Module interface for authentication.
type AuthModule struct {
	handler *AuthHandler
	authn   gin.HandlerFunc
}

// NewModule creates an AuthModule.
func NewModule(h *AuthHandler, authn gin.HandlerFunc) *AuthModule {
	if h == nil {
		panic("auth.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("auth.NewModule: authn must not be nil")
	}
	return &AuthModule{handler: h, authn: authn}
}

// RegisterRoutes registers the authentication routes.
func (m *AuthModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/auth/login", m.handler.Login)
	api.POST("/auth/register", m.handler.Register)
	api.GET("/auth/me", m.authn, m.handler.Me)
}
