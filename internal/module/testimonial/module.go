package testimonial

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
)

// TestimonialModule implements the app.Module interface for testimonials.
type TestimonialModule struct {
	handler *TestimonialHandler
	authn   gin.HandlerFunc
}

// NewModule creates a TestimonialModule.
func NewModule(h *TestimonialHandler, authn gin.HandlerFunc) *TestimonialModule {
	if h == nil {
		panic("testimonial.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("testimonial.NewModule: authn must not be nil")
	}
	return &TestimonialModule{handler: h, authn: authn}
}

// RegisterRoutes registers testimonial routes.
func (m *TestimonialModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/testimonials", m.handler.List)
	api.GET("/testimonials/:id", m.handler.Get)

	admin := api.Group("", m.authn, middleware.RequireRole(domain.RoleAdministrator))
	admin.POST("/testimonials", m.handler.Create)
	admin.PUT("/testimonials/:id", m.handler.Update)
	admin.DELETE("/testimonials/:id", m.handler.Delete)
}
