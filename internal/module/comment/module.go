package comment

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
)

// CommentModule implements the app.Module interface for the comment resource.
type CommentModule struct {
	handler *CommentHandler
	authn   gin.HandlerFunc
}

// NewModule creates a CommentModule.
func NewModule(h *CommentHandler, authn gin.HandlerFunc) *CommentModule {
	if h == nil {
		panic("comment.NewModule: handler must not be nil")
	}
	if authn == nil {
		panic("comment.NewModule: authn must not be nil")
	}
	return &CommentModule{handler: h, authn: authn}
}

// RegisterRoutes registers comment routes. Every route requires a token;
// the flat listing is additionally admin-only, and ownership of individual
// comments is enforced in the service.
func (m *CommentModule) RegisterRoutes(api *gin.RouterGroup) {
	authed := api.Group("", m.authn)
	authed.GET("/comments/news/:id", m.handler.ListByNews)
	authed.POST("/comments", m.handler.Create)
	authed.PUT("/comments/:id", m.handler.Update)
	authed.DELETE("/comments/:id", m.handler.Delete)

	admin := api.Group("", m.authn, middleware.RequireRole(domain.RoleAdministrator))
	admin.GET("/comments", m.handler.List)
}
