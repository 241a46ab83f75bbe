package comment

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/domain"
	"github.com/somosmas/ong-api/internal/middleware"
	"github.com/somosmas/ong-api/internal/pkg"
)

// CommentHandler handles REST API requests for the comment resource.
type CommentHandler struct {
	svc *CommentService
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc *CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), pkg.ParsePageParams(c), pkg.RequestBaseURL(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

// ListByNews handles GET /api/v1/comments/news/:id.
func (h *CommentHandler) ListByNews(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListByNews(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

func (h *CommentHandler) Create(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	var req CreateCommentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	item, err := h.svc.Insert(c.Request.Context(), subject, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, item)
}

func (h *CommentHandler) Update(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateCommentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	item, err := h.svc.Update(c.Request.Context(), subject, id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, item)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	subject, ok := middleware.GetSubject(c)
	if !ok {
		pkg.Error(c, domain.ErrUnauthorized)
		return
	}

	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	msg, err := h.svc.Delete(c.Request.Context(), subject, id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, msg)
}
