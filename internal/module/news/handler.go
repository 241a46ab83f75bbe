package news

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/pkg"
)

// NewsHandler handles REST API requests for the news resource.
type NewsHandler struct {
	svc *NewsService
}

// NewNewsHandler creates a NewsHandler.
func NewNewsHandler(svc *NewsService) *NewsHandler {
	return &NewsHandler{svc: svc}
}

// List handles GET /api/v1/news.
func (h *NewsHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), pkg.ParsePageParams(c), pkg.RequestBaseURL(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

// Get handles GET /api/v1/news/:id.
func (h *NewsHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, item)
}

// Create handles POST /api/v1/news.
func (h *NewsHandler) Create(c *gin.Context) {
	var req CreateNewsRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	item, err := h.svc.Insert(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, item)
}

// Update handles PUT /api/v1/news/:id.
func (h *NewsHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateNewsRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, item)
}

// Delete handles DELETE /api/v1/news/:id.
func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	msg, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, msg)
}
