package activity

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/pkg"
)

// ActivityHandler handles REST API requests for the activity resource.
type ActivityHandler struct {
	svc *ActivityService
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc *ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

func (h *ActivityHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), pkg.ParsePageParams(c), pkg.RequestBaseURL(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

func (h *ActivityHandler) Get(c *gin.Context) {
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

func (h *ActivityHandler) Create(c *gin.Context) {
	var req CreateActivityRequest
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

func (h *ActivityHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateActivityRequest
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

func (h *ActivityHandler) Delete(c *gin.Context) {
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
