package contact

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/internal/pkg"
)

// ContactHandler handles REST API requests for the contact resource.
type ContactHandler struct {
	svc *ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc *ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), pkg.ParsePageParams(c), pkg.RequestBaseURL(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

func (h *ContactHandler) Get(c *gin.Context) {
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

// Create handles POST /api/v1/contacts, the public contact form.
func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
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

func (h *ContactHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateContactRequest
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

func (h *ContactHandler) Delete(c *gin.Context) {
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
