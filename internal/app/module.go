package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// Each module registers its own routes, including any authorization
// middleware its routes require, under the versioned API group.
type Module interface {
	RegisterRoutes(api *gin.RouterGroup)
}
