package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ratehub/ratehub/internal/container"
	"github.com/ratehub/ratehub/internal/domain/entity"
	handlers "github.com/ratehub/ratehub/internal/interface/http"
	"github.com/ratehub/ratehub/internal/interface/middleware"
	"github.com/ratehub/ratehub/pkg/helpers"
)

type OwnerModule struct {
	Handler *handlers.OwnerHandler
	JWT     *helpers.JWTManager
}

func NewOwnerModule(h *handlers.OwnerHandler, jwt *helpers.JWTManager) *OwnerModule {
	return &OwnerModule{Handler: h, JWT: jwt}
}

func (m *OwnerModule) Register(rg *gin.RouterGroup) {
	owner := rg.Group("/owner")
	owner.Use(middleware.Auth(container.GetSessions(), m.JWT))
	owner.Use(middleware.RequireRoles(entity.RoleOwner))
	{
		owner.GET("/dashboard", m.Handler.Dashboard)
	}
}
