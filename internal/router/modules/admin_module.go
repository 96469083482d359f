package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/ratehub/ratehub/internal/container"
	"github.com/ratehub/ratehub/internal/domain/entity"
	handlers "github.com/ratehub/ratehub/internal/interface/http"
	"github.com/ratehub/ratehub/internal/interface/middleware"
	"github.com/ratehub/ratehub/pkg/helpers"
)

type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetSessions(), m.JWT))
	admin.Use(middleware.RequireRoles(entity.RoleAdmin))
	{
		admin.GET("/dashboard", m.Handler.Dashboard)

		admin.GET("/users", m.Handler.ListUsers)
		admin.POST("/users", m.Handler.CreateUser)
		admin.GET("/users/:id", m.Handler.GetUser)

		admin.GET("/stores", m.Handler.ListStores)
		admin.POST("/stores", m.Handler.CreateStore)
		admin.GET("/stores/search", m.Handler.SearchStores)
		admin.POST("/stores/:id/logo", m.Handler.UploadStoreLogo)
	}
}
