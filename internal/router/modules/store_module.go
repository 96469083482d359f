package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ratehub/ratehub/internal/container"
	handlers "github.com/ratehub/ratehub/internal/interface/http"
	"github.com/ratehub/ratehub/internal/interface/middleware"
	"github.com/ratehub/ratehub/pkg/helpers"
)

type StoreModule struct {
	Handler *handlers.StoreHandler
	JWT     *helpers.JWTManager
}

func NewStoreModule(h *handlers.StoreHandler, jwt *helpers.JWTManager) *StoreModule {
	return &StoreModule{Handler: h, JWT: jwt}
}

func (m *StoreModule) Register(rg *gin.RouterGroup) {
	stores := rg.Group("/stores")
	stores.Use(middleware.Auth(container.GetSessions(), m.JWT))
	{
		stores.GET("", m.Handler.List)
		stores.POST("/:storeId/rate",
			middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil),
			m.Handler.Rate)
	}
}
