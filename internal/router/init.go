package router

import (
	"github.com/ratehub/ratehub/internal/application"
	"github.com/ratehub/ratehub/internal/container"
	pginfra "github.com/ratehub/ratehub/internal/infrastructure/postgres"
	handlers "github.com/ratehub/ratehub/internal/interface/http"
	"github.com/ratehub/ratehub/internal/router/modules"
)

type Deps struct {
	Auth  *handlers.AuthHandler
	Admin *handlers.AdminHandler
	Store *handlers.StoreHandler
	Owner *handlers.OwnerHandler
}

func buildDeps() Deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	stores := pginfra.NewStoreRepository(pool)
	ratings := pginfra.NewRatingRepository(pool)

	authSvc := application.NewAuthService(users, container.GetSessions(), container.GetJWT(), cfg.SessionTTL, logger)
	authSvc.Pub = container.GetRabbitPub()
	authSvc.AppName = cfg.AppName

	userSvc := application.NewUserService(users, logger)

	storeSvc := application.NewStoreService(stores, logger)
	storeSvc.ES = container.GetES()
	storeSvc.ESStoresIndex = cfg.ESStoresIndex
	storeSvc.GCS = container.GetGCS()
	storeSvc.GCSBucket = cfg.GCSBucket

	ratingSvc := application.NewRatingService(ratings, stores, users, logger)

	return Deps{
		Auth:  handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure),
		Admin: handlers.NewAdminHandler(authSvc, userSvc, storeSvc, ratingSvc, logger),
		Store: handlers.NewStoreHandler(storeSvc, ratingSvc, logger),
		Owner: handlers.NewOwnerHandler(ratingSvc, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewAuthModule(deps.Auth, jwt))
	r.Add(modules.NewStoreModule(deps.Store, jwt))
	r.Add(modules.NewOwnerModule(deps.Owner, jwt))
	r.Add(modules.NewAdminModule(deps.Admin, jwt))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
