package components

import (
	"rental-contracts/internal/handler"
	"rental-contracts/internal/handler/api"
	"rental-contracts/internal/handler/middleware"
	"rental-contracts/internal/pkg/config"
	"rental-contracts/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewContractHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routerIn struct {
	fx.In

	Engine          *gin.Engine
	Config          config.Config
	Logger          *middleware.Logger
	HTTPMetrics     *metrics.HTTPMetrics
	Gatherer        prometheus.Gatherer
	AuthHandler     *api.AuthHandler
	ContractHandler *api.ContractHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func registerRoutes(in routerIn) error {
	return handler.NewRouter(handler.RouterParams{
		Engine:          in.Engine,
		Config:          in.Config,
		Logger:          in.Logger,
		HTTPMetrics:     in.HTTPMetrics,
		Gatherer:        in.Gatherer,
		AuthHandler:     in.AuthHandler,
		ContractHandler: in.ContractHandler,
		AuthMiddleware:  in.AuthMiddleware,
	})
}
