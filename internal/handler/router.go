package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-contracts/internal/domain/user"
	"rental-contracts/internal/handler/api"
	reqdto "rental-contracts/internal/handler/dto/request"
	"rental-contracts/internal/handler/middleware"
	"rental-contracts/internal/pkg/config"
	"rental-contracts/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	Engine          *gin.Engine
	Config          config.Config
	Logger          *middleware.Logger
	HTTPMetrics     *metrics.HTTPMetrics
	Gatherer        prometheus.Gatherer
	AuthHandler     *api.AuthHandler
	ContractHandler *api.ContractHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func NewRouter(p RouterParams) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(p)
	setupRoutes(p)
	return nil
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware(p.HTTPMetrics))
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if p.Config.Metrics.Enabled && p.Gatherer != nil {
		engine.GET(p.Config.Metrics.Path, gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := p.AuthMiddleware
	can := authMw.RequirePermission

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMw.RequireAuth())
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
		})

		contracts := apiGroup.Group("/contracts")
		h := p.ContractHandler
		addRoutes(contracts, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Create, Mw: []gin.HandlerFunc{can(user.PermContractsCreate)}},
			{Method: http.MethodPost, Path: "/quote", Handler: h.Quote, Mw: []gin.HandlerFunc{can(user.PermContractsRead)}},
			{Method: http.MethodGet, Path: "", Handler: h.List, Mw: []gin.HandlerFunc{can(user.PermContractsRead)}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Get, Mw: []gin.HandlerFunc{can(user.PermContractsRead)}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Update, Mw: []gin.HandlerFunc{can(user.PermContractsUpdate)}},
			{Method: http.MethodPut, Path: "/:id/status", Handler: h.UpdateStatus, Mw: []gin.HandlerFunc{can(user.PermContractsApprove)}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Delete, Mw: []gin.HandlerFunc{can(user.PermContractsDelete)}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
