package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"guestlink/internal/handler/api"
	"guestlink/internal/handler/middleware"
	"guestlink/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Registry       *prometheus.Registry
	FlowHandler    *api.RegistrationFlowHandler
	FlowMiddleware *middleware.FlowMiddleware
	HealthHandler  *api.HealthHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine, flowHandler := p.Engine, p.FlowHandler

	engine.GET("/health", p.HealthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		links := apiGroup.Group("/registration-links")
		{
			addRoutes(links, []route{
				{Method: http.MethodPost, Path: "/:token/flows", Handler: flowHandler.Start},
			})
		}

		flow := apiGroup.Group("/registration-flow")
		flow.Use(p.FlowMiddleware.RequireFlow())
		{
			addRoutes(flow, []route{
				{Method: http.MethodGet, Path: "", Handler: flowHandler.Get},
				{Method: http.MethodPost, Path: "/next", Handler: flowHandler.Next},
				{Method: http.MethodPost, Path: "/back", Handler: flowHandler.Back},
				{Method: http.MethodPost, Path: "/steps/:step", Handler: flowHandler.GoTo},
				{Method: http.MethodPut, Path: "/guest", Handler: flowHandler.UpdateGuest},
				{Method: http.MethodPut, Path: "/companions", Handler: flowHandler.UpdateCompanions},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
