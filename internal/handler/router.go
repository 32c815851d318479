package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"qrkeep/internal/handler/api"
	"qrkeep/internal/handler/middleware"
	"qrkeep/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, qrCodeHandler *api.QRCodeHandler, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, sessionMiddleware)
	setupRoutes(engine, qrCodeHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, sessionMiddleware *middleware.SessionMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(sessionMiddleware.ResolveSession())
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, qrCodeHandler *api.QRCodeHandler) {
	engine.GET("/", liveness)
	engine.GET("/health", healthCheck)
	engine.POST("/generate", qrCodeHandler.GenerateLegacy)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/user/:userId/qrcodes", Handler: qrCodeHandler.List},
			{Method: http.MethodPost, Path: "/generate", Handler: qrCodeHandler.Generate},
			{Method: http.MethodPut, Path: "/qr/:qrCodeId", Handler: qrCodeHandler.Update},
			{Method: http.MethodDelete, Path: "/qr/:qrCodeId", Handler: qrCodeHandler.Delete},
		})
	}
}

// @Summary Liveness
// @Description Plain-text liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func liveness(c *gin.Context) {
	c.String(http.StatusOK, "API is running...")
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
