package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethanbaker/stringanalyzer/internal/logger"
	"github.com/ethanbaker/stringanalyzer/pkg/library"
	"github.com/ethanbaker/stringanalyzer/pkg/utils"
	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	health_module "github.com/ethanbaker/stringanalyzer/internal/api/modules/health"
	strings_module "github.com/ethanbaker/stringanalyzer/internal/api/modules/strings"
)

// NewEngine builds the gin engine with every module registered against the manager
func NewEngine(cfg *utils.Config, manager *library.Manager) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger())
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-KEY", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/", func(c *gin.Context) {
		c.String(200, "String Analyzer Service is running")
	})

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	health_module.RegisterRoutes(baseGroup, manager)
	strings_module.RegisterRoutes(baseGroup, cfg, strings_module.NewController(manager))

	return engine
}

// DefaultPort is used when API_PORT is not set
const DefaultPort = 8080

// ListenAddr returns the address to serve on from API_PORT
func ListenAddr(cfg *utils.Config) (string, error) {
	port := cfg.GetIntWithDefault("API_PORT", DefaultPort)
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid API_PORT '%s'", cfg.Get("API_PORT"))
	}
	return fmt.Sprintf(":%d", port), nil
}

// Start opens the configured store and serves the API until the server fails
func Start(cfg *utils.Config) {
	addr, err := ListenAddr(cfg)
	if err != nil {
		logger.Logger.Fatalw("[API-MAIN]: Invalid configuration", "error", err)
	}

	manager, err := strings_module.Init(cfg)
	if err != nil {
		logger.Logger.Fatalw("[API-MAIN]: Failed to initialize strings module", "error", err)
	}

	engine := NewEngine(cfg, manager)

	logger.Logger.Infow("[API-MAIN]: Server listening", "addr", addr)
	if err := engine.Run(addr); err != nil {
		logger.Logger.Fatalw("[API-MAIN]: Failed to start server", "error", err)
	}
}
