package main

import (
	"log"

	"github.com/ethanbaker/stringanalyzer/internal/api"
	"github.com/ethanbaker/stringanalyzer/internal/logger"
	"github.com/ethanbaker/stringanalyzer/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Start the API server
func main() {
	// Load global config
	cfg := utils.NewConfigFromEnv(utils.EnvFile())

	if err := logger.Initialize(cfg.GetBool("LOG_JSON")); err != nil {
		log.Fatalf("[API-MAIN]: Failed to initialize logger: %v", err)
	}
	defer logger.Cleanup()

	if mode := cfg.Get("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Start
	api.Start(cfg)
}
