package health

import (
	"github.com/ethanbaker/stringanalyzer/pkg/library"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the liveness and readiness routes. Readiness loads
// the record collection through the manager.
func RegisterRoutes(g *gin.RouterGroup, manager *library.Manager) {
	ctl := &controller{manager: manager}

	g.GET("/health", getStatus)          // Process is serving requests
	g.GET("/health/ready", ctl.getReady) // Record store is reachable
}
