package health

import (
	"net/http"

	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/ethanbaker/stringanalyzer/internal/logger"
	"github.com/ethanbaker/stringanalyzer/pkg/library"
	"github.com/ethanbaker/stringanalyzer/pkg/sdk"
	"github.com/gin-gonic/gin"
)

type controller struct {
	manager *library.Manager
}

// Readiness is the data returned by a successful readiness check
type Readiness struct {
	Records int `json:"records"`
}

func getStatus(c *gin.Context) {
	res := api_types.NewSuccessResponse("OK", nil)
	c.JSON(res.AsGinResponse())
}

func (ctl *controller) getReady(c *gin.Context) {
	count, err := ctl.manager.Count(c.Request.Context())
	if err != nil {
		logger.Logger.Errorw("[HEALTH]: Record store is unavailable", "error", err)
		c.JSON(http.StatusServiceUnavailable, sdk.ErrorBody{Error: "Record store is unavailable"})
		return
	}

	res := api_types.NewSuccessResponse("READY", Readiness{Records: count})
	c.JSON(res.AsGinResponse())
}
