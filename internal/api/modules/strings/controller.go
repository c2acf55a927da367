package strings_module

import (
	"net/http"

	"github.com/ethanbaker/stringanalyzer/internal/logger"
	"github.com/ethanbaker/stringanalyzer/pkg/errs"
	"github.com/ethanbaker/stringanalyzer/pkg/filter"
	"github.com/ethanbaker/stringanalyzer/pkg/library"
	"github.com/ethanbaker/stringanalyzer/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// Controller serves the strings routes from a manager
type Controller struct {
	manager *library.Manager
}

// NewController creates a controller around a manager
func NewController(manager *library.Manager) *Controller {
	return &Controller{manager: manager}
}

// CreateString handles POST requests to analyze and store a string
func (ctl *Controller) CreateString(c *gin.Context) {
	// Parse request body loosely so type errors can be told apart from missing fields
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorBody{Error: "Invalid request body. Expected JSON."})
		return
	}

	raw, exists := body["value"]
	if !exists {
		c.JSON(http.StatusBadRequest, sdk.ErrorBody{Error: "Missing 'value' field in request body."})
		return
	}

	value, ok := raw.(string)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, sdk.ErrorBody{Error: "'value' must be a string.", Field: "value"})
		return
	}

	record, err := ctl.manager.Create(c.Request.Context(), value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetString handles GET requests for a single string by value
func (ctl *Controller) GetString(c *gin.Context) {
	record, err := ctl.manager.Get(c.Request.Context(), c.Param("string_value"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListStrings handles GET requests listing strings with structured filters
func (ctl *Controller) ListStrings(c *gin.Context) {
	result, err := ctl.manager.List(c.Request.Context(), filter.RawValues(c.Request.URL.Query()))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// FilterByNaturalLanguage handles GET requests with a natural language query
func (ctl *Controller) FilterByNaturalLanguage(c *gin.Context) {
	result, err := ctl.manager.Query(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteString handles DELETE requests removing a string by value
func (ctl *Controller) DeleteString(c *gin.Context) {
	if err := ctl.manager.Delete(c.Request.Context(), c.Param("string_value")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// StatusFor maps an error kind to its HTTP status
func StatusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation, errs.KindUnparseableQuery:
		return http.StatusBadRequest
	case errs.KindConflictingFilters:
		return http.StatusUnprocessableEntity
	case errs.KindDuplicateRecord:
		return http.StatusConflict
	case errs.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Unknown errors are logged and
// reported without their internal message.
func respondError(c *gin.Context, err error) {
	status := StatusFor(err)

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		logger.Logger.Errorw("[STRINGS]: Unexpected error", "path", c.Request.URL.Path, "error", err)
		c.JSON(status, sdk.ErrorBody{Error: "An unexpected server error occurred."})
		return
	}

	c.JSON(status, sdk.ErrorBody{Error: err.Error(), Field: errs.FieldOf(err)})
}
