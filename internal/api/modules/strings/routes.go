package strings_module

import (
	"github.com/ethanbaker/api/pkg/api_key"
	"github.com/ethanbaker/stringanalyzer/pkg/utils"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the routes for the strings module. When API_KEY is
// configured, routes that change the collection require it.
func RegisterRoutes(g *gin.RouterGroup, cfg *utils.Config, controller *Controller) {
	group := g.Group("/strings")

	// Routes that modify the collection
	protected := group.Group("")
	if cfg.Has("API_KEY") {
		apiKey := cfg.Get("API_KEY")
		protected.Use(api_key.APIKeyHeaderHandler(func(key string) bool {
			return key == apiKey
		}))
	}

	protected.POST("", controller.CreateString)                 // Analyze and store a new string
	protected.DELETE("/:string_value", controller.DeleteString) // Delete a string by value

	group.GET("", controller.ListStrings)                                        // List strings with structured filters
	group.GET("/filter-by-natural-language", controller.FilterByNaturalLanguage) // List strings with a natural language query
	group.GET("/:string_value", controller.GetString)                            // Get a string by value
}
