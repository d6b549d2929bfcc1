package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	// Catalog endpoints
	huma.Register(app.api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Description: "List every category with its units in display order",
		Tags:        []string{"catalog"},
	}, app.handleListCategories)

	// Conversion endpoints
	huma.Register(app.api, huma.Operation{
		OperationID: "convert",
		Method:      http.MethodGet,
		Path:        "/convert",
		Summary:     "Convert a value",
		Description: "Convert a value between two units of the same category",
		Tags:        []string{"conversion"},
	}, app.handleConvert)

	huma.Register(app.api, huma.Operation{
		OperationID:   "create-conversion",
		Method:        http.MethodPost,
		Path:          "/conversions",
		Summary:       "Convert a value from a JSON body",
		Description:   "Same as GET /convert with the request in the body",
		Tags:          []string{"conversion"},
		DefaultStatus: http.StatusOK,
	}, app.handleCreateConversion)

	// Swagger documentation for the generated OpenAPI document
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.json"))
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		swaggerHandler(c)
	})
}
