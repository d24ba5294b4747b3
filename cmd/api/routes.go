package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	app.router.Use(corsMiddleware())

	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Organizer login
	app.router.POST("/auth/login", app.handleLogin)

	// Roster reads are open so the grid and map can render without a session
	app.router.GET("/participants", app.handleListParticipants)
	app.router.GET("/participants/stats", app.handleBusStats)
	app.router.GET("/selection", app.handleGetSelection)
	app.router.PUT("/selection", app.handlePutSelection)
	app.router.GET("/map/markers", app.handleGetMarkers)

	// Mutations require the organizer token
	authorized := app.router.Group("/", app.authService.Middleware())
	authorized.POST("/participants", app.handleAddParticipant)
	authorized.PATCH("/participants/:id", app.handleUpdateParticipant)
	authorized.DELETE("/participants/:id", app.handleDeleteParticipant)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}

// corsMiddleware allows the SPA frontend to call the API from another origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
