package router

import (
	"wedding-invite/internal/adapter/api/handler"
	"wedding-invite/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupHostRouter registers the couple's endpoints behind host authentication.
func SetupHostRouter(e *echo.Echo, hostHandler *handler.HostHandler, hostMiddleware *middleware.HostMiddleware) {
	hostGroup := e.Group("/v1/host")
	hostGroup.Use(hostMiddleware.Authenticate)

	hostGroup.GET("/rsvps", hostHandler.ListRsvps)
	hostGroup.GET("/rsvps/summary", hostHandler.GetRsvpSummary)
	hostGroup.POST("/gallery", hostHandler.UploadMedia)
}
