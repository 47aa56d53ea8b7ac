package router

import (
	"wedding-invite/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

// Setup registers the public guest-facing routes. None of these require
// authentication; any guest may read the board and post to it.
func Setup(e *echo.Echo, invitationHandler *handler.InvitationHandler, boardHandler *handler.BoardHandler) {
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")
	v1.GET("/invitation", invitationHandler.GetInvitation)
	v1.GET("/gallery", invitationHandler.GetGallery)

	v1.GET("/wishes", boardHandler.ListWishes)
	v1.POST("/wishes", boardHandler.Submit)
}
