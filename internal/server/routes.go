package server

import (
	"github.com/labstack/echo/v4"

	"tableorder/internal/handler"
)

func RegisterRoutes(e *echo.Echo, intakeH *handler.IntakeHandler, orderH *handler.OrderHandler, trackH *handler.TrackHandler) {
	intakeH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	trackH.RegisterRoutes(e)
}
