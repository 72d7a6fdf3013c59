package routes

import (
	"backend/realtime"

	"github.com/gofiber/fiber/v2"
)

func RegisterRealtimeRoutes(app *fiber.App) {
	app.Use("/ws", realtime.UpgradeRequired)
	app.Get("/ws", realtime.Handler())
}
