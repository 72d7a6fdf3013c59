package routes

import (
	"backend/controllers"
	"backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterPriceRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Endpoint publik untuk dashboard customer
	api.Get("/priceUpdates", controllers.GetPriceUpdates)
	api.Get("/priceHistory/:itemName", controllers.GetPriceHistoryByName)
	api.Get("/comparePriceHistory/:itemName", controllers.ComparePriceHistory)
	api.Get("/singlePriceHistory/:itemName/:bazaarName", controllers.SinglePriceHistory)

	// Endpoint admin, butuh autentikasi
	admin := api.Group("/admin", middleware.JWTMiddleware)
	admin.Post("/update", controllers.CreateOrUpdatePrice)
	admin.Put("/update/:id", controllers.PatchPrice)
	admin.Delete("/delete/:id", controllers.DeletePrice)
}
