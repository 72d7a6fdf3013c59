package routes

import (
	"backend/controllers"
	"backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/signup", controllers.Signup) // Daftar admin + bazar baru
	api.Post("/login", controllers.Login)
	api.Delete("/deleteAccount", middleware.JWTMiddleware, controllers.DeleteAccount) // Hapus akun + semua itemnya
}
