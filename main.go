package main

import (
	"backend/database"
	"backend/routes"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

// 🔧 Fungsi untuk inisialisasi database
func initDatabase() {
	database.ConnectDatabase()

	if database.DB == nil {
		log.Fatalf("❌ Koneksi database nil! Pastikan database berjalan.")
		os.Exit(1)
	}

	fmt.Println("✅ Database sudah siap digunakan!")
}

func main() {
	// Load .env kalau ada, kalau tidak pakai environment sistem
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ File .env tidak ditemukan, pakai environment sistem")
	}

	// Inisialisasi database
	initDatabase()

	// Inisialisasi Fiber
	app := fiber.New()

	// 🛡 Middleware CORS & Logger
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8000,http://yourdomain.com",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))
	app.Use(logger.New()) // Tambahkan logger untuk debugging request

	// Gambar item disajikan langsung dari folder upload
	app.Static("/uploads", "./public/uploads")

	// Daftarkan Routes
	routes.RegisterAuthRoutes(app)
	routes.RegisterPriceRoutes(app)
	routes.RegisterRealtimeRoutes(app)

	// Endpoint testing
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "🚀 Bazar Backend is Running!"})
	})

	// Jalankan server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081" // fallback
	}
	fmt.Println("🚀 Server running on port " + port)
	log.Fatal(app.Listen(":" + port))
}
