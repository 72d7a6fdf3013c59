package controllers

import (
	"backend/database"
	"backend/models"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var jwtSecret = []byte(getJWTSecret())

func getJWTSecret() string {
	if os.Getenv("JWT_SECRET") != "" {
		return os.Getenv("JWT_SECRET")
	}
	return "default-secret" // fallback
}

type SignupRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	BazaarName string `json:"bazaar_name"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    *AuthResponseData `json:"data,omitempty"`
}

type AuthResponseData struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// generateToken membuat JWT berlaku 24 jam berisi identitas admin.
func generateToken(user *models.User) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      expirationTime.Unix(),
	}
	if user.BazaarName != nil {
		claims["bazaar_name"] = *user.BazaarName
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// Signup mendaftarkan admin baru sekaligus bazarnya.
// Satu bazar hanya boleh dipegang satu admin.
func Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(AuthResponse{
			Success: false,
			Message: "Format request tidak valid",
		})
	}

	if req.Username == "" || req.Password == "" || req.BazaarName == "" {
		return c.Status(http.StatusBadRequest).JSON(AuthResponse{
			Success: false,
			Message: "Username, password, dan nama bazar wajib diisi",
		})
	}

	// Cek apakah bazar sudah dipegang admin lain
	var existing models.User
	if err := database.DB.Where("bazaar_name = ?", req.BazaarName).First(&existing).Error; err == nil {
		return c.Status(http.StatusConflict).JSON(AuthResponse{
			Success: false,
			Message: "Bazar ini sudah dipegang admin lain",
		})
	}

	user := models.User{
		Username:   req.Username,
		Role:       "admin",
		BazaarName: &req.BazaarName,
	}
	if err := user.HashPassword(req.Password); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(AuthResponse{
			Success: false,
			Message: "Gagal mengenkripsi password",
		})
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(http.StatusConflict).JSON(AuthResponse{
			Success: false,
			Message: "Username sudah digunakan",
		})
	}

	tokenString, err := generateToken(&user)
	if err != nil {
		log.Printf("❌ Gagal membuat token: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(AuthResponse{
			Success: false,
			Message: "Gagal membuat token login",
		})
	}

	return c.Status(http.StatusCreated).JSON(AuthResponse{
		Success: true,
		Message: "Pendaftaran berhasil",
		Data: &AuthResponseData{
			User:  &user,
			Token: tokenString,
		},
	})
}

// Login memverifikasi kredensial dan mengembalikan JWT.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(AuthResponse{
			Success: false,
			Message: "Format request tidak valid",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(AuthResponse{
			Success: false,
			Message: "Username dan password wajib diisi",
		})
	}

	var user models.User
	result := database.DB.Where("username = ?", req.Username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return c.Status(http.StatusUnauthorized).JSON(AuthResponse{
				Success: false,
				Message: "Username atau password salah",
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(AuthResponse{
			Success: false,
			Message: "Terjadi kesalahan saat mengakses database",
		})
	}

	if !user.CheckPassword(req.Password) {
		log.Println("❌ Invalid password for user:", req.Username)
		return c.Status(http.StatusUnauthorized).JSON(AuthResponse{
			Success: false,
			Message: "Username atau password salah",
		})
	}

	tokenString, err := generateToken(&user)
	if err != nil {
		log.Printf("❌ Gagal membuat token: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(AuthResponse{
			Success: false,
			Message: "Gagal membuat token login",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Message: "Login berhasil",
		Data: &AuthResponseData{
			User:  &user,
			Token: tokenString,
		},
	})
}

// DeleteAccount menghapus akun yang sedang login beserta SEMUA item
// miliknya (cascade). Tidak perlu cek kepemilikan per item karena
// query sudah dikunci ke user_id dari token.
func DeleteAccount(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	tx := database.DB.Begin()

	// Hapus histori dari semua item milik admin ini
	if err := tx.Where("price_update_id IN (?)",
		tx.Model(&models.PriceUpdate{}).Select("id").Where("admin_id = ?", userID),
	).Delete(&models.PriceHistory{}).Error; err != nil {
		tx.Rollback()
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menghapus histori harga",
		})
	}

	if err := tx.Where("admin_id = ?", userID).Delete(&models.PriceUpdate{}).Error; err != nil {
		tx.Rollback()
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menghapus item",
		})
	}

	// Hard delete supaya username dan bazar bisa dipakai lagi
	if err := tx.Unscoped().Delete(&models.User{}, userID).Error; err != nil {
		tx.Rollback()
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menghapus akun",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menyimpan perubahan",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Akun berhasil dihapus",
	})
}
