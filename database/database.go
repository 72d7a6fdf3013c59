package database

import (
	"backend/models"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB adalah instance global untuk database
var DB *gorm.DB

func getDSN() string {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return dsn
	}
	// Fallback untuk development lokal
	return "root:root@tcp(127.0.0.1:3306)/rythu_bazar?charset=utf8mb4&parseTime=True&loc=Local"
}

// Fungsi untuk menghubungkan ke database
func ConnectDatabase() {
	var err error
	DB, err = gorm.Open(mysql.Open(getDSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("✅ Database connected successfully!")

	// Migrasi model ke dalam database
	err = DB.AutoMigrate(&models.User{}, &models.PriceUpdate{}, &models.PriceHistory{})
	if err != nil {
		log.Fatalf("❌ Failed to migrate the database: %v\n", err)
	}
	fmt.Println("✅ Database migrated successfully!")
}
