package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Struktur User untuk database.
// Role bisa "admin" atau "customer". Satu bazar hanya boleh dipegang
// satu admin, makanya BazaarName pakai unique index (pointer supaya
// customer tanpa bazar tidak kena constraint).
type User struct {
	gorm.Model
	Username   string  `gorm:"type:varchar(191);uniqueIndex;not null" json:"username"`
	Password   string  `gorm:"not null" json:"-"`
	Role       string  `gorm:"default:admin" json:"role"`
	BazaarName *string `gorm:"type:varchar(191);uniqueIndex" json:"bazaar_name"`
}

// Fungsi untuk hash password sebelum disimpan
func (u *User) HashPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// Fungsi untuk verifikasi password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
