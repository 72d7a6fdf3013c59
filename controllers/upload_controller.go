package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	uploadDir    = "./public/uploads"
	maxImageSize = 1000000 // 1 MB
)

var allowedImageExt = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var (
	ErrImageTooLarge = errors.New("ukuran gambar maksimal 1 MB")
	ErrImageType     = errors.New("hanya file gambar (jpeg, jpg, png, gif) yang diperbolehkan")
)

// SaveItemImage menyimpan gambar item ke folder uploads dan
// mengembalikan path publiknya. Validasi mengikuti aturan upload:
// tipe jpeg/jpg/png/gif dan maksimal 1.000.000 byte.
func SaveItemImage(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	if file.Size > maxImageSize {
		return "", ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return "", ErrImageType
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return "", ErrImageType
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan folder upload: %w", err)
	}

	// Nama file unik pakai uuid supaya aman dari tabrakan nama
	filename := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	return "/uploads/" + filename, nil
}
