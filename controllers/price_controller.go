package controllers

import (
	"backend/database"
	"backend/models"
	"backend/realtime"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateOrUpdatePrice menangani form multipart dari dashboard admin.
// Satu endpoint untuk tambah item baru maupun update item lama:
// pencocokan pakai nama item ternormalisasi dalam bazar yang sama.
func CreateOrUpdatePrice(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(uint)

	bazaarName := c.FormValue("bazaarName")
	itemName := c.FormValue("itemName")
	itemType := c.FormValue("itemType")
	if bazaarName == "" || itemName == "" || itemType == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "bazaarName, itemName, dan itemType wajib diisi",
		})
	}

	itemPrice, err := strconv.ParseFloat(c.FormValue("itemPrice"), 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "itemPrice harus berupa angka",
		})
	}

	// Kuantitas boleh kosong, default 0
	quantity, _ := strconv.ParseFloat(c.FormValue("availableQuantity"), 64)

	input := models.PriceInput{
		ItemPrice:          itemPrice,
		AvailableQuantity:  quantity,
		SeasonalHighlights: c.FormValue("seasonalHighlights") == "true",
		ItemType:           itemType,
	}

	// Simpan gambar dulu kalau ada, sebelum masuk transaksi
	imagePath := ""
	if file, err := c.FormFile("itemImage"); err == nil && file != nil {
		imagePath, err = SaveItemImage(c, file)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
	}

	normalized := models.NormalizeItemName(itemName)
	now := time.Now()

	tx := database.DB.Begin()

	var existing models.PriceUpdate
	err = tx.Where("bazaar_name = ? AND item_name = ?", bazaarName, normalized).First(&existing).Error

	if err == nil {
		// Item sudah ada → update
		if !existing.OwnedBy(adminID) {
			tx.Rollback()
			return c.Status(403).JSON(fiber.Map{
				"success": false,
				"message": "Anda tidak memiliki izin untuk mengubah item ini",
			})
		}

		entry := existing.ApplyUpdate(input, imagePath, now)

		if err := tx.Omit("History").Save(&existing).Error; err != nil {
			tx.Rollback()
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"message": "Gagal mengupdate item",
			})
		}
		if entry != nil {
			if err := tx.Create(entry).Error; err != nil {
				tx.Rollback()
				return c.Status(500).JSON(fiber.Map{
					"success": false,
					"message": "Gagal menyimpan histori harga",
				})
			}
		}

		if err := tx.Commit().Error; err != nil {
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"message": "Gagal menyimpan perubahan",
			})
		}

		realtime.Broadcast("priceUpdate", existing)
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Item berhasil diperbarui",
			"item":    existing,
		})
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Gagal mengambil data item",
		})
	}

	// Item belum ada → buat baru, histori diseed harga awal.
	// Kalau ada race dua admin insert bersamaan, unique index
	// (bazaar_name, item_name) yang menolak duplikatnya.
	record := models.NewPriceUpdate(adminID, bazaarName, itemName, imagePath, input, now)
	if err := tx.Create(record).Error; err != nil {
		tx.Rollback()
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menambahkan item, nama item sudah terpakai di bazar ini",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menyimpan perubahan",
		})
	}

	fmt.Printf("✅ Item baru ditambahkan: %s @ %s\n", record.ItemName, record.BazaarName)

	realtime.Broadcast("priceUpdate", record)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item berhasil ditambahkan",
		"item":    record,
	})
}

// PatchPrice update ringan by ID: hanya harga, stok, dan flag musiman.
// Tetap pakai cek kepemilikan walau tidak menyentuh histori.
func PatchPrice(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(uint)
	id := c.Params("id")

	var record models.PriceUpdate
	if err := database.DB.First(&record, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Item tidak ditemukan",
		})
	}

	if !record.OwnedBy(adminID) {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"message": "Anda tidak memiliki izin untuk mengubah item ini",
		})
	}

	var input struct {
		ItemPrice          float64 `json:"item_price"`
		AvailableQuantity  float64 `json:"available_quantity"`
		SeasonalHighlights bool    `json:"seasonal_highlights"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"message": "Format request tidak valid",
		})
	}

	record.PatchFields(input.ItemPrice, input.AvailableQuantity, input.SeasonalHighlights)

	if err := database.DB.Omit("History").Save(&record).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Gagal mengupdate item",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item berhasil diperbarui",
		"item":    record,
	})
}

// DeletePrice menghapus item beserta historinya, hanya oleh pemiliknya.
func DeletePrice(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(uint)
	id := c.Params("id")

	var record models.PriceUpdate
	if err := database.DB.First(&record, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{
			"success": false,
			"message": "Item tidak ditemukan",
		})
	}

	if !record.OwnedBy(adminID) {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"message": "Anda tidak memiliki izin untuk menghapus item ini",
		})
	}

	tx := database.DB.Begin()

	if err := tx.Where("price_update_id = ?", record.ID).Delete(&models.PriceHistory{}).Error; err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menghapus histori harga",
		})
	}

	if err := tx.Delete(&models.PriceUpdate{}, record.ID).Error; err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menghapus item",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menyimpan perubahan",
		})
	}

	realtime.Broadcast("priceDelete", record)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item berhasil dihapus",
	})
}

// GetPriceUpdates mengambil daftar item untuk dashboard customer,
// dengan filter exact-match dan pilihan urutan harga.
func GetPriceUpdates(c *fiber.Ctx) error {
	query := database.DB.Preload("History")

	if bazaarName := c.Query("bazaarName"); bazaarName != "" {
		query = query.Where("bazaar_name = ?", bazaarName)
	}
	if itemType := c.Query("itemType"); itemType != "" {
		query = query.Where("item_type = ?", itemType)
	}
	if seasonal := c.Query("seasonalHighlights"); seasonal != "" {
		query = query.Where("seasonal_highlights = ?", seasonal == "true")
	}

	// Default urut tanggal update terbaru
	switch c.Query("sortByPrice") {
	case "low-to-high":
		query = query.Order("item_price ASC")
	case "high-to-low":
		query = query.Order("item_price DESC")
	default:
		query = query.Order("date DESC")
	}

	var records []models.PriceUpdate
	if err := query.Find(&records).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Gagal mengambil data harga",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"history": records,
	})
}

// ComparePriceHistory membandingkan harga item yang sama di semua bazar.
// Nama item dicocokkan case-insensitive (disimpan ternormalisasi).
func ComparePriceHistory(c *fiber.Ctx) error {
	normalized := models.NormalizeItemName(c.Params("itemName"))

	var records []models.PriceUpdate
	if err := database.DB.
		Where("item_name = ?", normalized).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Gagal mengambil data harga",
		})
	}

	if len(records) == 0 {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Riwayat harga tidak ditemukan",
		})
	}

	history := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		history = append(history, fiber.Map{
			"date":       r.Date,
			"price":      r.ItemPrice,
			"bazaarName": r.BazaarName,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"history": history,
	})
}

// SinglePriceHistory mengembalikan histori tersimpan untuk satu item
// di satu bazar, apa adanya sesuai urutan penambahan.
func SinglePriceHistory(c *fiber.Ctx) error {
	normalized := models.NormalizeItemName(c.Params("itemName"))
	bazaarName := c.Params("bazaarName")

	var record models.PriceUpdate
	err := database.DB.
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("price_histories.id ASC")
		}).
		Where("item_name = ? AND bazaar_name = ?", normalized, bazaarName).
		First(&record).Error
	if err != nil || len(record.History) == 0 {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Riwayat harga tidak ditemukan",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"history": record.History,
	})
}

// GetPriceHistoryByName mengembalikan deretan harga saat ini per bazar
// untuk satu nama item, urut tanggal naik. Dipakai grafik tren sederhana.
func GetPriceHistoryByName(c *fiber.Ctx) error {
	normalized := models.NormalizeItemName(c.Params("itemName"))

	var records []models.PriceUpdate
	if err := database.DB.
		Where("item_name = ?", normalized).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"message": "Gagal mengambil data harga",
		})
	}

	if len(records) == 0 {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Riwayat harga tidak ditemukan",
		})
	}

	history := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		history = append(history, fiber.Map{
			"date":  r.Date,
			"price": r.ItemPrice,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"history": history,
	})
}
