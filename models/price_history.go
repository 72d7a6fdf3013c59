package models

import (
	"time"
)

// PriceHistory menyimpan harga yang sudah digantikan beserta tanggal
// penggantiannya. Baris histori tidak pernah diubah atau dihapus
// satuan, hanya ikut terhapus kalau item induknya dihapus.
type PriceHistory struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PriceUpdateID uint      `json:"price_update_id" gorm:"not null;index"`
	Price         float64   `json:"price"`
	Date          time.Time `json:"date"`
}
