package models

import (
	"errors"
	"strings"
	"time"
)

// ErrNotOwner dikembalikan kalau admin mencoba mengubah item milik admin lain.
var ErrNotOwner = errors.New("item ini milik admin lain")

// PriceUpdate adalah satu item per (bazar, nama item ternormalisasi).
// ItemName selalu disimpan dalam bentuk ternormalisasi (lowercase, trim),
// dan kombinasi bazar+nama dijaga unik lewat composite index supaya
// race lookup-then-insert tidak bisa menghasilkan duplikat.
type PriceUpdate struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	AdminID            uint           `json:"admin_id" gorm:"not null;index"`
	BazaarName         string         `json:"bazaar_name" gorm:"type:varchar(191);not null;uniqueIndex:idx_bazaar_item"`
	ItemName           string         `json:"item_name" gorm:"type:varchar(191);not null;uniqueIndex:idx_bazaar_item"`
	ItemImage          string         `json:"item_image"`
	ItemPrice          float64        `json:"item_price"`
	SeasonalHighlights bool           `json:"seasonal_highlights"`
	AvailableQuantity  float64        `json:"available_quantity"`
	ItemType           string         `json:"item_type"`
	Date               time.Time      `json:"date"`
	History            []PriceHistory `json:"history" gorm:"foreignKey:PriceUpdateID;constraint:OnDelete:CASCADE"`
}

// PriceInput adalah field yang dikirim admin saat menambah/mengubah item.
type PriceInput struct {
	ItemPrice          float64
	AvailableQuantity  float64
	SeasonalHighlights bool
	ItemType           string
}

// NormalizeItemName membuat kunci pencocokan nama item:
// spasi pinggir dibuang, huruf jadi lowercase.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewPriceUpdate membuat item baru. Entri histori pertama merekam
// harga awal, bukan harga yang digantikan.
func NewPriceUpdate(adminID uint, bazaarName, itemName, imagePath string, input PriceInput, now time.Time) *PriceUpdate {
	return &PriceUpdate{
		AdminID:            adminID,
		BazaarName:         bazaarName,
		ItemName:           NormalizeItemName(itemName),
		ItemImage:          imagePath,
		ItemPrice:          input.ItemPrice,
		SeasonalHighlights: input.SeasonalHighlights,
		AvailableQuantity:  input.AvailableQuantity,
		ItemType:           input.ItemType,
		Date:               now,
		History: []PriceHistory{
			{Price: input.ItemPrice, Date: now},
		},
	}
}

// OwnedBy mengecek apakah item ini dibuat oleh admin tersebut.
func (p *PriceUpdate) OwnedBy(adminID uint) bool {
	return p.AdminID == adminID
}

// ApplyUpdate menerapkan update penuh ke item yang sudah ada.
// Kalau harga baru berbeda dari harga tersimpan, dikembalikan satu baris
// histori berisi harga LAMA dengan tanggal terakhir item diubah (bukan
// tanggal harga baru berlaku). Kalau harga sama, tidak ada baris histori.
// Gambar hanya diganti kalau imagePath tidak kosong.
func (p *PriceUpdate) ApplyUpdate(input PriceInput, imagePath string, now time.Time) *PriceHistory {
	var entry *PriceHistory
	if input.ItemPrice != p.ItemPrice {
		prevDate := p.Date
		if prevDate.IsZero() {
			prevDate = now
		}
		entry = &PriceHistory{
			PriceUpdateID: p.ID,
			Price:         p.ItemPrice,
			Date:          prevDate,
		}
	}

	p.ItemPrice = input.ItemPrice
	p.AvailableQuantity = input.AvailableQuantity
	p.SeasonalHighlights = input.SeasonalHighlights
	p.ItemType = input.ItemType
	p.Date = now

	if imagePath != "" {
		p.ItemImage = imagePath
	}

	return entry
}

// PatchFields update ringan: hanya harga, stok, dan flag musiman.
// Tidak menyentuh histori sama sekali.
func (p *PriceUpdate) PatchFields(price, quantity float64, seasonal bool) {
	p.ItemPrice = price
	p.AvailableQuantity = quantity
	p.SeasonalHighlights = seasonal
}
