package realtime

import (
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Event adalah pesan yang dikirim ke semua client websocket
// setiap ada perubahan harga.
type Event struct {
	EventType string      `json:"eventType"`
	Record    interface{} `json:"record"`
}

var (
	mu      sync.Mutex
	clients = make(map[*websocket.Conn]bool)
)

// UpgradeRequired menolak request non-websocket ke endpoint /ws.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler mendaftarkan koneksi client dan menahan sampai koneksi putus.
func Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		defer func() {
			mu.Lock()
			delete(clients, conn)
			mu.Unlock()
			conn.Close()
		}()

		// Read loop hanya untuk mendeteksi koneksi putus,
		// client tidak mengirim apa-apa ke server.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	})
}

// Broadcast mengirim event ke semua client yang terhubung.
// Fire-and-forget: client yang gagal ditulis langsung dilepas,
// tidak ada jaminan pengiriman maupun urutan.
func Broadcast(eventType string, record interface{}) {
	mu.Lock()
	defer mu.Unlock()

	event := Event{EventType: eventType, Record: record}
	for conn := range clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("❌ Gagal broadcast ke client: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}
