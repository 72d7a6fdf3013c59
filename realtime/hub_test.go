package realtime_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainRequestRequiresUpgrade(t *testing.T) {
	app := fiber.New()
	app.Use("/ws", realtime.UpgradeRequired)
	app.Get("/ws", realtime.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/ws", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func TestBroadcastWithoutClientsIsNoop(t *testing.T) {
	// Fire-and-forget: tanpa client terhubung tidak boleh panic/block
	realtime.Broadcast("priceUpdate", map[string]interface{}{"item_name": "onion"})
	realtime.Broadcast("priceDelete", nil)
}
