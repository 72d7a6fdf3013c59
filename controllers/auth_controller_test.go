package controllers_test

import (
	"net/http"
	"testing"

	"backend/database"
	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupBazaarUniqueness(t *testing.T) {
	app := setupTestApp(t)
	_ = signup(t, app, "admin1", "B1")

	status, body := doJSON(t, app, "POST", "/api/signup", "", map[string]string{
		"username":    "admin2",
		"password":    "rahasia123",
		"bazaar_name": "B1",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])
}

func TestLogin(t *testing.T) {
	app := setupTestApp(t)
	_ = signup(t, app, "admin1", "B1")

	t.Run("valid credentials return a token", func(t *testing.T) {
		status, body := doJSON(t, app, "POST", "/api/login", "", map[string]string{
			"username": "admin1",
			"password": "rahasia123",
		})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]interface{})
		assert.NotEmpty(t, data["token"])
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		status, body := doJSON(t, app, "POST", "/api/login", "", map[string]string{
			"username": "admin1",
			"password": "salah",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, false, body["success"])
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		status, _ := doJSON(t, app, "POST", "/api/login", "", map[string]string{
			"username": "nobody",
			"password": "rahasia123",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestDeleteAccountCascades(t *testing.T) {
	app := setupTestApp(t)
	token1 := signup(t, app, "admin1", "B1")
	token2 := signup(t, app, "admin2", "B2")

	_, _ = postItem(t, app, token1, itemFields("B1", "Onion", 20))
	_, _ = postItem(t, app, token1, itemFields("B1", "Mango", 50))
	_, _ = postItem(t, app, token2, itemFields("B2", "Onion", 18))

	status, body := doJSON(t, app, "DELETE", "/api/deleteAccount", token1, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	// Semua item admin1 hilang, item admin2 tetap ada
	var items []models.PriceUpdate
	require.NoError(t, database.DB.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "B2", items[0].BazaarName)

	var histories int64
	database.DB.Model(&models.PriceHistory{}).Count(&histories)
	assert.Equal(t, int64(1), histories)

	// Akunnya benar-benar hilang
	status, _ = doJSON(t, app, "POST", "/api/login", "", map[string]string{
		"username": "admin1",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}
