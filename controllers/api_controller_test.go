package controllers_test

import (
	"net/http"
	"testing"

	"hikebook/models"
	"hikebook/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIAuth_RegisterLoginMe(t *testing.T) {
	app := newTestApp(t)

	w := app.apiRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Rina", "email": "Rina@Example.com", "password": "rahasia",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "rina@example.com", body["user"].(map[string]any)["email"])

	w = app.apiRequest(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "rina@example.com", "password": "rahasia",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Login successful", body["message"])
	token := body["token"].(string)

	w = app.apiRequest(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "Rina", user["name"])
	assert.Empty(t, user["bookings"])
}

func TestAPIAuth_Errors(t *testing.T) {
	app := newTestApp(t)

	t.Run("DuplicateEmail", func(t *testing.T) {
		var before int64
		app.db.Model(&models.User{}).Count(&before)

		w := app.apiRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
			"name": "Demo", "email": "DEMO@hikebook.com", "password": "rahasia",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Email sudah terdaftar", decode(t, w)["message"])

		var after int64
		app.db.Model(&models.User{}).Count(&after)
		assert.Equal(t, before, after)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		w := app.apiRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
			"name": "X", "email": "x@example.com", "password": "123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Password minimal 6 karakter", decode(t, w)["message"])
	})

	t.Run("WrongPassword", func(t *testing.T) {
		w := app.apiRequest(t, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email": services.DemoUserEmail, "password": "salah",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Email atau password salah", decode(t, w)["message"])
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := app.apiRequest(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAPIBookings_CRUD(t *testing.T) {
	app := newTestApp(t)
	demo := app.demoUser(t)
	token := app.tokenFor(t, demo)

	w := app.apiRequest(t, http.MethodPost, "/api/bookings", token, map[string]any{
		"hikingPackageId": app.packageID(t, "Jalur B"),
		"basecampId":      app.basecampID(t, "Basecamp Pos 1"),
		"hikingDate":      "2025-08-17",
		"numberOfPeople":  "2",
		"participants":    `[{"name":"Budi","age":30},"Sari"]`,
		"paymentMethod":   "transfer",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Booking created successfully", body["message"])
	created := body["booking"].(map[string]any)
	assert.Equal(t, float64(340000), created["totalPrice"])
	assert.Equal(t, demo.Email, created["customerEmail"])
	id := created["id"].(string)

	w = app.apiRequest(t, http.MethodGet, "/api/bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, float64(1), body["count"])

	w = app.apiRequest(t, http.MethodGet, "/api/bookings/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking retrieved successfully", decode(t, w)["message"])

	w = app.apiRequest(t, http.MethodPut, "/api/bookings/"+id, token, map[string]any{"notes": "Vegetarian"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)["booking"].(map[string]any)
	assert.Equal(t, "Vegetarian", updated["notes"])
	assert.Equal(t, float64(2), updated["numberOfPeople"])

	w = app.apiRequest(t, http.MethodPut, "/api/bookings/"+id, token, map[string]any{
		"participants": nil, "hikingDate": "",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated = decode(t, w)["booking"].(map[string]any)
	assert.Len(t, updated["participants"], 2)

	w = app.apiRequest(t, http.MethodDelete, "/api/bookings/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Booking cancelled successfully", body["message"])
	assert.Equal(t, created["bookingNumber"], body["bookingNumber"])

	w = app.apiRequest(t, http.MethodGet, "/api/bookings/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decode(t, w)["error"])
}

func TestAPIBookings_Validation(t *testing.T) {
	app := newTestApp(t)
	token := app.tokenFor(t, app.demoUser(t))

	w := app.apiRequest(t, http.MethodPost, "/api/bookings", token, map[string]any{
		"hikingPackageId": app.packageID(t, "Jalur A"),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Tanggal hiking dan jumlah peserta harus diisi", decode(t, w)["message"])

	w = app.apiRequest(t, http.MethodPost, "/api/bookings", token, map[string]any{
		"hikingPackageId": "missing",
		"hikingDate":      "2025-08-17",
		"numberOfPeople":  1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.apiRequest(t, http.MethodPost, "/api/bookings", token, map[string]any{
		"hikingPackageId": app.packageID(t, "Jalur A"),
		"hikingDate":      "2025-08-17",
		"numberOfPeople":  1,
		"participants":    "not json",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.apiRequest(t, http.MethodPost, "/api/bookings", token, map[string]any{
		"hikingPackageId": app.packageID(t, "Jalur B"),
		"hikingDate":      "2025-08-17",
		"numberOfPeople":  "61489146912365173",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Jumlah peserta tidak valid", decode(t, w)["message"])
}

func TestAPIBookings_OwnerScoped(t *testing.T) {
	app := newTestApp(t)
	demoToken := app.tokenFor(t, app.demoUser(t))

	w := app.apiRequest(t, http.MethodPost, "/api/bookings", demoToken, map[string]any{
		"hikingPackageId": app.packageID(t, "Jalur A"),
		"hikingDate":      "2025-08-17",
		"numberOfPeople":  1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["booking"].(map[string]any)["id"].(string)

	w = app.apiRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Other", "email": "other@example.com", "password": "rahasia",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	otherToken := decode(t, w)["token"].(string)

	w = app.apiRequest(t, http.MethodGet, "/api/bookings/"+id, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = app.apiRequest(t, http.MethodDelete, "/api/bookings/"+id, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking tidak ditemukan atau bukan milik Anda", decode(t, w)["message"])

	w = app.apiRequest(t, http.MethodGet, "/api/bookings", otherToken, nil)
	assert.Equal(t, float64(0), decode(t, w)["count"])
}

func TestAPI_TokenGuards(t *testing.T) {
	app := newTestApp(t)
	expired := expiredToken(t, app.demoUser(t))

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/bookings/x"},
		{http.MethodPost, "/api/bookings"},
		{http.MethodPut, "/api/bookings/x"},
		{http.MethodDelete, "/api/bookings/x"},
	}

	for _, ep := range endpoints {
		w := app.apiRequest(t, ep.method, ep.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, ep.path)
		assert.Equal(t, "Access denied. No token provided.", decode(t, w)["error"])

		w = app.apiRequest(t, ep.method, ep.path, expired, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, ep.path)
		assert.Equal(t, "Token tidak valid atau sudah expired", decode(t, w)["message"])

		w = app.apiRequest(t, ep.method, ep.path, "garbage", nil)
		assert.Equal(t, http.StatusForbidden, w.Code, ep.path)
	}
}

func TestAPICatalog(t *testing.T) {
	app := newTestApp(t)

	w := app.apiRequest(t, http.MethodGet, "/api/packages", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), decode(t, w)["count"])

	w = app.apiRequest(t, http.MethodGet, "/api/basecamps", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), decode(t, w)["count"])
}
