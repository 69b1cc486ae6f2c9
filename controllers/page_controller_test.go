package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	w := b.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jalur A - Rute Klasik")
	assert.Contains(t, w.Body.String(), "Info Pendakian")

	for _, path := range []string{"/about", "/info-jalur", "/basecamps", "/login", "/register"} {
		w = b.get(path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w = b.get("/basecamps")
	assert.Contains(t, w.Body.String(), "Basecamp Pos 1")

	w = b.get("/package/" + app.packageID(t, "Jalur C"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rp 200.000")

	w = b.get("/package/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Paket tidak ditemukan", w.Body.String())
}

func TestPages_Search(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	w := b.get("/search?q=sunrise")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sunrise Track")

	w = b.get("/search")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOperationsEndpoints(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	w := b.get("/ping")
	assert.Equal(t, "pong", w.Body.String())

	w = b.get("/metrics")
	assert.Equal(t, http.StatusOK, w.Code)

	w = b.get("/static/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDebugRoutes(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	w := b.get("/test/public")
	body := decode(t, w)
	assert.Equal(t, "This is a public route. Anyone can access.", body["message"])
	assert.Equal(t, false, body["isLoggedIn"])

	w = b.get("/test/protected")
	assert.Equal(t, http.StatusFound, w.Code)

	w = b.get("/debug/session")
	assert.Equal(t, true, decode(t, w)["hasSession"])
}
