package controllers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"hikebook/config"
	"hikebook/models"
	"hikebook/routes"
	"hikebook/services"
	"hikebook/services/logger"
	"hikebook/views"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testApp struct {
	router  *gin.Engine
	db      *gorm.DB
	catalog *services.CatalogService
	tokens  *services.TokenIssuer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logger.NewNop()
	catalog := services.NewCatalogService(db, nil, log)
	require.NoError(t, catalog.Seed(context.Background(), false))

	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	registry := views.NewRegistry(renderer.Partials())
	views.RegisterDefaults(registry)

	cfg := &config.Config{DebugRoutes: true}
	tokens := services.NewTokenIssuer(testSecret)
	bookings := services.NewBookingService(db, catalog, log)

	router := config.InitApp(cfg, renderer)
	routes.SetupRoutes(router, routes.Dependencies{
		Config:   cfg,
		Log:      log,
		Catalog:  catalog,
		Auth:     services.NewAuthService(db, log),
		Bookings: bookings,
		Wizard:   services.NewWizardService(catalog, bookings, log),
		Sessions: services.NewSessionIssuer(services.NewMemorySessionStore(), false),
		Tokens:   tokens,
		Registry: registry,
	})

	return &testApp{router: router, db: db, catalog: catalog, tokens: tokens}
}

// packageID tìm id paket theo tiền tố tên, ví dụ "Jalur B"
func (a *testApp) packageID(t *testing.T, prefix string) string {
	t.Helper()
	packages, err := a.catalog.ListPackages(context.Background())
	require.NoError(t, err)
	for _, p := range packages {
		if strings.HasPrefix(p.Name, prefix) {
			return p.ID
		}
	}
	t.Fatalf("package %q not seeded", prefix)
	return ""
}

func (a *testApp) basecampID(t *testing.T, name string) string {
	t.Helper()
	basecamps, err := a.catalog.ListBasecamps(context.Background())
	require.NoError(t, err)
	for _, b := range basecamps {
		if b.Name == name {
			return b.ID
		}
	}
	t.Fatalf("basecamp %q not seeded", name)
	return ""
}

// browser giữ cookie giữa các request giống trình duyệt
type browser struct {
	t       *testing.T
	app     *testApp
	cookies map[string]*http.Cookie
}

func (a *testApp) browser(t *testing.T) *browser {
	return &browser{t: t, app: a, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	if form == nil {
		return b.send(method, path, "", nil)
	}
	return b.send(method, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

func (b *browser) send(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	b.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range b.cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}

	w := httptest.NewRecorder()
	b.app.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return b.do(http.MethodPost, path, form)
}

// postRaw gửi body JSON nguyên văn, kể cả JSON hỏng
func (b *browser) postRaw(path, raw string) *httptest.ResponseRecorder {
	return b.send(http.MethodPost, path, "application/json", strings.NewReader(raw))
}

func (b *browser) login(email, password string) {
	b.t.Helper()
	w := b.post("/login", url.Values{"email": {email}, "password": {password}})
	require.Equal(b.t, http.StatusFound, w.Code)
}

func location(w *httptest.ResponseRecorder) string {
	return w.Header().Get("Location")
}

// apiRequest gửi JSON tới API, token rỗng thì không gắn header Authorization
func (a *testApp) apiRequest(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (a *testApp) demoUser(t *testing.T) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, a.db.First(&user, "email = ?", services.DemoUserEmail).Error)
	return &user
}

func (a *testApp) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := a.tokens.Generate(user)
	require.NoError(t, err)
	return token
}

func expiredToken(t *testing.T, user *models.User) string {
	t.Helper()
	claims := &services.TokenClaims{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Add(-48 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-24 * time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}
