package views_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"hikebook/dto"
	"hikebook/models"
	"hikebook/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseData(title string) map[string]any {
	return map[string]any{
		"title":       title,
		"user":        nil,
		"currentPath": "/",
		"query":       "",
		"sidebarHtml": "",
	}
}

func TestNewRenderer_ParsesAllPages(t *testing.T) {
	r, err := views.NewRenderer()
	require.NoError(t, err)
	assert.NotNil(t, r.Partials().Lookup("partials/sidebar-info"))
	assert.NotNil(t, r.Partials().Lookup("layouts/main"))
}

func TestRenderer_Home(t *testing.T) {
	r, err := views.NewRenderer()
	require.NoError(t, err)

	data := baseData("HikeBook")
	data["mountainName"] = "Gunung Gede Pangrango"
	data["packages"] = []models.HikingPackage{{ID: "p1", Name: "Jalur A", Price: 150000, Duration: "2 hari"}}
	data["success"] = "Registrasi berhasil!"

	w := httptest.NewRecorder()
	require.NoError(t, r.Instance("home", data).Render(w))

	body := w.Body.String()
	assert.Contains(t, body, "Jalur A")
	assert.Contains(t, body, "Rp 150.000")
	assert.Contains(t, body, "Registrasi berhasil!")
	assert.Contains(t, body, `class="sidebar"`)
}

func TestRenderer_Success(t *testing.T) {
	r, err := views.NewRenderer()
	require.NoError(t, err)

	method := "transfer"
	booking := &models.Booking{
		ID:             "b1",
		BookingNumber:  "BK1700000000000123",
		CustomerName:   "Budi",
		HikingDate:     time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC),
		NumberOfPeople: 2,
		Participants:   []byte(`[{"name":"Budi","age":30},{"name":"Sari"}]`),
		TotalPrice:     300000,
		PaymentMethod:  &method,
		BookingStatus:  "pending",
		PaymentStatus:  "pending",
		HikingPackage:  &models.HikingPackage{Name: "Jalur B"},
	}
	data := baseData("Booking Berhasil")
	data["booking"] = dto.NewBookingView(booking)

	w := httptest.NewRecorder()
	require.NoError(t, r.Instance("booking/success", data).Render(w))

	body := w.Body.String()
	assert.Contains(t, body, "BK1700000000000123")
	assert.Contains(t, body, "Rp 300.000")
	assert.Contains(t, body, "Sari")
	assert.Contains(t, body, "Booking Berhasil!")
}

func TestRenderer_WizardSteps(t *testing.T) {
	r, err := views.NewRenderer()
	require.NoError(t, err)

	pkg := &models.HikingPackage{ID: "p1", Name: "Jalur A", Price: 150000}
	data := baseData("Data Diri")
	data["step"] = 1
	data["package"] = pkg
	data["form"] = dto.PersonalInfoInput{CustomerName: "Budi"}

	w := httptest.NewRecorder()
	require.NoError(t, r.Instance("booking/step1", data).Render(w))
	assert.Contains(t, w.Body.String(), `value="Budi"`)

	data = baseData("Review")
	data["step"] = 3
	data["summary"] = &dto.DraftSummary{
		Draft:               &models.BookingDraft{PackageName: "Jalur A", NumberOfPeople: 2},
		Package:             pkg,
		TotalPrice:          300000,
		TotalPriceFormatted: "Rp 300.000",
	}
	w = httptest.NewRecorder()
	require.NoError(t, r.Instance("booking/review", data).Render(w))
	assert.Contains(t, w.Body.String(), "Rp 300.000")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := views.NewRenderer()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	assert.Error(t, r.Instance("nope", nil).Render(w))
}

func TestStaticFS(t *testing.T) {
	f, err := views.StaticFS().Open("style.css")
	require.NoError(t, err)
	defer f.Close()
}
