package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"hikebook/models"
	"hikebook/utils"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	layoutMain        = "layouts/main"
	layoutWithSidebar = "layouts/main-with-sidebar"
	layoutAuth        = "layouts/auth"
)

type page struct {
	file   string
	layout string
}

// các trang và layout tương ứng
var pages = map[string]page{
	"home":            {"pages/home.html", layoutWithSidebar},
	"about":           {"pages/about.html", layoutMain},
	"trail-info":      {"pages/trail-info.html", layoutWithSidebar},
	"basecamps":       {"pages/basecamps.html", layoutMain},
	"package-detail":  {"pages/package-detail.html", layoutMain},
	"search":          {"pages/search.html", layoutMain},
	"my-bookings":     {"pages/my-bookings.html", layoutMain},
	"edit-booking":    {"pages/edit-booking.html", layoutMain},
	"error":           {"pages/error.html", layoutMain},
	"login":           {"pages/login.html", layoutAuth},
	"register":        {"pages/register.html", layoutAuth},
	"booking/step1":   {"pages/booking/step1.html", layoutMain},
	"booking/step2":   {"pages/booking/step2.html", layoutMain},
	"booking/review":  {"pages/booking/review.html", layoutMain},
	"booking/payment": {"pages/booking/payment.html", layoutMain},
	"booking/success": {"pages/booking/success.html", layoutMain},
}

// Funcs là các hàm dùng trong template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"rupiah": utils.FormatRupiah,
		"dateID": func(t time.Time) string { return utils.FormatDateID(t, true) },
		"dateShort": func(t time.Time) string {
			return utils.FormatDateID(t, false)
		},
		"add": func(a, b int) int { return a + b },
		"facilities": func(b models.Basecamp) []string {
			return b.FacilityList()
		},
		"hasPrefix": strings.HasPrefix,
		"year":      func() int { return time.Now().Year() },
	}
}

// Renderer hiện thực render.HTMLRender của gin trên các template nhúng.
// Mỗi trang có một bộ template riêng gồm layout, partial và nội dung trang.
type Renderer struct {
	templates map[string]*template.Template
	partials  *template.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New("hikebook").Funcs(Funcs()).ParseFS(templateFS,
		"templates/layouts/*.html",
		"templates/partials/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	r := &Renderer{
		templates: make(map[string]*template.Template, len(pages)),
		partials:  base,
	}
	for name, p := range pages {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+p.file); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.templates[name] = clone
	}
	return r, nil
}

// Instance trả về render cho trang name
func (r *Renderer) Instance(name string, data any) render.Render {
	p, ok := pages[name]
	if !ok {
		return missingTemplate(name)
	}
	return render.HTML{
		Template: r.templates[name],
		Name:     p.layout,
		Data:     data,
	}
}

// Partials là bộ template dùng chung cho registry
func (r *Renderer) Partials() *template.Template {
	return r.partials
}

type missingTemplate string

func (m missingTemplate) Render(w http.ResponseWriter) error {
	return fmt.Errorf("html template %q not registered", string(m))
}

func (m missingTemplate) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

// StaticFS trả về thư mục static nhúng trong binary
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
