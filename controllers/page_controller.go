package controllers

import (
	"html/template"
	"net/http"
	"strings"

	"hikebook/constants"
	"hikebook/errors"
	"hikebook/services"
	"hikebook/services/logger"
	"hikebook/views"

	"github.com/gin-gonic/gin"
)

const mountainName = "Gunung Gede Pangrango"

// PageController phục vụ các trang công khai của catalog
type PageController struct {
	catalog  *services.CatalogService
	registry *views.Registry
	log      logger.Logger
}

func NewPageController(catalog *services.CatalogService, registry *views.Registry, log logger.Logger) *PageController {
	return &PageController{catalog: catalog, registry: registry, log: log}
}

// sidebar render slot sidebar, lỗi thì bỏ trống sidebar
func (pc *PageController) sidebar(c *gin.Context) template.HTML {
	html, err := pc.registry.Render(c.Request.Context(), constants.AreaSidebar)
	if err != nil {
		pc.log.Error("Render sidebar lỗi: %v", err)
		return ""
	}
	return html
}

func (pc *PageController) Home(c *gin.Context) {
	packages, err := pc.catalog.ListPackages(c.Request.Context())
	if err != nil {
		pc.log.Error("Lấy danh sách paket lỗi: %v", err)
		renderServerError(c)
		return
	}

	renderPage(c, http.StatusOK, "home", "HikeBook - Booking Pendakian "+mountainName, gin.H{
		"mountainName": mountainName,
		"packages":     packages,
		"sidebarHtml":  pc.sidebar(c),
	})
}

func (pc *PageController) About(c *gin.Context) {
	renderPage(c, http.StatusOK, "about", "Tentang HikeBook", nil)
}

func (pc *PageController) TrailInfo(c *gin.Context) {
	packages, err := pc.catalog.ListPackages(c.Request.Context())
	if err != nil {
		pc.log.Error("Lấy danh sách paket lỗi: %v", err)
		renderServerError(c)
		return
	}

	renderPage(c, http.StatusOK, "trail-info", "Info Jalur Pendakian", gin.H{
		"packages":    packages,
		"sidebarHtml": pc.sidebar(c),
	})
}

func (pc *PageController) Basecamps(c *gin.Context) {
	basecamps, err := pc.catalog.ListBasecamps(c.Request.Context())
	if err != nil {
		pc.log.Error("Lấy danh sách basecamp lỗi: %v", err)
		renderServerError(c)
		return
	}

	renderPage(c, http.StatusOK, "basecamps", "Basecamp", gin.H{"basecamps": basecamps})
}

func (pc *PageController) PackageDetail(c *gin.Context) {
	pkg, err := pc.catalog.GetPackage(c.Request.Context(), c.Param("id"))
	if errors.HasCode(err, errors.ErrCodeNotFound) {
		c.String(http.StatusNotFound, "Paket tidak ditemukan")
		return
	}
	if err != nil {
		pc.log.Error("Đọc paket %s lỗi: %v", c.Param("id"), err)
		renderServerError(c)
		return
	}

	renderPage(c, http.StatusOK, "package-detail", pkg.Name, gin.H{"package": pkg})
}

func (pc *PageController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	results, err := pc.catalog.Search(c.Request.Context(), query)
	if err != nil {
		pc.log.Error("Tìm kiếm %q lỗi: %v", query, err)
		renderServerError(c)
		return
	}

	renderPage(c, http.StatusOK, "search", "Cari Jalur & Basecamp", gin.H{
		"query":   query,
		"results": results,
	})
}
