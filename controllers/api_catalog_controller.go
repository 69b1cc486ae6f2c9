package controllers

import (
	"net/http"

	"hikebook/response"
	"hikebook/services"

	"github.com/gin-gonic/gin"
)

// APICatalogController trả catalog công khai dạng JSON
type APICatalogController struct {
	catalog *services.CatalogService
}

func NewAPICatalogController(catalog *services.CatalogService) *APICatalogController {
	return &APICatalogController{catalog: catalog}
}

func (cc *APICatalogController) Packages(c *gin.Context) {
	packages, err := cc.catalog.ListPackages(c.Request.Context())
	if err != nil {
		c.Error(err).SetMeta("Terjadi kesalahan saat mengambil data paket")
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"count": len(packages), "packages": packages})
}

func (cc *APICatalogController) Basecamps(c *gin.Context) {
	basecamps, err := cc.catalog.ListBasecamps(c.Request.Context())
	if err != nil {
		c.Error(err).SetMeta("Terjadi kesalahan saat mengambil data basecamp")
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"count": len(basecamps), "basecamps": basecamps})
}
