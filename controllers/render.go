package controllers

import (
	"net/http"

	"hikebook/middleware"

	"github.com/gin-gonic/gin"
)

const serverErrorMessage = "Terjadi kesalahan. Silakan coba lagi."

// pageData gắn các biến mà layout luôn cần: title, user, đường dẫn hiện tại,
// ô tìm kiếm và thông báo từ query string
func pageData(c *gin.Context, title string, extra gin.H) gin.H {
	data := gin.H{
		"title":       title,
		"user":        middleware.CurrentUser(c),
		"currentPath": c.Request.URL.Path,
		"query":       "",
		"sidebarHtml": "",
		"success":     c.Query("success"),
		"error":       c.Query("error"),
		"notice":      "",
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func renderPage(c *gin.Context, status int, name, title string, extra gin.H) {
	c.HTML(status, name, pageData(c, title, extra))
}

func renderError(c *gin.Context, status int, message string) {
	renderPage(c, status, "error", "Terjadi Kesalahan", gin.H{"message": message})
}

func renderServerError(c *gin.Context) {
	renderError(c, http.StatusInternalServerError, serverErrorMessage)
}
