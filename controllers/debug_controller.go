package controllers

import (
	"net/http"

	"hikebook/constants"
	"hikebook/middleware"

	"github.com/gin-gonic/gin"
)

// DebugController chỉ bật khi DEBUG_ROUTES=true, không dùng cho production
type DebugController struct{}

func NewDebugController() *DebugController {
	return &DebugController{}
}

func (dc *DebugController) Session(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	cookie, _ := c.Cookie(constants.SessionCookieName)

	body := gin.H{
		"hasSession": sess != nil,
		"cookie":     cookie,
	}
	if sess != nil {
		body["sessionID"] = sess.ID
		body["user"] = sess.User
		body["draft"] = sess.Draft
		body["expiresAt"] = sess.ExpiresAt
	}
	c.JSON(http.StatusOK, body)
}

func (dc *DebugController) CheckAuth(c *gin.Context) {
	user := middleware.CurrentUser(c)
	message := "User is not logged in"
	if user != nil {
		message = "User is logged in"
	}
	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": user != nil,
		"user":            user,
		"message":         message,
	})
}

func (dc *DebugController) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Access granted! You are logged in.",
		"user":    middleware.CurrentUser(c),
	})
}

func (dc *DebugController) Public(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"message":    "This is a public route. Anyone can access.",
		"isLoggedIn": user != nil,
		"user":       user,
	})
}
