package config

import (
	"errors"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

var errRedisDisabled = errors.New("redis address is not configured")

// allowOrigin chỉ nhận origin nằm trong danh sách cấu hình
func allowOrigin(origins []string) func(string) bool {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			allowed[strings.ToLower(o)] = struct{}{}
		}
	}
	return func(origin string) bool {
		_, ok := allowed[strings.ToLower(origin)]
		return ok
	}
}

// InitApp tạo gin engine với CORS và bộ render HTML
func InitApp(cfg *Config, html render.HTMLRender) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = allowOrigin(cfg.CORSOrigins)
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if html != nil {
		router.HTMLRender = html
	}

	return router
}
