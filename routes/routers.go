package routes

import (
	"net/http"

	"hikebook/config"
	"hikebook/controllers"
	"hikebook/metrics"
	"hikebook/middleware"
	"hikebook/services"
	"hikebook/services/logger"
	"hikebook/views"

	"github.com/gin-gonic/gin"
)

// Dependencies gom các service mà router cần
type Dependencies struct {
	Config   *config.Config
	Log      *logger.DefaultLogger
	Catalog  *services.CatalogService
	Auth     *services.AuthService
	Bookings *services.BookingService
	Wizard   *services.WizardService
	Sessions *services.SessionIssuer
	Tokens   *services.TokenIssuer
	Registry *views.Registry
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.Use(middleware.RequestLogger(deps.Log.Zerolog()), middleware.Metrics())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.StaticFS("/static", views.StaticFS())

	setupPages(router, deps)
	setupAPI(router, deps)

	if deps.Config.DebugRoutes {
		setupDebug(router, deps)
	}
}

// setupPages đăng ký các trang HTML, tất cả đều dùng session cookie
func setupPages(router *gin.Engine, deps Dependencies) {
	pageController := controllers.NewPageController(deps.Catalog, deps.Registry, deps.Log)
	wizardController := controllers.NewWizardController(deps.Wizard, deps.Bookings, deps.Log)
	accountController := controllers.NewAccountController(deps.Auth, deps.Bookings, deps.Sessions, deps.Log)

	web := router.Group("/")
	web.Use(middleware.Sessions(deps.Sessions, deps.Log))

	web.GET("/", pageController.Home)
	web.GET("/about", pageController.About)
	web.GET("/info-jalur", pageController.TrailInfo)
	web.GET("/basecamps", pageController.Basecamps)
	web.GET("/package/:id", pageController.PackageDetail)
	web.GET("/search", pageController.Search)

	web.GET("/booking/step1", wizardController.Step1)
	web.GET("/booking/step1/:packageId", wizardController.Start)
	web.POST("/booking/step1", wizardController.SubmitStep1)
	web.POST("/booking/step1/:packageId", wizardController.SubmitStep1)
	web.GET("/booking/step2", wizardController.Step2)
	web.POST("/booking/step2", wizardController.SubmitStep2)
	web.GET("/booking/review", wizardController.Review)
	web.POST("/booking/checkout", wizardController.Checkout)
	web.GET("/booking/payment", wizardController.Payment)
	web.POST("/booking/process-payment", wizardController.ProcessPayment)
	web.GET("/booking/success/:bookingId", wizardController.Success)
	web.GET("/booking/restart", wizardController.Restart)

	guest := web.Group("/")
	guest.Use(middleware.RequireGuest())
	guest.GET("/login", accountController.LoginPage)
	guest.POST("/login", accountController.Login)
	guest.GET("/register", accountController.RegisterPage)
	guest.POST("/register", accountController.Register)

	web.GET("/logout", accountController.Logout)
	web.POST("/logout", accountController.Logout)

	account := web.Group("/")
	account.Use(middleware.RequireLogin())
	account.GET("/my-bookings", accountController.MyBookings)
	account.GET("/booking/edit/:id", accountController.EditBooking)
	account.POST("/booking/update/:id", accountController.UpdateBooking)
	account.POST("/booking/delete/:id", accountController.DeleteBooking)
}

// setupAPI đăng ký JSON API, xác thực bằng bearer token và không đụng session
func setupAPI(router *gin.Engine, deps Dependencies) {
	authController := controllers.NewAPIAuthController(deps.Auth, deps.Tokens, deps.Log)
	bookingController := controllers.NewAPIBookingController(deps.Bookings, deps.Log)
	catalogController := controllers.NewAPICatalogController(deps.Catalog)

	api := router.Group("/api")
	api.Use(middleware.ErrorHandler(deps.Log))

	api.GET("/packages", catalogController.Packages)
	api.GET("/basecamps", catalogController.Basecamps)

	// giới hạn tần suất cho các endpoint nhận mật khẩu
	limit := middleware.RateLimit(deps.Config.API.RateLimitRPS, deps.Config.API.RateLimitBurst)

	auth := api.Group("/auth")
	auth.POST("/register", limit, authController.Register)
	auth.POST("/login", limit, authController.Login)
	auth.GET("/me", middleware.TokenAuth(deps.Tokens), authController.Me)

	bookings := api.Group("/bookings")
	bookings.Use(middleware.TokenAuth(deps.Tokens))
	bookings.GET("", bookingController.List)
	bookings.GET("/:id", bookingController.Get)
	bookings.POST("", bookingController.Create)
	bookings.PUT("/:id", bookingController.Update)
	bookings.DELETE("/:id", bookingController.Delete)
}

func setupDebug(router *gin.Engine, deps Dependencies) {
	debugController := controllers.NewDebugController()

	debug := router.Group("/")
	debug.Use(middleware.Sessions(deps.Sessions, deps.Log))
	debug.GET("/debug/session", debugController.Session)
	debug.GET("/debug/check-auth", debugController.CheckAuth)
	debug.GET("/test/public", debugController.Public)
	debug.GET("/test/protected", middleware.RequireLogin(), debugController.Protected)
}
