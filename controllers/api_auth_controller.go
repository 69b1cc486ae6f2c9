package controllers

import (
	"net/http"

	"hikebook/dto"
	"hikebook/middleware"
	"hikebook/response"
	"hikebook/services"
	"hikebook/services/logger"
	"hikebook/validator"

	"github.com/gin-gonic/gin"
)

// APIAuthController cấp bearer token cho JSON API
type APIAuthController struct {
	auth   *services.AuthService
	tokens *services.TokenIssuer
	log    logger.Logger
}

func NewAPIAuthController(auth *services.AuthService, tokens *services.TokenIssuer, log logger.Logger) *APIAuthController {
	return &APIAuthController{auth: auth, tokens: tokens, log: log}
}

func (ac *APIAuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Semua field wajib diisi kecuali telepon")
		return
	}

	user, err := ac.auth.Register(c.Request.Context(), input, false)
	if err != nil {
		c.Error(err).SetMeta("Terjadi kesalahan saat registrasi")
		return
	}

	token, err := ac.tokens.Generate(user)
	if err != nil {
		c.Error(err).SetMeta("Terjadi kesalahan saat registrasi")
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":  dto.NewUserResponse(user),
		"token": token,
	})
}

func (ac *APIAuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Email dan password harus diisi")
		return
	}
	if err := validator.ValidateLogin(&input); err != nil {
		c.Error(err)
		return
	}

	user, err := ac.auth.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.Error(err).SetMeta("Terjadi kesalahan saat login")
		return
	}

	token, err := ac.tokens.Generate(user)
	if err != nil {
		c.Error(err).SetMeta("Terjadi kesalahan saat login")
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":  dto.NewUserResponse(user),
		"token": token,
	})
}

// Me trả về thông tin user của token kèm danh sách booking
func (ac *APIAuthController) Me(c *gin.Context) {
	user, err := ac.auth.GetProfile(c.Request.Context(), middleware.Claims(c).ID)
	if err != nil {
		c.Error(err).SetMeta("Terjadi kesalahan saat mengambil data user")
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"user": dto.NewProfileResponse(user)})
}
