package controller

import (
	"errors"
	"net/http"

	"maths_point_backend/internal/config"
	"maths_point_backend/internal/model"
	"maths_point_backend/internal/service"
	"maths_point_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *service.AuthService
	Cfg     *config.Config
}

func NewAuthController(svc *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{Service: svc, Cfg: cfg}
}

type publicUser struct {
	ID       uint           `json:"id"`
	FullName string         `json:"fullname"`
	Email    string         `json:"email"`
	Role     model.UserRole `json:"role"`
}

func toPublicUser(u *model.User) publicUser {
	return publicUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func (c *AuthController) setAuthCookie(ctx *gin.Context, token string) {
	jwtCfg := c.Cfg.JWTSettings()
	ctx.SetSameSite(http.SameSiteLaxMode)
	maxAge := int(jwtCfg.ExpireTime.Seconds())
	ctx.SetCookie(jwtCfg.CookieName, token, maxAge, "/", "", c.Cfg.Server.Mode == "release", false)
}

type signUpReq struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// @Summary Create an account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body signUpReq true "account details"
// @Success 201 {object} util.Response
// @Router /api/user/signup [post]
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req signUpReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.FullName == "" || req.Email == "" || req.Password == "" {
		util.BadRequest(ctx, "Please provide fullname, email and password")
		return
	}

	user := &model.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.ValidRole(req.Role),
	}

	token, err := c.Service.Register(user)
	if errors.Is(err, util.ErrEmailRegistered) {
		util.Error(ctx, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	c.setAuthCookie(ctx, token)
	util.Created(ctx, "User created successfully", gin.H{"user": toPublicUser(user), "token": token})
}

type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// @Summary Sign in with a role-scoped account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body signInReq true "credentials"
// @Success 200 {object} util.Response
// @Router /api/user/login [post]
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req signInReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		util.BadRequest(ctx, "Please provide both email and password")
		return
	}

	token, user, err := c.Service.Login(req.Email, req.Password, model.ValidRole(req.Role))
	if errors.Is(err, util.ErrInvalidCredentials) {
		util.Error(ctx, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	c.setAuthCookie(ctx, token)
	util.Success(ctx, gin.H{"user": toPublicUser(user), "token": token})
}

// @Summary Clear the auth cookie
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/user/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.Cfg.JWTSettings().CookieName, "", -1, "/", "", c.Cfg.Server.Mode == "release", false)
	util.Success(ctx, gin.H{"message": "Logged out successfully"})
}

// @Summary Report whether the request carries a valid session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/user/check-auth [get]
func (c *AuthController) CheckAuth(ctx *gin.Context) {
	// Always 200; the frontend branches on the isAuthenticated flag.
	tokenString, err := ctx.Cookie(c.Cfg.JWTSettings().CookieName)
	if err != nil || tokenString == "" {
		ctx.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}

	user, err := c.Service.CheckToken(tokenString)
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"isAuthenticated": true,
		"user":            toPublicUser(user),
	})
}

type forgotPasswordReq struct {
	Email string `json:"email"`
}

// @Summary Request a password-reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param body body forgotPasswordReq true "account email"
// @Success 200 {object} util.Response
// @Router /api/user/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req forgotPasswordReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Email == "" {
		util.BadRequest(ctx, "Please provide an email")
		return
	}

	if err := c.Service.RequestPasswordReset(ctx.Request.Context(), req.Email); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Password reset link sent"})
}

type resetPasswordReq struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// @Summary Reset the password with a one-time token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body resetPasswordReq true "token and new password"
// @Success 200 {object} util.Response
// @Router /api/user/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req resetPasswordReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Please provide the reset token and a new password")
		return
	}

	if err := c.Service.ResetPassword(ctx.Request.Context(), req.Token, req.Password); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Password updated successfully"})
}
