package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hossamaboassi/Busylancer/internal/delivery/http/response"
	"github.com/hossamaboassi/Busylancer/internal/domain"
	"github.com/hossamaboassi/Busylancer/pkg/apperror"
	"github.com/hossamaboassi/Busylancer/pkg/audit"
	"github.com/hossamaboassi/Busylancer/pkg/validation"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/register", loginLimiter, handler.Register)
		auth.POST("/login", loginLimiter, handler.Login)
		auth.POST("/forgot-password", loginLimiter, handler.ForgotPassword)
		auth.POST("/reset-password", loginLimiter, handler.ResetPassword)
		auth.POST("/verify-email", handler.VerifyEmail)
	}

	profile := protected.Group("/auth")
	{
		profile.GET("/profile", handler.GetProfile)
		profile.PUT("/profile", handler.UpdateProfile)
	}
}

type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	UserType  string  `json:"user_type" binding:"required,oneof=candidate employer"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Phone     *string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *AuthHandler) auditEvent(c *gin.Context, event string, fields ...zap.Field) {
	if a := audit.Default(); a != nil {
		reqID, _ := c.Get("RequestID")
		idStr, _ := reqID.(string)
		a.Event(event, c.ClientIP(), idStr, fields...)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		UserType:  req.UserType,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.auditEvent(c, audit.EventRegistered, zap.Int64("user_id", result.UserID))
	response.Success(c, http.StatusCreated, "User registered successfully", result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.auditEvent(c, audit.EventLoginFailed, zap.String("email", req.Email))
		c.Error(err)
		return
	}

	h.auditEvent(c, audit.EventLoginSuccess, zap.Int64("user_id", result.UserID))
	response.Success(c, http.StatusOK, "Login successful", result)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	if err := h.authUC.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}

	// Same response whether or not the account exists
	response.Success(c, http.StatusOK, "If the email exists, a reset link has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	if err := h.authUC.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		c.Error(err)
		return
	}

	h.auditEvent(c, audit.EventPasswordReset)
	response.Success(c, http.StatusOK, "Password reset successfully", nil)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatErrors(err)))
		return
	}

	if err := h.authUC.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Email verified successfully", nil)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	actor := currentActor(c)

	profile, err := h.authUC.GetProfile(c.Request.Context(), actor.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	actor := currentActor(c)
	if err := h.authUC.UpdateProfile(c.Request.Context(), actor, updates); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", nil)
}
