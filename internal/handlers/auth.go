package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upcheck-dev/upcheck/internal/core"
	"github.com/upcheck-dev/upcheck/internal/middleware"
	"github.com/upcheck-dev/upcheck/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,min=1,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type UserResponse struct {
	ID        uint    `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
	}
}

type AuthHandler struct {
	auth         *core.AuthCore
	cookieDomain string
}

func NewAuthHandler(auth *core.AuthCore, cookieDomain string) *AuthHandler {
	return &AuthHandler{auth: auth, cookieDomain: cookieDomain}
}

func (h *AuthHandler) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var body RegisterRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidation(ctx, "Invalid request body")
		return
	}

	result, err := h.auth.Register(ctx.Request.Context(), core.RegisterInput{
		Email:    body.Email,
		Password: body.Password,
		FullName: body.FullName,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.setSessionCookie(ctx, result.Token, 60*60*24*7)
	respondSuccess(ctx, http.StatusCreated, gin.H{
		"token": result.Token,
		"user":  toUserResponse(result.User),
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidation(ctx, "Invalid request body")
		return
	}

	result, err := h.auth.Login(ctx.Request.Context(), core.LoginInput{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	h.setSessionCookie(ctx, result.Token, 60*60*24*7)
	respondSuccess(ctx, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  toUserResponse(result.User),
	})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	h.setSessionCookie(ctx, "", -1)
	respondSuccess(ctx, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	user, err := h.auth.Me(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) ChangePassword(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		respondError(ctx, errUnauthenticated())
		return
	}

	var body ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondValidation(ctx, "Invalid request body")
		return
	}

	if err := h.auth.ChangePassword(ctx.Request.Context(), userID, body.CurrentPassword, body.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}

	respondSuccess(ctx, http.StatusOK, gin.H{"message": "Password updated successfully"})
}
