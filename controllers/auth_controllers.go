package controllers

import (
	"net/http"
	"net/url"

	"farmpro/config"
	"farmpro/dto"
	"farmpro/middleware"
	"farmpro/response"
	"farmpro/services"
	"farmpro/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AuthController struct {
	DB    *gorm.DB
	Redis *redis.Client
	Auth  *services.AuthService
}

func NewAuthController(db *gorm.DB, redisCli *redis.Client) *AuthController {
	return &AuthController{
		DB:    db,
		Redis: redisCli,
		Auth:  services.NewAuthService(db),
	}
}

// AuthGoogle handles federated sign-in: verifies the Google ID token, links
// or creates the local user and issues a session token.
func (ct *AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "tokenId is required")
		return
	}

	user, err := ct.Auth.SignInWithGoogle(c.Request.Context(), input.TokenID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	accessToken, err := services.GenerateSessionToken(user)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		User:        services.SessionUserOf(user),
		AccessToken: accessToken,
	})
}

// EmailSignIn starts passwordless sign-in by mailing a single-use link.
func (ct *AuthController) EmailSignIn(c *gin.Context) {
	var input dto.EmailSignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "email is required")
		return
	}

	if err := validator.ValidateEmail(input.Email); err != nil {
		response.FromError(c, err)
		return
	}

	token, err := services.IssueLoginToken(c.Request.Context(), ct.Redis, input.Email)
	if err != nil {
		response.FromError(c, err)
		return
	}

	signInURL := config.GetEnvDefault("APP_URL", "http://localhost:8080") +
		"/api/auth/verify?token=" + url.QueryEscape(token)

	if err := services.SendSignInEmail(input.Email, signInURL); err != nil {
		// delivery failure is fatal to this sign-in attempt
		response.Error(c, http.StatusInternalServerError, "Failed to send sign-in email")
		return
	}

	response.Message(c, "Sign-in link sent")
}

// VerifyEmail consumes the single-use link, resolves the user and hands the
// session token to the login page in the URL fragment.
func (ct *AuthController) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.BadRequest(c, "token is required")
		return
	}

	email, err := services.ConsumeLoginToken(c.Request.Context(), ct.Redis, token)
	if err != nil {
		response.FromError(c, err)
		return
	}

	user, err := ct.Auth.FindOrCreateByEmail(email)
	if err != nil {
		response.FromError(c, err)
		return
	}

	accessToken, err := services.GenerateSessionToken(user)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/login#token="+url.QueryEscape(accessToken))
}

// GetSession returns a freshly refreshed identity snapshot and token.
func (ct *AuthController) GetSession(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	session, err := services.RefreshSession(ct.DB, claims.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (ct *AuthController) Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Message(c, "Signed out")
}
