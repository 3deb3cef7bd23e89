package v1

import (
	"net/http"

	"reelhire-backend/config"
	"reelhire-backend/internal/delivery/http/response"
	"reelhire-backend/internal/domain"
	"reelhire-backend/pkg/apperror"
	"reelhire-backend/pkg/auth"
	"reelhire-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	tokens *auth.TokenManager
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens *auth.TokenManager, cfg *config.Config, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC: authUC,
		tokens: tokens,
		config: cfg,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", loginLimiter, handler.Login)
		publicAuth.POST("/logout", handler.Logout)
	}
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,valid_username"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"full_name" binding:"required,valid_name"`
	UserType    string `json:"user_type" binding:"required,oneof=job_seeker employer"`
	CompanyName string `json:"company_name" binding:"omitempty,no_emoji,max=120"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account as a job seeker or an employer. Sets the session cookie on success.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		UserType: req.UserType,
	}
	if req.CompanyName != "" {
		user.CompanyName = &req.CompanyName
	}

	created, err := h.authUC.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.setSession(c, created); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{"user": created})
}

// Login godoc
// @Summary      User Login
// @Description  Login with username and password. Sets the session cookie on success.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindErrorMessage(err)))
		return
	}

	user, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.setSession(c, user); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{"user": user})
}

// Logout godoc
// @Summary      User Logout
// @Description  Clear the session cookie. Always succeeds.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", h.config.CookieSecure, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) setSession(c *gin.Context, user *domain.User) error {
	token, err := h.tokens.Issue(auth.Session{
		UserID:   user.ID,
		Username: user.Username,
		UserType: user.UserType,
	})
	if err != nil {
		return apperror.Internal(err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, token, int(h.tokens.TTL().Seconds()), "/", "", h.config.CookieSecure, true)
	return nil
}

// bindErrorMessage turns validator errors into user-facing field messages
// and leaves other binding errors generic.
func bindErrorMessage(err error) string {
	if msgs := validation.FormatValidationErrors(err); len(msgs) > 0 {
		return msgs[0]
	}
	return "Invalid request body"
}
