package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/users"
)

// Handler exposes the signup, login and logout endpoints. Browser flows
// answer with redirects, API clients get the JSON error envelope.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// RegisterPublic mounts the routes reachable without a session.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.GET("/user-count", h.UserCount)
}

// RegisterAuthed mounts the routes that require a session.
func (h *Handler) RegisterAuthed(rg *gin.RouterGroup) {
	rg.GET("/logout", h.Logout)
}

func (h *Handler) Signup(c *gin.Context) {
	in := users.SignupInput{
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Username:  c.PostForm("username"),
		Email:     c.PostForm("email"),
		Password:  c.PostForm("password"),
		Phone:     c.PostForm("phone"),
	}

	user, err := h.Service.Users.Signup(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, users.ErrEmailNotAllowed):
			respond.Error(c, http.StatusBadRequest, "validation_error", "email domain not allowed", nil)
		case errors.Is(err, users.ErrEmailTaken):
			respond.Error(c, http.StatusBadRequest, "validation_error", "email already registered", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "could not create user", nil)
		}
		return
	}

	telemetry.Info("user.signup", map[string]any{
		"user_id":    user.ID,
		"request_id": middleware.RequestIDFromContext(c),
	})
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, err := h.Service.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "invalid email or password", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not open session", nil)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/show_resume")
}

func (h *Handler) Logout(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if err := h.Service.Logout(c.Request.Context(), userID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not close session", nil)
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) UserCount(c *gin.Context) {
	count, err := h.Service.Users.Count(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not count users", nil)
		return
	}
	respond.OK(c, gin.H{"userCount": count})
}
