package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/users"
)

// Handler exposes the by-email profile lookups and the experience CRUD.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user/:email/:field", h.GetField)
	rg.POST("/user/:email/experience", h.AddExperience)
	rg.PUT("/user/:email/experience/:id", h.UpdateExperience)
	rg.DELETE("/user/:email/experience/:id", h.DeleteExperience)
}

func (h *Handler) GetField(c *gin.Context) {
	email := c.Param("email")
	field := c.Param("field")
	skill := c.Query("skill")

	value, err := h.Service.FieldByEmail(c.Request.Context(), email, field, skill)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownField):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "could not load field", nil)
		}
		return
	}

	key := field
	if field == "skills" && skill != "" {
		key = "proficiency_level"
	}
	respond.OK(c, gin.H{key: value})
}

func (h *Handler) AddExperience(c *gin.Context) {
	exp, err := h.Service.AddExperience(c.Request.Context(), c.Param("email"), experienceInput(c))
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		case errors.Is(err, users.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "could not add experience", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, exp)
}

func (h *Handler) UpdateExperience(c *gin.Context) {
	exp, err := h.Service.UpdateExperience(c.Request.Context(), c.Param("email"), c.Param("id"), experienceInput(c))
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Experience not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "could not update experience", nil)
		}
		return
	}
	respond.OK(c, exp)
}

func (h *Handler) DeleteExperience(c *gin.Context) {
	err := h.Service.DeleteExperience(c.Request.Context(), c.Param("email"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Experience not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "could not delete experience", nil)
		}
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

func experienceInput(c *gin.Context) ExperienceInput {
	// Accept JSON bodies as well as HTML form posts.
	if c.ContentType() == "application/json" {
		var body struct {
			Company     string `json:"companyName"`
			Role        string `json:"role"`
			StartDate   string `json:"startDate"`
			EndDate     string `json:"endDate"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			return ExperienceInput{
				Company:     body.Company,
				Role:        body.Role,
				StartDate:   body.StartDate,
				EndDate:     body.EndDate,
				Description: body.Description,
			}
		}
		return ExperienceInput{}
	}
	return ExperienceInput{
		Company:     c.PostForm("companyName"),
		Role:        c.PostForm("role"),
		StartDate:   c.PostForm("startDate"),
		EndDate:     c.PostForm("endDate"),
		Description: c.PostForm("description"),
	}
}
