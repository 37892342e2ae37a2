package comments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler exposes the reviewer dashboard and comment CRUD. Every route
// sits behind the reviewer role.
type Handler struct {
	Service *Service
	Resumes resumes.Repo
}

func NewHandler(service *Service, resumeRepo resumes.Repo) *Handler {
	return &Handler{Service: service, Resumes: resumeRepo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	reviewer := rg.Group("/", middleware.RequireReviewer())
	reviewer.GET("/reviewer/resumes", h.Dashboard)
	reviewer.POST("/resumes/:id/comments", h.Add)
	reviewer.PUT("/comments/:id", h.Update)
	reviewer.DELETE("/comments/:id", h.Delete)
}

type dashboardEntry struct {
	Resume   resumes.Resume `json:"resume"`
	Comments []Comment      `json:"comments"`
}

func (h *Handler) Dashboard(c *gin.Context) {
	list, err := h.Resumes.ListAll(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not load resumes", nil)
		return
	}

	entries := make([]dashboardEntry, 0, len(list))
	for _, res := range list {
		comments, err := h.Service.ListByResume(c.Request.Context(), res.ID)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "storage_error", "could not load comments", nil)
			return
		}
		if comments == nil {
			comments = []Comment{}
		}
		entries = append(entries, dashboardEntry{Resume: res, Comments: comments})
	}
	respond.OK(c, gin.H{"resumes": entries})
}

func (h *Handler) Add(c *gin.Context) {
	comment, err := h.Service.Add(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), commentText(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyComment):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "could not add comment", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, comment)
}

func (h *Handler) Update(c *gin.Context) {
	comment, err := h.Service.Update(c.Request.Context(), c.Param("id"), commentText(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyComment):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Comment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "could not update comment", nil)
		}
		return
	}
	respond.OK(c, comment)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Comment not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not delete comment", nil)
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

func commentText(c *gin.Context) string {
	if c.ContentType() == "application/json" {
		var body struct {
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			return body.Comment
		}
		return ""
	}
	return c.PostForm("comment")
}
