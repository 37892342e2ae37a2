package resumes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/augment"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/users"
)

// CommentView is the reviewer feedback attached to a resume on the
// dashboard.
type CommentView struct {
	ID        string    `json:"id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentSource supplies reviewer comments for the dashboard view.
type CommentSource interface {
	CommentsForResume(ctx context.Context, resumeID string) ([]CommentView, error)
}

// Handler exposes resume generation, lookup, download and deletion. All
// routes require a session.
type Handler struct {
	Service  *Service
	Comments CommentSource
}

func NewHandler(service *Service, comments CommentSource) *Handler {
	return &Handler{Service: service, Comments: comments}
}

// RegisterPublic mounts the email-keyed read route, open like the rest
// of the lookup family.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/resume/:email", h.ByEmail)
}

// RegisterAuthed mounts the routes that act on the session owner's
// resumes.
func (h *Handler) RegisterAuthed(rg *gin.RouterGroup) {
	rg.POST("/generate_resume", h.Generate)
	rg.GET("/download_resume", h.Download)
	rg.POST("/delete_resume/:id", h.Delete)
	rg.GET("/show_resume", h.Show)
	rg.GET("/edit_resume/:id", h.Edit)
	rg.POST("/update_generated_resume/:id", h.Update)
}

func (h *Handler) Generate(c *gin.Context) {
	in := GenerateInput{
		Degrees:         c.PostFormArray("degree"),
		Institutions:    c.PostFormArray("institution"),
		EduStartDates:   c.PostFormArray("startDate"),
		EduEndDates:     c.PostFormArray("endDate"),
		Companies:       c.PostFormArray("company_name"),
		Roles:           c.PostFormArray("role"),
		ExpStartDates:   c.PostFormArray("experience_start_date"),
		ExpEndDates:     c.PostFormArray("experience_end_date"),
		Descriptions:    c.PostFormArray("description"),
		Skills:          c.PostForm("skills"),
		LinkedURL:       c.PostForm("linkedUrl"),
		JobDescription:  c.PostForm("jobDescription"),
		CertNames:       c.PostFormArray("certificate_name"),
		CertIssuers:     c.PostFormArray("issuing_organization"),
		CertIssueDates:  c.PostFormArray("issue_date"),
		CertExpiryDates: c.PostFormArray("expiration_date"),
		ProjectNames:    c.PostFormArray("project_name"),
		GithubLinks:     c.PostFormArray("github_link"),
	}

	userID := middleware.UserIDFromContext(c)
	generated, err := h.Service.Generate(c.Request.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, augment.ErrAugmentFailed):
			respond.Error(c, http.StatusBadGateway, "upstream_error", "could not generate experience points", nil)
		case errors.Is(err, ErrExportFailed):
			respond.Error(c, http.StatusBadGateway, "upstream_error", "could not export resume PDF", nil)
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "could not generate resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"resumeId":    generated.Resume.ID,
		"resume":      generated.Detail,
		"downloadUrl": generated.DownloadURL,
	})
}

func (h *Handler) Edit(c *gin.Context) {
	detail, err := h.Service.Edit(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not load resume", nil)
		return
	}
	respond.OK(c, detail)
}

func (h *Handler) Update(c *gin.Context) {
	in := EditInput{
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Email:     c.PostForm("email"),
		Phone:     c.PostForm("phone"),
		LinkedURL: c.PostForm("linkedUrl"),
		Skills:    c.PostForm("skills"),
	}
	detail, err := h.Service.Update(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not update resume", nil)
		return
	}
	respond.OK(c, detail)
}

func (h *Handler) ByEmail(c *gin.Context) {
	res, err := h.Service.ByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "No resume found for the given email", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not load resume", nil)
		return
	}
	respond.OK(c, res)
}

func (h *Handler) Download(c *gin.Context) {
	url, err := h.Service.DownloadURL(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoArtifact) {
			respond.Error(c, http.StatusNotFound, "not_found", "No resume found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not resolve download", nil)
		return
	}
	c.Redirect(http.StatusFound, url)
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.Service.Delete(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not delete resume", nil)
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

func (h *Handler) Show(c *gin.Context) {
	res, url, err := h.Service.Latest(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.OK(c, gin.H{"resumeId": nil, "pdfUrl": nil, "comments": []CommentView{}})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not load resume", nil)
		return
	}

	comments, err := h.Comments.CommentsForResume(c.Request.Context(), res.ID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "could not load comments", nil)
		return
	}
	if comments == nil {
		comments = []CommentView{}
	}
	respond.OK(c, gin.H{"resumeId": res.ID, "pdfUrl": url, "comments": comments})
}
