package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumebuilderpro/resume-api/internal/api/metrics"
	"github.com/resumebuilderpro/resume-api/internal/core/domain"
	"github.com/resumebuilderpro/resume-api/internal/core/ports"
)

// ResumeHandler handles the owner-scoped resume routes. The auth service
// resolves the token subject to the owning account.
type ResumeHandler struct {
	resumeService ports.ResumeService
	authService   ports.AuthService
}

func NewResumeHandler(resumeService ports.ResumeService, authService ports.AuthService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService, authService: authService}
}

type createResumeRequest struct {
	Title   string         `json:"title" validate:"required"`
	Payload domain.Payload `json:"payload"`
}

type updateResumeRequest struct {
	Title   *string         `json:"title"`
	Status  *string         `json:"status"`
	Payload *domain.Payload `json:"payload"`
}

type listResumesResponse struct {
	Items []*domain.Resume `json:"items"`
	Total int              `json:"total"`
}

// Create stores a new resume for the authenticated user.
//
// @Summary      Create a resume
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createResumeRequest  true  "Resume content"
// @Success      201   {object}  domain.Resume
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /resumes [post]
func (h *ResumeHandler) Create(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	var req createResumeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resume, err := h.resumeService.Create(c.Request().Context(), ports.CreateResumeInput{
		OwnerID: user.ID,
		Title:   req.Title,
		Payload: req.Payload,
	})
	if err != nil {
		return err
	}

	metrics.ResumesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, resume)
}

// List returns the authenticated user's resumes, most recently updated first.
//
// @Summary      List resumes
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResumesResponse
// @Failure      401  {object}  map[string]string
// @Router       /resumes [get]
func (h *ResumeHandler) List(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	resumes, err := h.resumeService.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResumesResponse{Items: resumes, Total: len(resumes)})
}

// Get returns a single resume owned by the authenticated user.
//
// @Summary      Get a resume
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resume id"
// @Success      200  {object}  domain.Resume
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /resumes/{id} [get]
func (h *ResumeHandler) Get(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	resume, err := h.resumeService.Get(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resume)
}

// Update applies a partial update to a resume.
//
// @Summary      Update a resume
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Resume id"
// @Param        body  body      updateResumeRequest  true  "Fields to change"
// @Success      200   {object}  domain.Resume
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /resumes/{id} [put]
func (h *ResumeHandler) Update(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	var req updateResumeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.UpdateResumeInput{
		ID:      c.Param("id"),
		OwnerID: user.ID,
		Title:   req.Title,
		Payload: req.Payload,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		in.Status = &status
	}

	resume, err := h.resumeService.Update(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resume)
}

// Delete removes a resume and its index memberships.
//
// @Summary      Delete a resume
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resume id"
// @Success      204  "deleted"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /resumes/{id} [delete]
func (h *ResumeHandler) Delete(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	if err := h.resumeService.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}

	metrics.ResumesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Download renders a resume through the export pipeline and streams the
// artifact back as an attachment.
//
// @Summary      Download a rendered resume
// @Tags         resumes
// @Produce      text/html
// @Security     BearerAuth
// @Param        id   path      string  true  "Resume id"
// @Success      200  {string}  string  "rendered artifact"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /resumes/{id}/download [get]
func (h *ResumeHandler) Download(c echo.Context) error {
	user, err := currentUser(c, h.authService)
	if err != nil {
		return err
	}

	result, err := h.resumeService.Export(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}

	metrics.ResumesExportedTotal.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.Filename))
	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}
