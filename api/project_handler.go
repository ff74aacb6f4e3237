package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sdp-portal/projectbank-backend/database"
	"github.com/sdp-portal/projectbank-backend/errs"
	"github.com/sdp-portal/projectbank-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectRequest is the body the teacher-side posting form submits for both
// create and update.
type projectRequest struct {
	TeacherID          string   `json:"teacherId"`
	ProjectName        string   `json:"projectName"`
	ProjectDescription string   `json:"projectDescription"`
	ProjectType        string   `json:"projectType"`
	ProjectDomain      string   `json:"projectDomain"`
	CGPACutoff         string   `json:"cgpaCutoff"`
	Prerequisites      []string `json:"prerequisites"`
}

// projectDataResponse pairs the requested id with the full project record.
type projectDataResponse struct {
	ProjectID string          `json:"projectId"`
	Project   *models.Project `json:"project"`
}

// getTeacherProjects lists every project posted by one teacher
// @Summary List a teacher's projects
// @Description Retrieves all projects owned by the given teacher
// @Tags Projects
// @Produce json
// @Param teacherId path string true "Teacher user ID"
// @Success 200 {array} models.Project "Projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects/{teacherId} [get]
func (h projectHandler) getTeacherProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teacherID := chi.URLParam(r, "teacherId")
		if teacherID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing teacherId"))
			return
		}

		projects, err := h.projectRepo.FindByTeacher(teacherID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProjectData fetches one project by id
// @Summary Get project
// @Description Retrieves one project together with the id it was requested by
// @Tags Projects
// @Produce json
// @Param projectId path string true "Project ID" format(uuid)
// @Success 200 {object} projectDataResponse "Project details"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /projectdata/{projectId} [get]
func (h projectHandler) getProjectData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectIDStr := chi.URLParam(r, "projectId")
		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectId"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, projectDataResponse{
			ProjectID: projectIDStr,
			Project:   project,
		})
	}
}

// saveProject creates a new project posting
// @Summary Create project
// @Description Saves a new project posting for a teacher
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body projectRequest true "Project data"
// @Success 201 {object} models.Project "Saved project"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed body"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error saving project"
// @Router /saveProject [post]
func (h projectHandler) saveProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.TeacherID == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("teacherId"))
			return
		}

		project := models.Project{
			TeacherID:          req.TeacherID,
			ProjectName:        req.ProjectName,
			ProjectDescription: req.ProjectDescription,
			ProjectType:        req.ProjectType,
			ProjectDomain:      req.ProjectDomain,
			CGCutoff:           req.CGPACutoff,
			Prerequisites:      req.Prerequisites,
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject replaces an existing project's fields
// @Summary Update project
// @Description Replaces the posting's fields with the submitted form values
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID" format(uuid)
// @Param project body projectRequest true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /updateProject/{projectId} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectId"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectId"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		existing.ProjectName = req.ProjectName
		existing.ProjectDescription = req.ProjectDescription
		existing.ProjectType = req.ProjectType
		existing.ProjectDomain = req.ProjectDomain
		existing.CGCutoff = req.CGPACutoff
		existing.Prerequisites = req.Prerequisites

		if err := h.projectRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteProject removes a project by id
// @Summary Delete project
// @Description Deletes a project posting
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /deleteProject/{id} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid project id"))
			return
		}

		deleted, err := h.projectRepo.Delete(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Project deleted successfully",
		})
	}
}
