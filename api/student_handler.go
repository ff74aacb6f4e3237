package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/sdp-portal/projectbank-backend/database"
	"github.com/sdp-portal/projectbank-backend/errs"
	"github.com/sdp-portal/projectbank-backend/models"
	"github.com/sdp-portal/projectbank-backend/services"
)

type studentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	studentRepo *database.StudentRepo
	teacherRepo *database.TeacherRepo
	projectRepo *database.ProjectRepo
	likesRepo   *database.LikesRepo
}

func newStudentHandler(studentRepo *database.StudentRepo, teacherRepo *database.TeacherRepo, projectRepo *database.ProjectRepo, likesRepo *database.LikesRepo) studentHandler {
	logger := log.With().Str("handlerName", "studentHandler").Logger()

	return studentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		projectRepo: projectRepo,
		likesRepo:   likesRepo,
	}
}

// studentUpdateRequest carries exactly the fields the profile form can edit.
type studentUpdateRequest struct {
	Name         string `json:"name"`
	IDNumber     string `json:"idNumber"`
	Degree       string `json:"degree"`
	FirstDegree  string `json:"firstDegree"`
	SecondDegree string `json:"secondDegree"`
	CG           string `json:"cg"`
}

// draftRequest is the application-draft form body.
type draftRequest struct {
	StudentID             string   `json:"studentId"`
	ProjectID             string   `json:"projectId"`
	ProjectName           string   `json:"projectName"`
	ProjectDescription    string   `json:"projectDescription"`
	WhyWantToDoProject    string   `json:"whyWantToDoProject"`
	CurrentCGPA           string   `json:"currentCGPA"`
	SelectedPrerequisites []string `json:"selectedPrerequisites"`
}

// getStudent fetches one student profile
// @Summary Get student
// @Description Retrieves the student profile for the given user id
// @Tags Students
// @Produce json
// @Param userId path string true "Student user ID"
// @Success 200 {object} models.Student "Student profile"
// @Failure 404 {object} ErrorResponse "Not Found - Student not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /students/{userId} [get]
func (h studentHandler) getStudent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		student, err := h.studentRepo.FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find student", "student", err))
			return
		}

		if student == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Student not found"))
			return
		}

		h.responder.WriteJSON(w, student)
	}
}

// updateStudent replaces the editable profile fields
// @Summary Update student
// @Description Overwrites name, id number, degree info and CGPA for the student
// @Tags Students
// @Accept json
// @Produce json
// @Param userId path string true "Student user ID"
// @Param student body studentUpdateRequest true "Profile fields"
// @Success 200 {object} models.Student "Updated student profile"
// @Failure 404 {object} ErrorResponse "Not Found - Student not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /students/{userId} [put]
func (h studentHandler) updateStudent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		var req studentUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode student request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		student, err := h.studentRepo.UpdateProfile(userID, req.Name, req.IDNumber, req.Degree, req.FirstDegree, req.SecondDegree, req.CG)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update student", "student", err))
			return
		}

		if student == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Student not found"))
			return
		}

		h.responder.WriteJSON(w, student)
	}
}

// getProjectBank lists every project annotated with the student's eligibility
// @Summary Get the eligibility-annotated project bank
// @Description Joins all projects with their teachers and the student's CGPA verdict
// @Tags Students
// @Produce json
// @Param userId path string true "Student user ID"
// @Success 200 {array} services.ProjectBankEntry "Project bank entries"
// @Failure 404 {object} ErrorResponse "Not Found - Student not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /students/getProjectsData/{userId} [get]
func (h studentHandler) getProjectBank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		var (
			projects []*models.Project
			teachers []*models.Teacher
			student  *models.Student
		)

		// The three record sets are independent reads; fetch them together.
		group, _ := errgroup.WithContext(r.Context())
		group.Go(func() (err error) {
			projects, err = h.projectRepo.FindAll()
			return err
		})
		group.Go(func() (err error) {
			teachers, err = h.teacherRepo.FindAll()
			return err
		})
		group.Go(func() (err error) {
			student, err = h.studentRepo.FindByUserID(userID)
			return err
		})
		if err := group.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load project bank", "projects", err))
			return
		}

		if student == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Student not found"))
			return
		}

		h.responder.WriteJSON(w, services.BuildProjectBank(projects, teachers, student))
	}
}

// getLikedProjects lists the student's liked project ids
// @Summary Get liked projects
// @Description Returns the liked-project entries recorded for the student
// @Tags Likes
// @Produce json
// @Param studentId path string true "Student user ID"
// @Success 200 {array} models.LikedProject "Liked project ids"
// @Failure 404 {object} ErrorResponse "Not Found - No ledger entry for student"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /likes/{studentId} [get]
func (h studentHandler) getLikedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentId")

		ledger, err := h.likesRepo.FindByStudent(studentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find likes", "likes", err))
			return
		}

		if ledger == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Student not found"))
			return
		}

		h.responder.WriteJSON(w, ledger.LikedProjects)
	}
}

// likeProject records a liked project for the student
// @Summary Like a project
// @Description Appends the project id to the student's liked list, creating it on first like
// @Tags Likes
// @Produce json
// @Param studentId path string true "Student user ID"
// @Param projectId path string true "Project ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /likes/{studentId}/{projectId} [post]
func (h studentHandler) likeProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentId")
		projectID := chi.URLParam(r, "projectId")

		if err := h.likesRepo.AddLiked(studentID, projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save like", "likes", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Liked project saved successfully",
		})
	}
}

// unlikeProject removes a liked project from the student's list
// @Summary Unlike a project
// @Description Filters every occurrence of the project id out of the student's liked list
// @Tags Likes
// @Produce json
// @Param studentId path string true "Student user ID"
// @Param projectId path string true "Project ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - No ledger entry for student"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /likes/{studentId}/{projectId} [delete]
func (h studentHandler) unlikeProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentId")
		projectID := chi.URLParam(r, "projectId")

		found, err := h.likesRepo.RemoveLiked(studentID, projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("remove like", "likes", err))
			return
		}

		if !found {
			h.responder.WriteError(w, errs.NewNotFoundError("Student not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Liked project removed successfully",
		})
	}
}

// saveDraft upserts the student's application draft for one project
// @Summary Save draft
// @Description Replaces the draft for the same project in place, or appends a new one
// @Tags Drafts
// @Accept json
// @Produce json
// @Param draft body draftRequest true "Draft fields"
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Student not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /saveDraft [post]
func (h studentHandler) saveDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req draftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode draft request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		draft := models.Draft{
			ProjectID:              req.ProjectID,
			ProjectName:            req.ProjectName,
			ProjectDescription:     req.ProjectDescription,
			ReasonToDoProject:      req.WhyWantToDoProject,
			CurrentCGPA:            req.CurrentCGPA,
			PrerequisitesFulfilled: req.SelectedPrerequisites,
		}

		found, err := h.studentRepo.SaveDraft(req.StudentID, draft)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save draft", "draft", err))
			return
		}

		if !found {
			h.responder.WriteError(w, errs.NewNotFoundError("Student not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Draft saved successfully",
		})
	}
}

// getDraft fetches the student's draft for one project
// @Summary Get draft
// @Description Returns the saved draft, or null when the student has none for that project
// @Tags Drafts
// @Produce json
// @Param studentId path string true "Student user ID"
// @Param projectId path string true "Project ID"
// @Success 200 {object} models.Draft "Draft, or null when absent"
// @Failure 404 {object} ErrorResponse "Not Found - Student not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /drafts/{studentId}/{projectId} [get]
func (h studentHandler) getDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentId")
		projectID := chi.URLParam(r, "projectId")

		student, err := h.studentRepo.FindByUserID(studentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find student", "student", err))
			return
		}

		if student == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Student not found"))
			return
		}

		// A missing draft is not an error; the form starts blank.
		h.responder.WriteJSON(w, student.DraftFor(projectID))
	}
}
