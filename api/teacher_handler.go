package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sdp-portal/projectbank-backend/database"
	"github.com/sdp-portal/projectbank-backend/errs"
)

type teacherHandler struct {
	responder   Responder
	logger      zerolog.Logger
	teacherRepo *database.TeacherRepo
}

func newTeacherHandler(teacherRepo *database.TeacherRepo) teacherHandler {
	logger := log.With().Str("handlerName", "teacherHandler").Logger()

	return teacherHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		teacherRepo: teacherRepo,
	}
}

// teacherUpdateRequest carries exactly the fields the profile form can edit.
type teacherUpdateRequest struct {
	Name       string `json:"name"`
	Block      string `json:"block"`
	RoomNumber string `json:"roomNumber"`
	Department string `json:"department"`
}

// getTeacher fetches one teacher profile
// @Summary Get teacher
// @Description Retrieves the teacher profile for the given user id
// @Tags Teachers
// @Produce json
// @Param userId path string true "Teacher user ID"
// @Success 200 {object} models.Teacher "Teacher profile"
// @Failure 404 {object} ErrorResponse "Not Found - Teacher not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /teachers/{userId} [get]
func (h teacherHandler) getTeacher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		teacher, err := h.teacherRepo.FindByUserID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find teacher", "teacher", err))
			return
		}

		if teacher == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Teacher not found"))
			return
		}

		h.responder.WriteJSON(w, teacher)
	}
}

// updateTeacher replaces the editable profile fields
// @Summary Update teacher
// @Description Overwrites name, block, room number and department for the teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param userId path string true "Teacher user ID"
// @Param teacher body teacherUpdateRequest true "Profile fields"
// @Success 200 {object} models.Teacher "Updated teacher profile"
// @Failure 404 {object} ErrorResponse "Not Found - Teacher not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /teachers/{userId} [put]
func (h teacherHandler) updateTeacher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		var req teacherUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode teacher request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		teacher, err := h.teacherRepo.UpdateProfile(userID, req.Name, req.Block, req.RoomNumber, req.Department)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update teacher", "teacher", err))
			return
		}

		if teacher == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Teacher not found"))
			return
		}

		h.responder.WriteJSON(w, teacher)
	}
}
