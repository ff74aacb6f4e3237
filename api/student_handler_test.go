package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdp-portal/projectbank-backend/models"
	"github.com/sdp-portal/projectbank-backend/services"
)

func TestProjectBankEligibility(t *testing.T) {
	router, db := newTestAPI(t)

	require.NoError(t, db.TeacherRepo().Add(&models.Teacher{UserID: "t1", Name: "Dr. Rao", Department: "CS"}))
	require.NoError(t, db.StudentRepo().Add(&models.Student{UserID: "s1", Name: "Asha", CG: "8.5"}))

	require.NoError(t, db.ProjectRepo().Add(&models.Project{TeacherID: "t1", ProjectName: "Within reach", CGCutoff: "8.0"}))
	require.NoError(t, db.ProjectRepo().Add(&models.Project{TeacherID: "t1", ProjectName: "Too strict", CGCutoff: "9.0"}))
	require.NoError(t, db.ProjectRepo().Add(&models.Project{TeacherID: "t-gone", ProjectName: "Orphaned", CGCutoff: ""}))

	var entries []services.ProjectBankEntry
	w := doJSON(t, router, http.MethodGet, "/students/getProjectsData/s1", nil, &entries)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, entries, 3)

	byName := make(map[string]services.ProjectBankEntry, len(entries))
	for _, entry := range entries {
		byName[entry.ProjectName] = entry
	}

	require.Equal(t, services.Eligible, byName["Within reach"].CGEligibility)
	require.Equal(t, "Dr. Rao", byName["Within reach"].TeacherName)

	require.Equal(t, services.NotEligible, byName["Too strict"].CGEligibility)

	// Unparseable cutoff and missing teacher both degrade, neither errors.
	require.Equal(t, services.NotEligible, byName["Orphaned"].CGEligibility)
	require.Equal(t, services.UnknownTeacher, byName["Orphaned"].TeacherName)
	require.Equal(t, services.UnknownTeacher, byName["Orphaned"].Department)
}

func TestProjectBankStudentNotFound(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodGet, "/students/getProjectsData/unknown", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikesEndpoints(t *testing.T) {
	router, _ := newTestAPI(t)

	// No ledger entry yet: a 404, not an empty list.
	w := doJSON(t, router, http.MethodGet, "/likes/s1", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/likes/s1/p1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/likes/s1/p1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/likes/s1/p2", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var liked []models.LikedProject
	w = doJSON(t, router, http.MethodGet, "/likes/s1", nil, &liked)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, liked, 3)

	// Unlike removes every occurrence of the project id.
	w = doJSON(t, router, http.MethodDelete, "/likes/s1/p1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	liked = nil
	w = doJSON(t, router, http.MethodGet, "/likes/s1", nil, &liked)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []models.LikedProject{{ProjectID: "p2"}}, liked)

	// Unliking for a student with no ledger entry is a 404.
	w = doJSON(t, router, http.MethodDelete, "/likes/s2/p1", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDraftEndpoints(t *testing.T) {
	router, db := newTestAPI(t)

	require.NoError(t, db.StudentRepo().Add(&models.Student{UserID: "s1", Name: "Asha", CG: "8.5"}))

	body := map[string]any{
		"studentId":             "s1",
		"projectId":             "p1",
		"projectName":           "A",
		"projectDescription":    "desc",
		"whyWantToDoProject":    "interest",
		"currentCGPA":           "8.5",
		"selectedPrerequisites": []string{"CS F363"},
	}

	w := doJSON(t, router, http.MethodPost, "/saveDraft", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Saving again for the same project replaces the draft instead of
	// appending a second one.
	body["projectName"] = "B"
	w = doJSON(t, router, http.MethodPost, "/saveDraft", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var draft models.Draft
	w = doJSON(t, router, http.MethodGet, "/drafts/s1/p1", nil, &draft)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "B", draft.ProjectName)
	require.Equal(t, "interest", draft.ReasonToDoProject)

	student, err := db.StudentRepo().FindByUserID("s1")
	require.NoError(t, err)
	require.Len(t, student.Drafts, 1)

	// A student with no draft for the project gets a null body, not an error.
	w = doJSON(t, router, http.MethodGet, "/drafts/s1/p2", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "null", w.Body.String())

	// A missing student is an error.
	w = doJSON(t, router, http.MethodPost, "/saveDraft", map[string]any{"studentId": "ghost", "projectId": "p1"}, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/drafts/ghost/p1", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentProfileEndpoints(t *testing.T) {
	router, db := newTestAPI(t)

	require.NoError(t, db.StudentRepo().Add(&models.Student{UserID: "s1", Name: "Asha"}))

	var student models.Student
	w := doJSON(t, router, http.MethodGet, "/students/s1", nil, &student)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Asha", student.Name)

	update := map[string]any{
		"name":     "Asha R",
		"idNumber": "2022A7PS0123H",
		"degree":   "B.E.",
		"cg":       "9.1",
	}
	w = doJSON(t, router, http.MethodPut, "/students/s1", update, &student)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "9.1", student.CG)

	w = doJSON(t, router, http.MethodGet, "/students/ghost", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTeacherProfileEndpoints(t *testing.T) {
	router, db := newTestAPI(t)

	require.NoError(t, db.TeacherRepo().Add(&models.Teacher{UserID: "t1", Name: "Dr. Rao"}))

	var teacher models.Teacher
	w := doJSON(t, router, http.MethodPut, "/teachers/t1", map[string]any{
		"name":       "Dr. Rao",
		"block":      "D",
		"roomNumber": "D-104",
		"department": "CS",
	}, &teacher)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "D-104", teacher.RoomNumber)

	w = doJSON(t, router, http.MethodPut, "/teachers/ghost", map[string]any{"name": "X"}, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
