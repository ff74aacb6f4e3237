package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sdp-portal/projectbank-backend/models"
)

func TestProjectLifecycle(t *testing.T) {
	router, _ := newTestAPI(t)

	body := map[string]any{
		"teacherId":          "teacher-1",
		"projectName":        "Compilers",
		"projectDescription": "Build a toy compiler",
		"projectType":        "study",
		"projectDomain":      "PL",
		"cgpaCutoff":         "8.0",
		"prerequisites":      []string{"CS F363"},
	}

	var created models.Project
	w := doJSON(t, router, http.MethodPost, "/saveProject", body, &created)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Compilers", created.ProjectName)
	require.Equal(t, "8.0", created.CGCutoff)
	require.NotEqual(t, uuid.Nil, created.ID)

	// The teacher's listing includes the new posting.
	var listed []models.Project
	w = doJSON(t, router, http.MethodGet, "/projects/teacher-1", nil, &listed)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, listed, 1)

	// Fetch by id pairs the id with the record.
	var data struct {
		ProjectID string         `json:"projectId"`
		Project   models.Project `json:"project"`
	}
	w = doJSON(t, router, http.MethodGet, "/projectdata/"+created.ID.String(), nil, &data)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, created.ID.String(), data.ProjectID)
	require.Equal(t, "Compilers", data.Project.ProjectName)

	// Update replaces the posting's fields.
	body["projectName"] = "Compilers II"
	var updated models.Project
	w = doJSON(t, router, http.MethodPut, "/updateProject/"+created.ID.String(), body, &updated)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Compilers II", updated.ProjectName)

	// Delete removes it; a second delete reports not found.
	w = doJSON(t, router, http.MethodDelete, "/deleteProject/"+created.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/deleteProject/"+created.ID.String(), nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProjectDataNotFound(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/projectdata/%s", uuid.New()), nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProjectNotFound(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/updateProject/%s", uuid.New()), map[string]any{"projectName": "X"}, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveProjectRequiresTeacherID(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/saveProject", map[string]any{"projectName": "X"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
