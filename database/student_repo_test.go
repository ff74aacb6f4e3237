package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdp-portal/projectbank-backend/models"
)

func seedStudent(t *testing.T, repo *StudentRepo, userID string) {
	t.Helper()
	require.NoError(t, repo.Add(&models.Student{UserID: userID, Name: "Asha", CG: "8.5"}))
}

func TestSaveDraftMissingStudent(t *testing.T) {
	repo := NewStudentRepo(newTestDB(t))

	found, err := repo.SaveDraft("unknown-student", models.Draft{ProjectID: "p1"})
	require.NoError(t, err)
	require.False(t, found)
}

func TestSaveDraftAppendsThenReplacesInPlace(t *testing.T) {
	repo := NewStudentRepo(newTestDB(t))
	seedStudent(t, repo, "s1")

	first := models.Draft{ProjectID: "p1", ProjectName: "A", ReasonToDoProject: "interest"}
	second := models.Draft{ProjectID: "p2", ProjectName: "Other"}

	found, err := repo.SaveDraft("s1", first)
	require.NoError(t, err)
	require.True(t, found)

	found, err = repo.SaveDraft("s1", second)
	require.NoError(t, err)
	require.True(t, found)

	// Replacing the first draft keeps its position and the list length.
	updated := models.Draft{ProjectID: "p1", ProjectName: "B", ReasonToDoProject: "stronger interest"}
	found, err = repo.SaveDraft("s1", updated)
	require.NoError(t, err)
	require.True(t, found)

	student, err := repo.FindByUserID("s1")
	require.NoError(t, err)
	require.Len(t, student.Drafts, 2)
	require.Equal(t, "B", student.Drafts[0].ProjectName)
	require.Equal(t, "p2", student.Drafts[1].ProjectID)
}

func TestSaveDraftIdempotent(t *testing.T) {
	repo := NewStudentRepo(newTestDB(t))
	seedStudent(t, repo, "s1")

	draft := models.Draft{ProjectID: "p1", ProjectName: "A"}
	for i := 0; i < 2; i++ {
		found, err := repo.SaveDraft("s1", draft)
		require.NoError(t, err)
		require.True(t, found)
	}

	student, err := repo.FindByUserID("s1")
	require.NoError(t, err)
	require.Len(t, student.Drafts, 1)
	require.Equal(t, draft, student.Drafts[0])
}

func TestDraftForDistinguishesMissingDraft(t *testing.T) {
	repo := NewStudentRepo(newTestDB(t))
	seedStudent(t, repo, "s1")

	found, err := repo.SaveDraft("s1", models.Draft{ProjectID: "p1"})
	require.NoError(t, err)
	require.True(t, found)

	student, err := repo.FindByUserID("s1")
	require.NoError(t, err)
	require.NotNil(t, student.DraftFor("p1"))
	require.Nil(t, student.DraftFor("p2"))
}

func TestUpdateProfileOverwritesNamedFields(t *testing.T) {
	repo := NewStudentRepo(newTestDB(t))
	seedStudent(t, repo, "s1")

	updated, err := repo.UpdateProfile("s1", "Asha R", "2022A7PS0123H", "B.E.", "CS", "", "9.1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Asha R", updated.Name)
	require.Equal(t, "9.1", updated.CG)

	// Applying the same update again yields the same stored state.
	again, err := repo.UpdateProfile("s1", "Asha R", "2022A7PS0123H", "B.E.", "CS", "", "9.1")
	require.NoError(t, err)
	require.NotNil(t, again)
	require.Equal(t, updated.Name, again.Name)
	require.Equal(t, updated.CG, again.CG)
}

func TestUpdateProfileMissingStudent(t *testing.T) {
	repo := NewStudentRepo(newTestDB(t))

	updated, err := repo.UpdateProfile("unknown-student", "X", "", "", "", "", "")
	require.NoError(t, err)
	require.Nil(t, updated)
}
