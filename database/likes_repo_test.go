package database

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sdp-portal/projectbank-backend/models"
)

func TestLikesLedgerMissingStudent(t *testing.T) {
	repo := NewLikesRepo(newTestDB(t))

	ledger, err := repo.FindByStudent("unknown-student")
	require.NoError(t, err)
	require.Nil(t, ledger)
}

func TestAddLikedCreatesLedgerLazily(t *testing.T) {
	repo := NewLikesRepo(newTestDB(t))

	require.NoError(t, repo.AddLiked("s1", "p1"))

	ledger, err := repo.FindByStudent("s1")
	require.NoError(t, err)
	require.NotNil(t, ledger)
	require.Equal(t, []models.LikedProject{{ProjectID: "p1"}}, []models.LikedProject(ledger.LikedProjects))
}

func TestAddLikedAllowsDuplicates(t *testing.T) {
	repo := NewLikesRepo(newTestDB(t))

	require.NoError(t, repo.AddLiked("s1", "p1"))
	require.NoError(t, repo.AddLiked("s1", "p1"))
	require.NoError(t, repo.AddLiked("s1", "p2"))

	ledger, err := repo.FindByStudent("s1")
	require.NoError(t, err)
	require.Len(t, ledger.LikedProjects, 3)
}

func TestRemoveLikedFiltersAllOccurrences(t *testing.T) {
	repo := NewLikesRepo(newTestDB(t))

	require.NoError(t, repo.AddLiked("s1", "p1"))
	require.NoError(t, repo.AddLiked("s1", "p2"))
	require.NoError(t, repo.AddLiked("s1", "p1"))

	found, err := repo.RemoveLiked("s1", "p1")
	require.NoError(t, err)
	require.True(t, found)

	ledger, err := repo.FindByStudent("s1")
	require.NoError(t, err)
	require.Equal(t, []models.LikedProject{{ProjectID: "p2"}}, []models.LikedProject(ledger.LikedProjects))
}

func TestRemoveLikedMissingLedger(t *testing.T) {
	repo := NewLikesRepo(newTestDB(t))

	found, err := repo.RemoveLiked("unknown-student", "p1")
	require.NoError(t, err)
	require.False(t, found)
}

func TestConcurrentLikesAreNotLost(t *testing.T) {
	repo := NewLikesRepo(newTestDB(t))

	const likes = 20
	var wg sync.WaitGroup
	errors := make([]error, likes)
	for i := 0; i < likes; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errors[i] = repo.AddLiked("s1", "p1")
		}(i)
	}
	wg.Wait()

	for _, err := range errors {
		require.NoError(t, err)
	}

	ledger, err := repo.FindByStudent("s1")
	require.NoError(t, err)
	require.Len(t, ledger.LikedProjects, likes)
}
