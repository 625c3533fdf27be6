package memory

import (
	"testing"

	"advisor-portal-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositorySaveAndGet(t *testing.T) {
	repo := NewSessionRepository()

	repo.Save(&store.Session{ID: "sess-1", UserID: "user-1", State: store.StateGathering})

	session, found := repo.Get("sess-1")
	assert.True(t, found)
	assert.Equal(t, "user-1", session.UserID)
	assert.False(t, session.Finalized())

	_, found = repo.Get("missing")
	assert.False(t, found)
}

func TestMarkFinalizedIsOneShot(t *testing.T) {
	repo := NewSessionRepository()

	assert.True(t, repo.MarkFinalized("sess-1", "user-1", "spec-1"))
	assert.True(t, repo.IsFinalized("sess-1"))

	// A second finalize on the same session must be refused.
	assert.False(t, repo.MarkFinalized("sess-1", "user-1", "spec-2"))

	session, found := repo.Get("sess-1")
	assert.True(t, found)
	assert.Equal(t, "spec-1", session.SpecificationID)
}

func TestIsFinalizedUnknownSession(t *testing.T) {
	repo := NewSessionRepository()
	assert.False(t, repo.IsFinalized("never-seen"))
}

func TestDeleteClearsSession(t *testing.T) {
	repo := NewSessionRepository()
	repo.MarkFinalized("sess-1", "user-1", "spec-1")
	repo.Delete("sess-1")
	assert.False(t, repo.IsFinalized("sess-1"))
}
