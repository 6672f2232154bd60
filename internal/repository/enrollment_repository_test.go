package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusware/urms/internal/models"
)

func TestEnrollmentRepositoryExistsAndRemove(t *testing.T) {
	store := newTestStore(t)
	repo := NewEnrollmentRepository(store, zap.NewNop())

	require.NoError(t, repo.Append(models.Enrollment{ModuleID: "DA0000-DSAA-JD", StudentID: "042317", StudentName: "Alice Tan"}))
	require.NoError(t, repo.Append(models.Enrollment{ModuleID: "DA0000-DSAA-JD", StudentID: "108221", StudentName: "Bob Lim"}))

	exists, err := repo.Exists("DA0000-DSAA-JD", "042317")
	require.NoError(t, err)
	assert.True(t, exists)

	removed, err := repo.Remove("DA0000-DSAA-JD", "042317")
	require.NoError(t, err)
	assert.True(t, removed)

	exists, err = repo.Exists("DA0000-DSAA-JD", "042317")
	require.NoError(t, err)
	assert.False(t, exists)

	removed, err = repo.Remove("DA0000-DSAA-JD", "042317")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestEnrollmentRepositoryByModule(t *testing.T) {
	store := newTestStore(t)
	repo := NewEnrollmentRepository(store, zap.NewNop())

	require.NoError(t, repo.Append(models.Enrollment{ModuleID: "DA0000-DSAA-JD", StudentID: "042317", StudentName: "Alice Tan"}))
	require.NoError(t, repo.Append(models.Enrollment{ModuleID: "NE1234-NS-MK", StudentID: "042317", StudentName: "Alice Tan"}))

	enrollments, err := repo.ByModule("DA0000-DSAA-JD")
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, "Alice Tan", enrollments[0].StudentName)
}
