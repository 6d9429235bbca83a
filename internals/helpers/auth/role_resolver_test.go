package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/testutil"
)

func TestResolveRolePrecedence(t *testing.T) {
	db := testutil.OpenTestDB(t)

	admin := testutil.SeedAdmin(t, db, "admin")
	student := testutil.SeedStudent(t, db, "andi", "R001")
	faculty := testutil.SeedFaculty(t, db, "guru")
	plain := testutil.SeedUser(t, db, "nobody")

	role, err := ResolveRole(db, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleAdministrator, role.Kind)

	role, err = ResolveRole(db, student.UserID)
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, role.Kind)
	require.NotNil(t, role.Student)
	assert.Equal(t, "R001", role.Student.RollNumber)

	role, err = ResolveRole(db, faculty.UserID)
	require.NoError(t, err)
	assert.Equal(t, RoleFaculty, role.Kind)

	role, err = ResolveRole(db, plain.ID)
	require.NoError(t, err)
	assert.Equal(t, RolePlain, role.Kind)
	assert.Nil(t, role.Faculty)
	assert.Nil(t, role.Student)
}

func TestResolveRoleFollowsProfileChanges(t *testing.T) {
	db := testutil.OpenTestDB(t)
	student := testutil.SeedStudent(t, db, "andi", "R001")

	role, err := ResolveRole(db, student.UserID)
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, role.Kind)

	// removing the profile demotes the account immediately
	require.NoError(t, db.Delete(&student).Error)

	role, err = ResolveRole(db, student.UserID)
	require.NoError(t, err)
	assert.Equal(t, RolePlain, role.Kind)
}
