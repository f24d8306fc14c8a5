package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regsite/internal/rbac"
)

func TestUserLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	t.Cleanup(func() { cleanUsers(t, db, "lifecycle@example.test") })

	u, err := s.Create("lifecycle@example.test", "correct horse battery", "Ada", "Lovelace", rbac.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleEditor, u.Role)
	assert.True(t, u.IsActive)
	assert.Nil(t, u.LastLogin)
	assert.NotEqual(t, "correct horse battery", u.PasswordHash)

	assert.True(t, s.CheckPassword(u, "correct horse battery"))
	assert.False(t, s.CheckPassword(u, "wrong password"))

	found, err := s.FindByEmail("lifecycle@example.test")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID, found.ID)

	missing, err := s.FindByEmail("nobody@example.test")
	require.NoError(t, err)
	assert.Nil(t, missing)

	now := time.Now()
	require.NoError(t, s.UpdateLastLogin(u.ID, now))
	found, err = s.FindByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLogin)
	assert.WithinDuration(t, now, *found.LastLogin, time.Second)

	found.IsActive = false
	found.FirstName = "Augusta"
	updated, err := s.Update(found)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Augusta", updated.FirstName)

	require.NoError(t, s.UpdatePassword(u.ID, "a new password entirely"))
	found, err = s.FindByID(u.ID)
	require.NoError(t, err)
	assert.True(t, s.CheckPassword(found, "a new password entirely"))
	assert.False(t, s.CheckPassword(found, "correct horse battery"))

	require.NoError(t, s.Delete(u.ID))
	gone, err := s.FindByID(u.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUserEmailStoredLowercase(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	t.Cleanup(func() { cleanUsers(t, db, "mixed.case@example.test") })

	u, err := s.Create("Mixed.Case@Example.Test", "password1234", "Mixed", "Case", rbac.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, "mixed.case@example.test", u.Email)

	// Lookups match whatever casing the caller typed.
	found, err := s.FindByEmail("MIXED.CASE@EXAMPLE.TEST")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID, found.ID)
}

func TestUserListFilters(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	emails := []string{"filter-a@example.test", "filter-b@example.test"}
	t.Cleanup(func() { cleanUsers(t, db, emails...) })

	_, err := s.Create(emails[0], "password1234", "Filter", "Admin", rbac.RoleAdmin)
	require.NoError(t, err)
	_, err = s.Create(emails[1], "password1234", "Filter", "Editor", rbac.RoleEditor)
	require.NoError(t, err)

	byRole, _, err := s.List(UserFilter{Role: rbac.RoleAdmin, Search: "filter-"}, Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	for _, u := range byRole {
		assert.Equal(t, rbac.RoleAdmin, u.Role)
	}

	bySearch, total, err := s.List(UserFilter{Search: "filter-b@"}, Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, bySearch, 1)
	assert.Equal(t, emails[1], bySearch[0].Email)
}
