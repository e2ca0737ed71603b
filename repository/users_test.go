package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/store"
)

func TestUsers_CreateAndFind(t *testing.T) {
	users := NewUsers(store.NewMemory())

	created, err := users.Create("jo@example.com", "secret", "Jo")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.RoleCustomer, created.Role)
	assert.False(t, created.CreatedAt.IsZero())

	found, ok, err := users.FindByEmail("jo@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "secret", found.Password)

	byID, ok, err := users.FindByID(created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Jo", byID.Name)
}

func TestUsers_FindByEmailCaseSensitive(t *testing.T) {
	users := NewUsers(store.NewMemory())

	_, err := users.Create("jo@example.com", "secret", "Jo")
	require.NoError(t, err)

	_, ok, err := users.FindByEmail("JO@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUsers_FindByEmailFirstMatchWins(t *testing.T) {
	users := NewUsers(store.NewMemory())

	first, err := users.Create("dup@example.com", "one", "First")
	require.NoError(t, err)
	_, err = users.Create("dup@example.com", "two", "Second")
	require.NoError(t, err)

	found, ok, err := users.FindByEmail("dup@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.ID, found.ID)
}

func TestUsers_FindAbsent(t *testing.T) {
	users := NewUsers(store.NewMemory())

	_, ok, err := users.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = users.FindByID("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}
