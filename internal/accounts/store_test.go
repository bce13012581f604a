package accounts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/domain"
	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/utils"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "users.json"))
}

func TestLoadMissingFileIsEmptyStore(t *testing.T) {
	s := newTestStore(t)
	accounts, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := NewStore(path)
	accounts, err := s.Load()
	assert.ErrorIs(t, err, ErrStoreUnreadable)
	assert.Empty(t, accounts) // unreadable still yields a usable empty map
}

func TestBootstrapIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Bootstrap())

	accounts, err := s.Load()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	admin := accounts[BootstrapUser]
	assert.True(t, admin.Active)
	assert.Equal(t, utils.HashPassword("admin123"), admin.Password)

	// Second run changes nothing
	require.NoError(t, s.Bootstrap())
	again, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, accounts, again)
}

func TestFileFormatIsFlatJSONObject(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Bootstrap())

	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	entry := raw[BootstrapUser]
	require.NotNil(t, entry)
	assert.Contains(t, entry, "password")
	assert.Contains(t, entry, "active")
	assert.Contains(t, entry, "created_at")
	assert.Len(t, entry["password"], 64) // sha256 hex
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Bootstrap())
	_, err := s.Create("maria", "segredo1")
	require.NoError(t, err)

	assert.NoError(t, s.Authenticate("maria", "segredo1"))
	assert.ErrorIs(t, s.Authenticate("maria", "wrong"), ErrDenied)
	assert.ErrorIs(t, s.Authenticate("nobody", "segredo1"), ErrDenied)
}

func TestAuthenticateDeniesBlockedRegardlessOfPassword(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create("maria", "segredo1")
	require.NoError(t, err)
	require.NoError(t, s.SetActive("maria", false))

	assert.ErrorIs(t, s.Authenticate("maria", "segredo1"), ErrDenied)
}

func TestCreateDuplicateRejectedWithoutMutation(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create("maria", "segredo1")
	require.NoError(t, err)

	_, err = s.Create("maria", "other")
	assert.ErrorIs(t, err, ErrAccountExists)

	// The original password still authenticates
	assert.NoError(t, s.Authenticate("maria", "segredo1"))
}

func TestSetActive(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create("maria", "segredo1")
	require.NoError(t, err)

	require.NoError(t, s.SetActive("maria", false))
	accounts, err := s.Load()
	require.NoError(t, err)
	assert.False(t, accounts["maria"].Active)

	require.NoError(t, s.SetActive("maria", true))
	accounts, err = s.Load()
	require.NoError(t, err)
	assert.True(t, accounts["maria"].Active)
}

func TestSetActiveRefusesAdmin(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Bootstrap())
	assert.ErrorIs(t, s.SetActive(BootstrapUser, false), ErrAdminImmutable)
}

func TestSetActiveUnknownUser(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.SetActive("ghost", false), ErrAccountUnknown)
}

func TestListSortedWithUsernamesFilled(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Bootstrap())
	_, err := s.Create("zeca", "pw")
	require.NoError(t, err)
	_, err = s.Create("ana", "pw")
	require.NoError(t, err)

	list, err := s.List()
	require.NoError(t, err)
	names := make([]string, len(list))
	for i, a := range list {
		names[i] = a.Username
	}
	assert.Equal(t, []string{"admin", "ana", "zeca"}, names)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := map[string]domain.Account{
		"maria": {Password: utils.HashPassword("pw"), Active: true, CreatedAt: "2024-01-02T03:04:05Z"},
	}
	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
