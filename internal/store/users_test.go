package store

import (
	"path/filepath"
	"testing"

	"github.com/ChaosDragon01/messaging-Wapp/internal/util"

	"github.com/stretchr/testify/require"
)

func newUserStore(t *testing.T) *UserStore {
	t.Helper()
	return NewUserStore(filepath.Join(t.TempDir(), "users.json"))
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	s := newUserStore(t)
	require.NoError(t, s.Register("alice", util.HashPassword("pw1"), "alice_abc.png"))

	err := s.Register("alice", util.HashPassword("other"), "")
	require.ErrorIs(t, err, ErrDuplicateUsername)

	// the first record is untouched
	users := s.Load()
	require.Len(t, users, 1)
	require.Equal(t, util.HashPassword("pw1"), users["alice"].PasswordHash)
	require.Equal(t, "alice_abc.png", users["alice"].ProfilePic)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	s := newUserStore(t)
	require.NoError(t, s.Register("alice", util.HashPassword("pw1"), ""))
	require.NoError(t, s.Register("bob", util.HashPassword("pw2"), ""))
	require.NoError(t, s.Register("carol", util.HashPassword("pw3"), ""))

	rec, err := s.Authenticate("alice", util.HashPassword("pw1"))
	require.NoError(t, err)
	require.Equal(t, util.HashPassword("pw1"), rec.PasswordHash)

	// right username, wrong password: always rejected
	_, err = s.Authenticate("alice", util.HashPassword("pw2"))
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown username
	_, err = s.Authenticate("dave", util.HashPassword("pw1"))
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoad_BadFileFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	s := newUserStore(t)
	require.Empty(t, s.Load())
}
