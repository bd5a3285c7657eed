package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChaosDragon01/messaging-Wapp/internal/models"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.json")
	got := Load(path, []models.Message{})
	require.Empty(t, got)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got := Load(path, map[string]models.UserRecord{})
	require.Empty(t, got)
}

func TestLoad_WrongType(t *testing.T) {
	t.Parallel()

	// an array where an object is expected
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0o644))

	got := Load(path, map[string]models.UserRecord{})
	require.Empty(t, got)
}

func TestLoad_NullDocument(t *testing.T) {
	t.Parallel()

	// "null" unmarshals cleanly into a nil slice or map; the feed must
	// still see the empty fallback, not nil
	dir := t.TempDir()

	msgPath := filepath.Join(dir, "messages.json")
	require.NoError(t, os.WriteFile(msgPath, []byte("null"), 0o644))
	msgs := Load(msgPath, []models.Message{})
	require.NotNil(t, msgs)
	require.Empty(t, msgs)

	userPath := filepath.Join(dir, "users.json")
	require.NoError(t, os.WriteFile(userPath, []byte(" null\n"), 0o644))
	users := Load(userPath, map[string]models.UserRecord{})
	require.NotNil(t, users)
	require.Empty(t, users)
}

func TestLoad_Truncated(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"username": "al`), 0o644))

	got := Load(path, []models.Message{})
	require.Empty(t, got)
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.json")
	want := []models.Message{{Username: "alice", Body: "hello"}}
	require.NoError(t, Save(path, want))

	got := Load(path, []models.Message{})
	require.Equal(t, want, got)
}

func TestEnsureFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, EnsureFile(path, map[string]models.UserRecord{}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{}", string(b))

	// an existing non-empty file is left alone
	require.NoError(t, os.WriteFile(path, []byte(`{"alice": {}}`), 0o644))
	require.NoError(t, EnsureFile(path, map[string]models.UserRecord{}))

	got := Load(path, map[string]models.UserRecord{})
	require.Contains(t, got, "alice")
}
