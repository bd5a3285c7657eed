package store

import (
	"errors"

	"github.com/ChaosDragon01/messaging-Wapp/internal/models"
)

var (
	// ErrDuplicateUsername is returned by Register when the username
	// is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned by Authenticate for an unknown
	// username or a password hash mismatch alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore maps usernames to credential records in one JSON object.
type UserStore struct {
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// Load returns the full credential mapping, or an empty mapping when
// the file is missing, empty or not an object.
func (s *UserStore) Load() map[string]models.UserRecord {
	return Load(s.path, map[string]models.UserRecord{})
}

// Save rewrites the credential mapping.
func (s *UserStore) Save(users map[string]models.UserRecord) error {
	return Save(s.path, users)
}

// Register adds a new user. The password hash and avatar filename are
// computed by the caller; usernames must be unique.
func (s *UserStore) Register(username, passwordHash, profilePic string) error {
	users := s.Load()
	if _, exists := users[username]; exists {
		return ErrDuplicateUsername
	}
	users[username] = models.UserRecord{
		PasswordHash: passwordHash,
		ProfilePic:   profilePic,
	}
	return s.Save(users)
}

// Authenticate checks a username/hash pair against the store.
func (s *UserStore) Authenticate(username, passwordHash string) (models.UserRecord, error) {
	users := s.Load()
	rec, ok := users[username]
	if !ok || rec.PasswordHash != passwordHash {
		return models.UserRecord{}, ErrInvalidCredentials
	}
	return rec, nil
}
