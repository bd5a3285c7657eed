package store

import "github.com/ChaosDragon01/messaging-Wapp/internal/models"

// AccessLogStore is the append-only request audit trail, one JSON
// array. Entries are never trimmed or rotated.
type AccessLogStore struct {
	path string
}

func NewAccessLogStore(path string) *AccessLogStore {
	return &AccessLogStore{path: path}
}

// Load returns all log entries in append order.
func (s *AccessLogStore) Load() []models.AccessLogEntry {
	return Load(s.path, []models.AccessLogEntry{})
}

// Append records one audited request.
func (s *AccessLogStore) Append(e models.AccessLogEntry) error {
	if err := EnsureFile(s.path, []models.AccessLogEntry{}); err != nil {
		return err
	}
	entries := s.Load()
	entries = append(entries, e)
	return Save(s.path, entries)
}
