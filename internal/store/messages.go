package store

import "github.com/ChaosDragon01/messaging-Wapp/internal/models"

// MessageStore is the append-only global feed, one JSON array.
type MessageStore struct {
	path string
}

func NewMessageStore(path string) *MessageStore {
	return &MessageStore{path: path}
}

// Load returns all messages in append order, or an empty slice when the
// file is missing, empty or not an array.
func (s *MessageStore) Load() []models.Message {
	return Load(s.path, []models.Message{})
}

// Append reads the full feed, pushes the message and rewrites the file.
func (s *MessageStore) Append(m models.Message) error {
	msgs := s.Load()
	msgs = append(msgs, m)
	return Save(s.path, msgs)
}

// Recent returns the last n messages in original order. A feed shorter
// than n is returned whole.
func (s *MessageStore) Recent(n int) []models.Message {
	msgs := s.Load()
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	return msgs
}
