package store

// memoryStore backs tests and the ephemeral (DB_PATH="") mode.
type memoryStore struct{ m map[string]string }

func NewMemory() RecordStore { return &memoryStore{m: map[string]string{}} }

func (s *memoryStore) Read(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *memoryStore) Write(key, value string) bool {
	s.m[key] = value
	return true
}
