package memory

// Raw returns the stored text for key.
func (s *Store) Raw(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return string(v), ok
}

// Put stores already-serialized text, bypassing encoding.
func (s *Store) Put(key, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = []byte(raw)
}
