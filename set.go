package dict

// Set stores string keys without values. It shares Dict's table and its
// compact-or-grow policy, so it is just as unsafe for concurrent use.
type Set struct {
	d *Dict[struct{}]
}

func NewSet(opts ...Option) *Set {
	return &Set{d: New[struct{}](opts...)}
}

// Puts a key in the set. Returns whether the key is new.
func (s *Set) Add(key string) bool {
	if s.d.Has(key) {
		return false
	}

	s.d.Set(key, struct{}{}, nil)

	return true
}

func (s *Set) Has(key string) bool {
	return s.d.Has(key)
}

// Deletes a key from the set. Unlike Dict.Remove, an absent key is not an
// error: Remove just reports false.
func (s *Set) Remove(key string) bool {
	if !s.d.Has(key) {
		return false
	}

	s.d.Remove(key)

	return true
}

func (s *Set) Len() int {
	return s.d.Len()
}

func (s *Set) Keys() []string {
	return s.d.Keys()
}

func (s *Set) Stats() Stats {
	return s.d.Stats()
}
