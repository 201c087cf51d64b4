package store

// ReadList returns the list stored under key, or an empty list when absent or malformed.
func ReadList[T any](s *Store, key string) []T {
	var items []T
	if !s.ReadJSON(key, &items) || items == nil {
		return []T{}
	}
	return items
}

// UpdateList reads the list under key, hands it to fn and writes back what fn returns.
// When fn fails nothing is written. The returned bool reports whether the write succeeded.
func UpdateList[T any](s *Store, key string, fn func(items []T) ([]T, error)) (bool, error) {
	var (
		saved bool
		err   error
	)
	s.Locked(func() {
		items := ReadList[T](s, key)
		var next []T
		next, err = fn(items)
		if err != nil {
			return
		}
		if next == nil {
			next = []T{}
		}
		saved = s.WriteJSON(key, next)
	})
	return saved, err
}
