package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceFunc is Coalesce with a lazily computed fallback.
func CoalesceFunc[T any](ptr *T, fallback func() T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback()
}
