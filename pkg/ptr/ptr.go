package ptr

// To returns a pointer to the given value
func To[T any](v T) *T {
	return &v
}

// Deref returns the value behind p, or def when p is nil
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
