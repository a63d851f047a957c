package conv

// Pointer returns a pointer to a copy of value, for optional protocol fields.
func Pointer[T any](value T) *T {
	return &value
}
