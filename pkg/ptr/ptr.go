package ptr

// Of возвращает указатель на значение
func Of[T any](v T) *T {
	return &v
}

// Deref возвращает значение по указателю или нулевое значение типа
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
