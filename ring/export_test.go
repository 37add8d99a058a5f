package ring

// Verify exposes the structural walker so the package tests can assert
// that every operation leaves the ring intact, without requiring the
// ringcheck build tag.
func Verify[T any](r *Ring[T]) error { return r.verify() }
