package jsonfile

import "context"

// Write writes v to path with the default Store.
func Write[T any](path string, v T) error {
	return Default().Write(path, v)
}

// TryWrite writes v to path with the default Store and reports success.
func TryWrite[T any](path string, v T) bool {
	return Default().TryWrite(path, v)
}

// Read decodes the file at path into a T with the default Store.
func Read[T any](path string) (T, error) {
	var v T
	err := Default().Read(path, &v)
	return v, err
}

// TryRead decodes the file at path into a T with the default Store.
// On failure it returns the zero T and false.
func TryRead[T any](path string) (T, bool) {
	var v T
	ok := Default().TryRead(path, &v)
	return v, ok
}

// ReadFromBundle decodes the bundle entry for key with the default Store.
func ReadFromBundle[T any](ctx context.Context, key string) (T, error) {
	var v T
	err := Default().ReadFromBundle(ctx, key, &v)
	return v, err
}

// TryReadFromBundle decodes the bundle entry for key with the default Store.
// On failure it returns the zero T and false.
func TryReadFromBundle[T any](ctx context.Context, key string) (T, bool) {
	var v T
	ok := Default().TryReadFromBundle(ctx, key, &v)
	return v, ok
}

// WriteToBundle stores v as the bundle entry for key with the default Store.
func WriteToBundle[T any](ctx context.Context, key string, v T) error {
	return Default().WriteToBundle(ctx, key, v)
}
