package binding

import (
	"context"
	"errors"

	"github.com/on-the-ground/monads_in_go/shared/helper"
)

// Get fetches a typed value from the Binding effect using the provided key.
// Returns a zero value and error if the key is not found or the type is mismatched.
func Get[T any](ctx context.Context, key string) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return Effect(ctx, key)
	})
}

// GetOr is Get with a fallback for unbound keys. Type mismatches are still errors.
func GetOr[T any](ctx context.Context, key string, fallback T) (T, error) {
	v, err := Get[T](ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return fallback, nil
	}
	return v, err
}

// MustGet is the panic-on-failure variant of Get.
func MustGet[T any](ctx context.Context, key string) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return Effect(ctx, key)
	})
}
