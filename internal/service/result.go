package service

// Result is a discriminated success/failure container. A Result holds
// exactly one of a success value or an *Error, never both. Consumers must
// go through Match or the tag-checked accessors; there is no unchecked
// access to either payload.
type Result[T any] struct {
	value T
	err   *Error
}

// Ok creates a successful Result holding the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail creates a failed Result holding the given error.
// Passing a nil error is a programming mistake and panics immediately
// rather than producing a Result that is neither success nor failure.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		panic("service: Fail called with nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the Result holds a success value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the success value and true, or the zero value and false if
// the Result holds an error.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the error, or nil if the Result holds a success value.
func (r Result[T]) Err() *Error {
	return r.err
}

// Match projects the Result onto a common type by invoking exactly one of
// the two branches.
func Match[T, R any](r Result[T], onSuccess func(T) R, onError func(*Error) R) R {
	if r.err != nil {
		return onError(r.err)
	}
	return onSuccess(r.value)
}
