package purefn

import "github.com/on-the-ground/memo_ive_go/shared/helper"

// Option is a value that may be absent. The zero Option is None.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OfNillable returns None for a nil pointer, map, slice, func, chan or interface
// and Some otherwise.
func OfNillable[T any](v T) Option[T] {
	if helper.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) OrElse(v T) T {
	if o.present {
		return o.value
	}
	return v
}

// MapOption applies f to the value of o, if any.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}
