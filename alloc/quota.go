package alloc

import "fmt"

// Quota wraps a provider with a fixed slot budget so tests can trigger
// memory exhaustion deterministically. Released regions return their slots
// to the budget.
type Quota[T any] struct {
	inner Provider[T]
	limit int
	used  int
}

// NewQuota wraps inner with a budget of limit slots.
func NewQuota[T any](inner Provider[T], limit int) *Quota[T] {
	return &Quota[T]{inner: inner, limit: limit}
}

// Used returns the number of slots currently handed out.
func (q *Quota[T]) Used() int { return q.used }

// Acquire forwards to the inner provider unless the request would exceed the
// budget.
func (q *Quota[T]) Acquire(n int) ([]T, error) {
	if n < 0 || q.used+n > q.limit {
		return nil, fmt.Errorf("%w: quota of %d slots, %d in use, %d requested", ErrExhausted, q.limit, q.used, n)
	}
	region, err := q.inner.Acquire(n)
	if err != nil {
		return nil, err
	}
	q.used += n
	return region, nil
}

// Release returns the region and its slots to the budget.
func (q *Quota[T]) Release(region []T) {
	q.used -= len(region)
	q.inner.Release(region)
}

// Regrow charges the size difference against the budget before forwarding.
func (q *Quota[T]) Regrow(region []T, n int) ([]T, error) {
	if n < 0 || q.used-len(region)+n > q.limit {
		return nil, fmt.Errorf("%w: quota of %d slots, %d in use, %d requested", ErrExhausted, q.limit, q.used, n)
	}
	next, err := q.inner.Regrow(region, n)
	if err != nil {
		return nil, err
	}
	q.used += n - len(region)
	return next, nil
}
