package model

import (
	"sync"
	"time"
)

// IDSource hands out todo ids. TodoList still guards against collisions.
type IDSource func() int

// Sequence counts up from start.
func Sequence(start int) IDSource {
	next := start
	return func() int {
		id := next
		next++
		return id
	}
}

// Clock derives ids from the current time in milliseconds. Calls landing in
// the same millisecond are bumped so the source itself stays strictly increasing.
func Clock(now func() time.Time) IDSource {
	if now == nil {
		now = time.Now
	}
	var (
		mu   sync.Mutex
		last int
	)
	return func() int {
		mu.Lock()
		defer mu.Unlock()
		id := int(now().UnixMilli())
		if id <= last {
			id = last + 1
		}
		last = id
		return id
	}
}
