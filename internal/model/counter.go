package model

import "fmt"

// DefaultCounterSeed is the starting value when nothing is configured.
const DefaultCounterSeed = 0

// Counter is a single unbounded integer. Negative values are fine.
type Counter struct {
	value int
}

// NewCounter starts a counter at seed.
func NewCounter(seed int) *Counter { return &Counter{value: seed} }

// Increment and Decrement move the value by one.
func (c *Counter) Increment() { c.value++ }
func (c *Counter) Decrement() { c.value-- }

// Value is the current count.
func (c *Counter) Value() int { return c.value }

// String is the display form, e.g. "Count: -1".
func (c *Counter) String() string { return fmt.Sprintf("Count: %d", c.value) }
