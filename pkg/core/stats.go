package core

import "sync/atomic"

// Counters for observability. They never affect rendering results.
var (
	intersectionTests atomic.Int64
	raysTraced        atomic.Int64
)

// CountIntersectionTest records one ray/primitive test
func CountIntersectionTest() {
	intersectionTests.Add(1)
}

// CountRay records one ray handed to the scene
func CountRay() {
	raysTraced.Add(1)
}

// IntersectionTests returns the number of ray/primitive tests since the last reset
func IntersectionTests() int64 {
	return intersectionTests.Load()
}

// RaysTraced returns the number of rays traced since the last reset
func RaysTraced() int64 {
	return raysTraced.Load()
}

// ResetCounters zeroes all counters
func ResetCounters() {
	intersectionTests.Store(0)
	raysTraced.Store(0)
}
