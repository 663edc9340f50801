// Package lasagna computes the durations involved in cooking a lasagna from
// the cooking book: the expected oven time, the time left in the oven, the
// preparation time per layer and the total working time.
//
// All functions are pure. RemainingDurationMinutes is deliberately not
// clamped: a lasagna left in too long reports a negative remaining time, and
// Overrun reports that case explicitly.
package lasagna
