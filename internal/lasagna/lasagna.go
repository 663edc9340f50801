package lasagna

// Cooking book constants.
const (
	// ExpectedOvenMinutes is how long the lasagna should be in the oven.
	ExpectedOvenMinutes = 40

	// MinutesPerLayer is the preparation time for one layer.
	MinutesPerLayer = 2
)

// ExpectedDurationMinutes returns the expected oven time in minutes.
func ExpectedDurationMinutes() int {
	return ExpectedOvenMinutes
}

// RemainingDurationMinutes returns how many minutes the lasagna still has to
// stay in the oven after elapsedMinutes. The result is negative once the
// expected time has passed.
func RemainingDurationMinutes(elapsedMinutes int) int {
	return ExpectedDurationMinutes() - elapsedMinutes
}

// PreparationDurationMinutes returns the minutes spent preparing layerCount
// layers.
func PreparationDurationMinutes(layerCount int) int {
	return layerCount * MinutesPerLayer
}

// TotalDurationMinutes returns the total working time: preparation of
// layerCount layers plus the minutes the lasagna has spent in the oven so far.
func TotalDurationMinutes(layerCount, elapsedMinutes int) int {
	return PreparationDurationMinutes(layerCount) + elapsedMinutes
}

// Overrun reports whether elapsedMinutes is past the expected oven time.
func Overrun(elapsedMinutes int) bool {
	return RemainingDurationMinutes(elapsedMinutes) < 0
}
