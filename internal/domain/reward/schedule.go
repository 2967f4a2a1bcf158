package reward

import "math"

// Default disclosure schedule. The store keeps an offer's true value; users
// only ever see a percentage of it, scaled by account level. Levels at or
// above MaxRateLevel share the top rate.
const (
	MaxRateLevel = 5
	MaxRate      = 0.85
	BaseRate     = 0.10
)

var defaultSchedule = map[int]float64{
	0: 0.10,
	1: 0.25,
	2: 0.40,
	3: 0.55,
	4: 0.70,
}

// Rate returns the disclosure percentage for a level. Overrides (from the
// level_reward_config table) take precedence over the built-in schedule.
// A level below MaxRateLevel with no entry anywhere falls back to the
// level-0 rate; that is defined behavior, not an error.
func Rate(level int, overrides map[int]float64) float64 {
	if rate, ok := overrides[level]; ok {
		return rate
	}
	if level >= MaxRateLevel {
		return MaxRate
	}
	if rate, ok := defaultSchedule[level]; ok {
		return rate
	}
	return BaseRate
}

// Disclose computes the value shown to a user for an offer with the given
// true value. Pure and deterministic: same inputs, same output. Rounds to
// 2 decimal places.
func Disclose(trueValue float64, level int, overrides map[int]float64) float64 {
	return math.Round(trueValue*Rate(level, overrides)*100) / 100
}
