package engine

import "github.com/handiism/gilded-rose/internal/model"

// clampQuality bounds q to [model.MinQuality, model.MaxQuality].
func clampQuality(q int) int {
	return min(max(q, model.MinQuality), model.MaxQuality)
}

// applyDelta adds delta to quality and clamps the result.
//
// The delta may exceed the remaining room in either direction; the clamp
// absorbs the overshoot so callers never bounds-check deltas themselves.
func applyDelta(quality, delta int) int {
	return clampQuality(quality + delta)
}
