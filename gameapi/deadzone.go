package gameapi

import "github.com/arcadeio/bindcore/binding"

// ShapeDeadzone applies a deadzone to value.
//
// A positive deadzone clips a band of width deadzone around the center to
// 0.5 and stretches the rest to fill [0,1]; mirrored, it is absorbed at the
// two edges instead. A negative deadzone is measured from the minimum
// (from the maximum when mirrored). The result is always in [0,1].
func ShapeDeadzone(value, deadzone float64, mirror bool) float64 {
	switch {
	case deadzone > 0:
		delta := value - 0.5
		span := 1 - deadzone
		if span == 0 {
			return 0.5
		}
		if mirror {
			return binding.Clamp(0.5+delta/span, 0, 1)
		}
		limit := deadzone * 0.5
		switch {
		case delta > limit:
			return min(1, 0.5+max(0, (delta-limit)/span))
		case delta < -limit:
			return max(0, 0.5+min(0, (delta+limit)/span))
		default:
			return 0.5
		}

	case deadzone < 0:
		if mirror {
			value = 1 - value
		}
		if deadzone > -1 && value > -deadzone {
			value = min(1, (value+deadzone)/(1+deadzone))
		} else {
			value = 0
		}
		if mirror {
			value = 1 - value
		}
		return binding.Clamp(value, 0, 1)
	}
	return binding.Clamp(value, 0, 1)
}
